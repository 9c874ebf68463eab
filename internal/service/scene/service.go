package scene

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// Service 3D 场景服务：相机视角、环境设置和按树选择取模型
type Service struct {
	repo   *repository.Repositories
	layout *storage.Layout
}

// NewService 创建 3D 场景服务
func NewService(repo *repository.Repositories, layout *storage.Layout) *Service {
	return &Service{repo: repo, layout: layout}
}

// SaveView 保存相机视角，同名覆盖
func (s *Service) SaveView(ctx context.Context, view *model.View) (*model.View, error) {
	if view.Name == "" || view.ProjectID == "" {
		return nil, fmt.Errorf("view name and projectId are required")
	}
	if err := s.repo.Scene.SaveView(ctx, view); err != nil {
		return nil, fmt.Errorf("failed to save view: %w", err)
	}
	return view, nil
}

// ListViews 获取项目下的所有相机视角
func (s *Service) ListViews(ctx context.Context, projectID string) ([]*model.View, error) {
	views, err := s.repo.Scene.ListViewsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	return views, nil
}

// GetView 获取相机视角
func (s *Service) GetView(ctx context.Context, projectID, name string) (*model.View, error) {
	view, err := s.repo.Scene.GetView(ctx, projectID, name)
	if err != nil {
		return nil, fmt.Errorf("view not found: %w", err)
	}
	return view, nil
}

// RenameView 重命名相机视角，新名字不能与已有视角重名
func (s *Service) RenameView(ctx context.Context, projectID, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("new view name is required")
	}
	if _, err := s.repo.Scene.GetView(ctx, projectID, oldName); err != nil {
		return fmt.Errorf("view not found: %w", err)
	}
	if _, err := s.repo.Scene.GetView(ctx, projectID, newName); err == nil {
		return fmt.Errorf("view %q already exists", newName)
	}
	if err := s.repo.Scene.RenameView(ctx, projectID, oldName, newName); err != nil {
		return fmt.Errorf("failed to rename view: %w", err)
	}
	return nil
}

// DeleteView 删除相机视角
func (s *Service) DeleteView(ctx context.Context, projectID, name string) error {
	if _, err := s.repo.Scene.GetView(ctx, projectID, name); err != nil {
		return fmt.Errorf("view not found: %w", err)
	}
	if err := s.repo.Scene.DeleteView(ctx, projectID, name); err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}
	return nil
}

// GetGround 获取项目的地面设置
func (s *Service) GetGround(ctx context.Context, projectID string) (*model.GroundSettings, error) {
	ground, err := s.repo.Scene.GetGround(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("ground settings not found: %w", err)
	}
	return ground, nil
}

// SaveGround 保存项目的地面设置
func (s *Service) SaveGround(ctx context.Context, ground *model.GroundSettings) error {
	if ground.ProjectID == "" {
		return fmt.Errorf("projectId is required")
	}
	if err := s.repo.Scene.SaveGround(ctx, ground); err != nil {
		return fmt.Errorf("failed to save ground settings: %w", err)
	}
	return nil
}

// GetWater 获取项目的水面设置
func (s *Service) GetWater(ctx context.Context, projectID string) (*model.WaterSettings, error) {
	water, err := s.repo.Scene.GetWater(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("water settings not found: %w", err)
	}
	return water, nil
}

// SaveWater 保存项目的水面设置
func (s *Service) SaveWater(ctx context.Context, water *model.WaterSettings) error {
	if water.ProjectID == "" {
		return fmt.Errorf("projectId is required")
	}
	if err := s.repo.Scene.SaveWater(ctx, water); err != nil {
		return fmt.Errorf("failed to save water settings: %w", err)
	}
	return nil
}

// GetSettings 获取项目设置
func (s *Service) GetSettings(ctx context.Context, projectID string) (*model.SceneSettings, error) {
	settings, err := s.repo.Scene.GetSettings(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("settings not found: %w", err)
	}
	return settings, nil
}

// SaveSettings 保存项目设置
func (s *Service) SaveSettings(ctx context.Context, settings *model.SceneSettings) error {
	if settings.ProjectID == "" {
		return fmt.Errorf("projectId is required")
	}
	if err := s.repo.Scene.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// ModelFile 标签模型文件在 tags 目录下的状态
type ModelFile struct {
	Filename string     `json:"filename"`
	Exists   bool       `json:"exists"`
	Size     int64      `json:"size,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// SelectionModel 树选择命中的一个标签及其模型文件
type SelectionModel struct {
	Area      *string    `json:"area"`
	Disc      *string    `json:"disc"`
	Sys       *string    `json:"sys"`
	Tag       string     `json:"tag"`
	TagID     string     `json:"tagId"`
	ProjectID *string    `json:"projectId"`
	Filename  *string    `json:"filename"`
	File      *ModelFile `json:"file"`
}

// GetModelsBySelection 按区域 / 专业 / 系统 / 标签过滤树节点，
// 返回命中标签的模型文件状态。标签过滤优先，其余过滤被忽略
func (s *Service) GetModelsBySelection(ctx context.Context, projectID string, areaIDs, discIDs, sysIDs, tagIDs []string) ([]*SelectionModel, error) {
	refs, err := s.repo.Scene.ListTreeModelRefs(ctx, projectID, areaIDs, discIDs, sysIDs, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tree models: %w", err)
	}

	results := make([]*SelectionModel, 0, len(refs))
	for _, ref := range refs {
		sel := &SelectionModel{
			Area:      ref.Area,
			Disc:      ref.Disc,
			Sys:       ref.Sys,
			Tag:       ref.Tag,
			TagID:     ref.TagID,
			ProjectID: ref.ProjectID,
			Filename:  ref.Filename,
		}
		sel.File = s.statModelFile(projectID, ref.Filename)
		results = append(results, sel)
	}
	return results, nil
}

// statModelFile 查模型文件，缺失不算错误
func (s *Service) statModelFile(projectID string, filename *string) *ModelFile {
	if filename == nil || *filename == "" {
		return &ModelFile{Exists: false, Message: "tag has no model file"}
	}
	path := filepath.Join(s.layout.TagsDir(projectID), *filename)
	info, err := os.Stat(path)
	if err != nil {
		return &ModelFile{Filename: *filename, Exists: false, Message: "file not found in storage"}
	}
	mod := info.ModTime()
	return &ModelFile{Filename: *filename, Exists: true, Size: info.Size(), Modified: &mod}
}
