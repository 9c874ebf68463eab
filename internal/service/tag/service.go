package tag

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// ErrDuplicateNumber 标签号已被占用，标签号全局唯一
var ErrDuplicateNumber = errors.New("tag number already exists")

// Service 标签服务
type Service struct {
	repo   *repository.Repositories
	layout *storage.Layout
}

// NewService 创建标签服务
func NewService(repo *repository.Repositories, layout *storage.Layout) *Service {
	return &Service{repo: repo, layout: layout}
}

// AddTagRequest 创建标签请求
type AddTagRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	Number    string  `json:"number" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	ParentTag *string `json:"parenttag"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	Number    *string `json:"number"`
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	ParentTag *string `json:"parenttag"`
}

// AddTag 创建标签，同时建立 TagInfo 和类型明细行
func (s *Service) AddTag(ctx context.Context, req *AddTagRequest) (*model.Tag, error) {
	if _, err := s.repo.Tag.GetByNumber(ctx, req.Number); err == nil {
		return nil, ErrDuplicateNumber
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check tag number: %w", err)
	}

	typ := model.ParseTagType(req.Type)
	tag := &model.Tag{
		TagID:     model.NewID("TAG-"),
		Number:    req.Number,
		ProjectID: &req.ProjectID,
		Name:      req.Name,
		ParentTag: req.ParentTag,
		Type:      string(typ),
	}

	if err := s.repo.Tag.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	typeStr := string(typ)
	info := &model.TagInfo{
		TagID:     tag.TagID,
		Tag:       &tag.Number,
		Type:      &typeStr,
		ProjectID: tag.ProjectID,
	}
	if err := s.repo.Tag.CreateInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to create tag info: %w", err)
	}

	if err := s.repo.Tag.CreateDetail(ctx, tag, typ); err != nil {
		return nil, fmt.Errorf("failed to create tag detail row: %w", err)
	}

	return tag, nil
}

// ListTags 获取项目下的所有标签
func (s *Service) ListTags(ctx context.Context, projectID string) ([]*model.Tag, error) {
	tags, err := s.repo.Tag.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GetTag 获取标签
func (s *Service) GetTag(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, err := s.repo.Tag.GetByTagID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("tag not found: %w", err)
	}
	return tag, nil
}

// UpdateTag 更新标签
// 改标签号会同步明细行和树路径；改类型会迁移明细表
func (s *Service) UpdateTag(ctx context.Context, tagID string, req *UpdateTagRequest) (*model.Tag, error) {
	tag, err := s.repo.Tag.GetByTagID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("tag not found: %w", err)
	}
	oldNumber := tag.Number
	oldType := model.ParseTagType(tag.Type)

	if req.Number != nil && *req.Number != tag.Number {
		if existing, err := s.repo.Tag.GetByNumber(ctx, *req.Number); err == nil && existing.TagID != tagID {
			return nil, ErrDuplicateNumber
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check tag number: %w", err)
		}
		tag.Number = *req.Number
	}
	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.ParentTag != nil {
		tag.ParentTag = req.ParentTag
	}
	newType := oldType
	if req.Type != nil {
		newType = model.ParseTagType(*req.Type)
		tag.Type = string(newType)
	}

	if err := s.repo.Tag.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	// 类型变化时迁移明细表，原明细数据不保留
	if newType != oldType {
		if err := s.repo.Tag.DeleteDetail(ctx, tagID, oldType); err != nil {
			return nil, fmt.Errorf("failed to drop old detail row: %w", err)
		}
		if err := s.repo.Tag.CreateDetail(ctx, tag, newType); err != nil {
			return nil, fmt.Errorf("failed to create new detail row: %w", err)
		}
	}

	// 同步 TagInfo 中冗余的标签号和类型
	if info, err := s.repo.Tag.GetInfo(ctx, tagID); err == nil {
		typeStr := string(newType)
		info.Tag = &tag.Number
		info.Type = &typeStr
		if err := s.repo.Tag.SaveInfo(ctx, info); err != nil {
			return nil, fmt.Errorf("failed to sync tag info: %w", err)
		}
	}

	// 标签号变化时同步树路径
	if tag.Number != oldNumber && tag.ProjectID != nil {
		if err := s.repo.Tree.UpdateNodeTag(ctx, *tag.ProjectID, oldNumber, tag.Number); err != nil {
			return nil, fmt.Errorf("failed to sync tree nodes: %w", err)
		}
	}

	return tag, nil
}

// DeleteTag 删除标签，级联 TagInfo、明细行、图纸绑定、树路径和模型文件
func (s *Service) DeleteTag(ctx context.Context, tagID string) error {
	tag, err := s.repo.Tag.GetByTagID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("tag not found: %w", err)
	}
	typ := model.ParseTagType(tag.Type)

	if err := s.repo.Tag.DeleteDetail(ctx, tagID, typ); err != nil {
		return fmt.Errorf("failed to delete detail row: %w", err)
	}
	if err := s.repo.Tag.DeleteInfo(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete tag info: %w", err)
	}
	if err := s.repo.Spid.DeleteSpidTagsByTag(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete drawing bindings: %w", err)
	}
	if tag.ProjectID != nil {
		if err := s.repo.Tree.DeleteNodesByTag(ctx, *tag.ProjectID, tag.Number); err != nil {
			return fmt.Errorf("failed to delete tree nodes: %w", err)
		}
	}
	if err := s.repo.Tag.Delete(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	// 模型文件最后删，失败不回滚数据库
	if tag.Filename != nil && tag.ProjectID != nil {
		path := filepath.Join(s.layout.TagsDir(*tag.ProjectID), *tag.Filename)
		if err := s.layout.Remove(path); err != nil {
			return fmt.Errorf("tag deleted but model file removal failed: %w", err)
		}
	}
	return nil
}

// FileUpdate 前端回传的单个模型文件内容
type FileUpdate struct {
	Name string          `json:"name"`
	Data model.ByteArray `json:"data"`
}

// FileUpdateResult 单个文件的覆盖结果
type FileUpdateResult struct {
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"` // updated / skipped / failed
	Error  string `json:"error,omitempty"`
}

// SaveUpdatedFiles 覆盖已分配标签的模型文件
// 只覆盖已存在的文件，不存在的条目标记 skipped；单个失败不影响其余
func (s *Service) SaveUpdatedFiles(ctx context.Context, projectID string, files []FileUpdate) []FileUpdateResult {
	results := make([]FileUpdateResult, 0, len(files))
	dir := s.layout.TagsDir(projectID)
	for _, f := range files {
		if f.Name == "" || len(f.Data) == 0 {
			results = append(results, FileUpdateResult{Name: f.Name, Status: "failed", Error: "name and data are required"})
			continue
		}
		dst := filepath.Join(dir, filepath.Base(f.Name))
		if _, err := os.Stat(dst); err != nil {
			results = append(results, FileUpdateResult{Name: f.Name, Status: "skipped", Error: "file does not exist"})
			continue
		}
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			results = append(results, FileUpdateResult{Name: f.Name, Status: "failed", Error: err.Error()})
			continue
		}
		results = append(results, FileUpdateResult{Name: f.Name, Path: dst, Status: "updated"})
	}
	return results
}

// ModelFileInfo 标签模型文件的查询结果
type ModelFileInfo struct {
	Tag      *model.Tag `json:"tag"`
	FileName string     `json:"fileName"`
	FileSize string     `json:"fileSize"`
}

// GetModelByFilename 根据项目和模型文件名查标签及文件大小
func (s *Service) GetModelByFilename(ctx context.Context, projectID, filename string) (*ModelFileInfo, error) {
	tag, err := s.repo.Tag.GetByProjectAndFilename(ctx, projectID, filename)
	if err != nil {
		return nil, fmt.Errorf("no tag for model file: %w", err)
	}
	size, err := s.layout.FileSize(filepath.Join(s.layout.TagsDir(projectID), filename))
	if err != nil {
		return nil, fmt.Errorf("model file missing on disk: %w", err)
	}
	return &ModelFileInfo{
		Tag:      tag,
		FileName: filename,
		FileSize: formatFileSize(size),
	}, nil
}

// ========== TagInfo ==========

// GetTagInfo 获取标签通用信息
func (s *Service) GetTagInfo(ctx context.Context, tagID string) (*model.TagInfo, error) {
	info, err := s.repo.Tag.GetInfo(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("tag info not found: %w", err)
	}
	return info, nil
}

// ListTagInfo 获取项目下某类型的所有通用信息
func (s *Service) ListTagInfo(ctx context.Context, projectID, tagType string) ([]*model.TagInfo, error) {
	infos, err := s.repo.Tag.ListInfoByProject(ctx, projectID, tagType)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag info: %w", err)
	}
	return infos, nil
}

// UpdateTagInfo 保存标签通用信息
func (s *Service) UpdateTagInfo(ctx context.Context, info *model.TagInfo) error {
	if _, err := s.repo.Tag.GetInfo(ctx, info.TagID); err != nil {
		return fmt.Errorf("tag info not found: %w", err)
	}
	if err := s.repo.Tag.SaveInfo(ctx, info); err != nil {
		return fmt.Errorf("failed to save tag info: %w", err)
	}
	return nil
}

// ListFieldUnits 获取项目的自定义字段单位
func (s *Service) ListFieldUnits(ctx context.Context, projectID string) ([]*model.UserTagInfoFieldUnit, error) {
	units, err := s.repo.Tag.ListFieldUnits(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list field units: %w", err)
	}
	return units, nil
}

// UpdateFieldUnits 批量更新自定义字段单位
func (s *Service) UpdateFieldUnits(ctx context.Context, units []*model.UserTagInfoFieldUnit) error {
	for _, unit := range units {
		if err := s.repo.Tag.UpdateFieldUnit(ctx, unit); err != nil {
			return fmt.Errorf("failed to update field unit %d: %w", unit.ID, err)
		}
	}
	return nil
}

// ========== 类型明细表 ==========

// GetLineList 获取项目的管线清单
func (s *Service) GetLineList(ctx context.Context, projectID string) ([]*model.LineList, error) {
	rows, err := s.repo.Tag.ListLinesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", err)
	}
	return rows, nil
}

// EditLine 保存管线明细
func (s *Service) EditLine(ctx context.Context, row *model.LineList) error {
	if err := s.repo.Tag.SaveLine(ctx, row); err != nil {
		return fmt.Errorf("failed to save line: %w", err)
	}
	return nil
}

// GetEquipmentList 获取项目的设备清单
func (s *Service) GetEquipmentList(ctx context.Context, projectID string) ([]*model.EquipmentList, error) {
	rows, err := s.repo.Tag.ListEquipmentByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return rows, nil
}

// EditEquipment 保存设备明细
func (s *Service) EditEquipment(ctx context.Context, row *model.EquipmentList) error {
	if err := s.repo.Tag.SaveEquipment(ctx, row); err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}
	return nil
}

// GetValveList 获取项目的阀门清单
func (s *Service) GetValveList(ctx context.Context, projectID string) ([]*model.ValveList, error) {
	rows, err := s.repo.Tag.ListValvesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list valves: %w", err)
	}
	return rows, nil
}

// EditValve 保存阀门明细
func (s *Service) EditValve(ctx context.Context, row *model.ValveList) error {
	if err := s.repo.Tag.SaveValve(ctx, row); err != nil {
		return fmt.Errorf("failed to save valve: %w", err)
	}
	return nil
}

// GetLineDetail 获取项目下某标签的管线明细，单行
func (s *Service) GetLineDetail(ctx context.Context, projectID, tagID string) (*model.LineList, error) {
	row, err := s.repo.Tag.GetLine(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("line detail not found: %w", err)
	}
	if row.ProjectID == nil || *row.ProjectID != projectID {
		return nil, fmt.Errorf("line detail not found: %w", gorm.ErrRecordNotFound)
	}
	return row, nil
}

// GetEquipmentDetail 获取项目下某标签的设备明细，单行
func (s *Service) GetEquipmentDetail(ctx context.Context, projectID, tagID string) (*model.EquipmentList, error) {
	row, err := s.repo.Tag.GetEquipment(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("equipment detail not found: %w", err)
	}
	if row.ProjectID == nil || *row.ProjectID != projectID {
		return nil, fmt.Errorf("equipment detail not found: %w", gorm.ErrRecordNotFound)
	}
	return row, nil
}

// GetValveDetail 获取项目下某标签的阀门明细，单行
func (s *Service) GetValveDetail(ctx context.Context, projectID, tagID string) (*model.ValveList, error) {
	row, err := s.repo.Tag.GetValve(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("valve detail not found: %w", err)
	}
	if row.ProjectID == nil || *row.ProjectID != projectID {
		return nil, fmt.Errorf("valve detail not found: %w", gorm.ErrRecordNotFound)
	}
	return row, nil
}

// ClearDetailByNumber 根据项目和标签号清空明细行的业务字段
func (s *Service) ClearDetailByNumber(ctx context.Context, projectID, number string) error {
	tag, err := s.repo.Tag.GetByNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("tag not found: %w", err)
	}
	if tag.ProjectID == nil || *tag.ProjectID != projectID {
		return fmt.Errorf("tag not found: %w", gorm.ErrRecordNotFound)
	}
	return s.ClearDetail(ctx, tag.TagID)
}

// ClearDetail 清空标签明细行的业务字段
func (s *Service) ClearDetail(ctx context.Context, tagID string) error {
	tag, err := s.repo.Tag.GetByTagID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("tag not found: %w", err)
	}
	typ := model.ParseTagType(tag.Type)
	if !typ.HasDetailTable() {
		return fmt.Errorf("tag type %q has no detail table", tag.Type)
	}
	if err := s.repo.Tag.ClearDetail(ctx, tag, typ); err != nil {
		return fmt.Errorf("failed to clear detail row: %w", err)
	}
	return nil
}

// formatFileSize 字节数转可读字符串
func formatFileSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case size >= gb:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
