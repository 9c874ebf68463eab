package bulkmodel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/converter"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// Service 批量 3D 模型服务
// 流水线：上传转换 → 登记未分配 → 事务化分配到标签
type Service struct {
	repo    *repository.Repositories
	layout  *storage.Layout
	invoker *converter.Invoker
}

// NewService 创建批量模型服务
func NewService(repo *repository.Repositories, layout *storage.Layout, invoker *converter.Invoker) *Service {
	return &Service{repo: repo, layout: layout, invoker: invoker}
}

// UploadedFile 待转换的已上传文件
type UploadedFile struct {
	Name string // 原始文件名
	Path string // 上传暂存路径
}

// ConvertResult 单个文件的转换结果
type ConvertResult struct {
	FileName      string `json:"fileName"`
	ConvertedName string `json:"convertedName,omitempty"`
	Status        string `json:"status"` // converted / failed
	Error         string `json:"error,omitempty"`
}

// ImportBatch 并发转换一批上传文件到项目的模型目录
// 单个文件失败不影响其余文件
func (s *Service) ImportBatch(ctx context.Context, projectID string, files []UploadedFile) []ConvertResult {
	results := make([]ConvertResult, len(files))
	dstDir := s.layout.ModelsDir(projectID)

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f UploadedFile) {
			defer wg.Done()
			out, err := s.invoker.Convert(ctx, f.Path, dstDir)
			if err != nil {
				results[i] = ConvertResult{FileName: f.Name, Status: "failed", Error: err.Error()}
				return
			}
			results[i] = ConvertResult{
				FileName:      f.Name,
				ConvertedName: filepath.Base(out),
				Status:        "converted",
			}
		}(i, f)
	}
	wg.Wait()

	// 暂存文件用完即删
	for _, f := range files {
		_ = s.layout.Remove(f.Path)
	}
	return results
}

// SaveItem 单条登记请求，每条自带项目
type SaveItem struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

// SaveResult 单个文件的登记结果
type SaveResult struct {
	FileName string `json:"fileName"`
	Number   string `json:"number,omitempty"`
	Status   string `json:"status"` // saved / failed
	Error    string `json:"error,omitempty"`
}

// SaveBatch 把转换好的模型文件登记为未分配模型
// 逐个尽力而为：文件移动成功才写库，失败的文件留在模型目录
func (s *Service) SaveBatch(ctx context.Context, items []SaveItem) []SaveResult {
	results := make([]SaveResult, 0, len(items))
	for _, item := range items {
		if item.ProjectID == "" || item.Name == "" {
			results = append(results, SaveResult{FileName: item.Name, Status: "failed", Error: "projectId and name are required"})
			continue
		}
		src := filepath.Join(s.layout.ModelsDir(item.ProjectID), item.Name)
		dst := filepath.Join(s.layout.UnassignedDir(item.ProjectID), item.Name)

		moved, err := s.layout.Move(src, dst)
		if err != nil {
			results = append(results, SaveResult{FileName: item.Name, Status: "failed", Error: err.Error()})
			continue
		}
		if !moved {
			results = append(results, SaveResult{FileName: item.Name, Status: "failed", Error: "converted file not found"})
			continue
		}

		m := &model.UnassignedModel{
			Number:    model.NewID("TAG"),
			ProjectID: item.ProjectID,
			FileName:  item.Name,
		}
		if err := s.repo.Unassigned.Create(ctx, m); err != nil {
			// 写库失败把文件挪回去，保持目录与库一致
			_, _ = s.layout.Move(dst, src)
			results = append(results, SaveResult{FileName: item.Name, Status: "failed", Error: err.Error()})
			continue
		}
		results = append(results, SaveResult{FileName: item.Name, Number: m.Number, Status: "saved"})
	}
	return results
}

// ChangedFile 前端回传的文件内容
type ChangedFile struct {
	Name string          `json:"name"`
	Data model.ByteArray `json:"data"`
}

// ChangedResult 单个回传文件的落盘结果
type ChangedResult struct {
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"` // saved / failed
	Error  string `json:"error,omitempty"`
}

// SaveChangedFiles 把前端改过的模型内容写进未分配目录并补登记录
// 逐个尽力而为，单个文件失败不影响其余文件
func (s *Service) SaveChangedFiles(ctx context.Context, projectID string, files []ChangedFile) []ChangedResult {
	results := make([]ChangedResult, 0, len(files))
	dir := s.layout.UnassignedDir(projectID)
	for _, f := range files {
		if f.Name == "" || len(f.Data) == 0 {
			results = append(results, ChangedResult{Name: f.Name, Status: "failed", Error: "name and data are required"})
			continue
		}
		if err := s.layout.EnsureDir(dir); err != nil {
			results = append(results, ChangedResult{Name: f.Name, Status: "failed", Error: err.Error()})
			continue
		}
		dst := filepath.Join(dir, filepath.Base(f.Name))
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			results = append(results, ChangedResult{Name: f.Name, Status: "failed", Error: err.Error()})
			continue
		}

		// 已有登记时只覆盖文件，不重复插行
		if _, err := s.repo.Unassigned.GetByProjectAndFile(ctx, projectID, f.Name); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				results = append(results, ChangedResult{Name: f.Name, Status: "failed", Error: err.Error()})
				continue
			}
			m := &model.UnassignedModel{
				Number:    model.NewID("TAG"),
				ProjectID: projectID,
				FileName:  f.Name,
			}
			if err := s.repo.Unassigned.Create(ctx, m); err != nil {
				results = append(results, ChangedResult{Name: f.Name, Status: "failed", Error: err.Error()})
				continue
			}
		}
		results = append(results, ChangedResult{Name: f.Name, Path: dst, Status: "saved"})
	}
	return results
}

// AssignItem 单条分配请求：把未分配模型绑定到标签
// 每条自带项目；标签号已存在时走更新，否则新建标签
type AssignItem struct {
	ProjectID string `json:"projectId"`
	TagID     string `json:"tagId"`
	TagName   string `json:"tagName"`
	TagType   string `json:"tagType"`
	FileName  string `json:"fileName"`
}

// AssignResult 单条分配结果
type AssignResult struct {
	TagName  string `json:"tagName"`
	FileName string `json:"fileName"`
	Status   string `json:"status"` // created / updated / failed
	Error    string `json:"error,omitempty"`
}

// errAssignBatch 批内有失败时触发整体回滚
var errAssignBatch = errors.New("assign batch had failures")

// AssignTags 单事务批量分配：任一条失败则整批回滚
// 按条目顺序处理：标签号已存在则更新（类型变更时换明细表），否则
// 新建 Tag + TagInfo + 明细行；都会删掉对应的未分配记录。
// 回滚不改写已算出的单条结果，调用方靠 partial 标记感知回滚。
// 文件移动在提交之后执行，源文件缺失不视为错误
func (s *Service) AssignTags(ctx context.Context, items []AssignItem) ([]AssignResult, bool, error) {
	results := make([]AssignResult, len(items))

	type plannedMove struct {
		src string
		dst string
	}
	var moves []plannedMove

	err := s.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moves = moves[:0]
		failed := false
		for i, item := range items {
			results[i] = AssignResult{TagName: item.TagName, FileName: item.FileName}

			if item.ProjectID == "" || item.TagID == "" || item.TagName == "" || item.TagType == "" || item.FileName == "" {
				results[i].Status = "failed"
				results[i].Error = "projectId, tagId, tagName, tagType and fileName are required"
				failed = true
				continue
			}
			typ := model.ParseTagType(item.TagType)

			var existing model.Tag
			err := tx.Where("number = ?", item.TagName).First(&existing).Error
			switch {
			case err == nil:
				if existing.ProjectID == nil || *existing.ProjectID != item.ProjectID {
					results[i].Status = "failed"
					results[i].Error = "tag number belongs to another project"
					failed = true
					continue
				}
				if err := s.assignExisting(tx, &existing, typ, item.FileName); err != nil {
					results[i].Status = "failed"
					results[i].Error = err.Error()
					failed = true
					continue
				}
				results[i].Status = "updated"
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := s.assignNew(tx, item, typ); err != nil {
					results[i].Status = "failed"
					results[i].Error = err.Error()
					failed = true
					continue
				}
				results[i].Status = "created"
			default:
				results[i].Status = "failed"
				results[i].Error = err.Error()
				failed = true
				continue
			}

			if err := tx.Where("\"projectId\" = ? AND \"fileName\" = ?", item.ProjectID, item.FileName).
				Delete(&model.UnassignedModel{}).Error; err != nil {
				results[i].Status = "failed"
				results[i].Error = err.Error()
				failed = true
				continue
			}

			moves = append(moves, plannedMove{
				src: filepath.Join(s.layout.UnassignedDir(item.ProjectID), item.FileName),
				dst: filepath.Join(s.layout.TagsDir(item.ProjectID), item.FileName),
			})
		}
		if failed {
			return errAssignBatch
		}
		return nil
	})

	if errors.Is(err, errAssignBatch) {
		return results, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("assign transaction failed: %w", err)
	}

	// 提交后才动文件
	for _, m := range moves {
		if _, err := s.layout.Move(m.src, m.dst); err != nil {
			return results, false, fmt.Errorf("assigned but file relocation failed: %w", err)
		}
	}
	return results, false, nil
}

// assignExisting 更新已有标签：改文件名和类型，类型变更时换明细表
func (s *Service) assignExisting(tx *gorm.DB, tag *model.Tag, typ model.TagType, fileName string) error {
	oldType := model.ParseTagType(tag.Type)

	tag.Filename = &fileName
	tag.Type = string(typ)
	if err := tx.Save(tag).Error; err != nil {
		return err
	}

	typeStr := string(typ)
	if err := tx.Model(&model.TagInfo{}).
		Where("\"tagId\" = ?", tag.TagID).
		Update("type", typeStr).Error; err != nil {
		return err
	}

	if oldType != typ {
		if err := deleteDetailRow(tx, tag.TagID, oldType); err != nil {
			return err
		}
		if err := createDetailRow(tx, tag, typ); err != nil {
			return err
		}
	}
	return nil
}

// assignNew 新建标签及其通用信息和明细行
func (s *Service) assignNew(tx *gorm.DB, item AssignItem, typ model.TagType) error {
	pid := item.ProjectID
	fileName := item.FileName
	tag := &model.Tag{
		TagID:     item.TagID,
		Number:    item.TagName,
		ProjectID: &pid,
		Name:      item.TagName,
		Type:      string(typ),
		Filename:  &fileName,
	}
	if err := tx.Create(tag).Error; err != nil {
		return err
	}

	tagName := item.TagName
	typeStr := string(typ)
	info := &model.TagInfo{
		TagID:     item.TagID,
		Tag:       &tagName,
		Type:      &typeStr,
		ProjectID: &pid,
	}
	if err := tx.Create(info).Error; err != nil {
		return err
	}
	return createDetailRow(tx, tag, typ)
}

// createDetailRow 按类型插入空明细行，类型无明细表时为空操作
func createDetailRow(tx *gorm.DB, tag *model.Tag, typ model.TagType) error {
	tagID := tag.TagID
	switch typ {
	case model.TagTypeLine:
		return tx.Create(&model.LineList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}).Error
	case model.TagTypeEquipment:
		return tx.Create(&model.EquipmentList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}).Error
	case model.TagTypeValve:
		return tx.Create(&model.ValveList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}).Error
	default:
		return nil
	}
}

// deleteDetailRow 按类型删除明细行，类型无明细表时为空操作
func deleteDetailRow(tx *gorm.DB, tagID string, typ model.TagType) error {
	switch typ {
	case model.TagTypeLine:
		return tx.Where("\"tagId\" = ?", tagID).Delete(&model.LineList{}).Error
	case model.TagTypeEquipment:
		return tx.Where("\"tagId\" = ?", tagID).Delete(&model.EquipmentList{}).Error
	case model.TagTypeValve:
		return tx.Where("\"tagId\" = ?", tagID).Delete(&model.ValveList{}).Error
	default:
		return nil
	}
}

// ListUnassigned 获取项目的未分配模型
func (s *Service) ListUnassigned(ctx context.Context, projectID string) ([]*model.UnassignedModel, error) {
	models, err := s.repo.Unassigned.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned models: %w", err)
	}
	return models, nil
}

// DeleteUnassigned 删除一个未分配模型及其文件
func (s *Service) DeleteUnassigned(ctx context.Context, number string) error {
	m, err := s.repo.Unassigned.GetByNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("unassigned model not found: %w", err)
	}
	if err := s.repo.Unassigned.Delete(ctx, number); err != nil {
		return fmt.Errorf("failed to delete unassigned model: %w", err)
	}
	path := filepath.Join(s.layout.UnassignedDir(m.ProjectID), m.FileName)
	if err := s.layout.Remove(path); err != nil {
		return fmt.Errorf("record deleted but file removal failed: %w", err)
	}
	return nil
}

// DeleteAllUnassigned 删除项目的全部未分配模型及文件
func (s *Service) DeleteAllUnassigned(ctx context.Context, projectID string) (int, error) {
	models, err := s.repo.Unassigned.ListByProject(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to list unassigned models: %w", err)
	}
	if err := s.repo.Unassigned.DeleteByProject(ctx, projectID); err != nil {
		return 0, fmt.Errorf("failed to delete unassigned models: %w", err)
	}
	for _, m := range models {
		path := filepath.Join(s.layout.UnassignedDir(projectID), m.FileName)
		if err := s.layout.Remove(path); err != nil {
			return 0, fmt.Errorf("records deleted but file removal failed: %w", err)
		}
	}
	return len(models), nil
}
