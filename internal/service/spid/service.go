package spid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// ErrInvalidElements 元素列表里有缺字段或非法 JSON 的条目
var ErrInvalidElements = errors.New("invalid drawing elements")

// Service 智能图纸服务：元素状态、标签绑定和旗标
type Service struct {
	repo   *repository.Repositories
	layout *storage.Layout
}

// NewService 创建智能图纸服务
func NewService(repo *repository.Repositories, layout *storage.Layout) *Service {
	return &Service{repo: repo, layout: layout}
}

// ListDrawingDocuments 获取项目下的图纸类文档
// docType 为空时默认取 svg / spid 两类
func (s *Service) ListDrawingDocuments(ctx context.Context, projectID, docType string) ([]*model.Document, error) {
	docs, err := s.repo.Document.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	drawings := make([]*model.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Type == nil {
			continue
		}
		typ := strings.ToLower(*doc.Type)
		if docType != "" {
			if typ == strings.ToLower(docType) {
				drawings = append(drawings, doc)
			}
			continue
		}
		switch typ {
		case "svg", "spid":
			drawings = append(drawings, doc)
		}
	}
	return drawings, nil
}

// ListDocumentsByTag 获取绑定过某标签的图纸文档
func (s *Service) ListDocumentsByTag(ctx context.Context, tagID string) ([]*repository.TagDocumentRef, error) {
	refs, err := s.repo.Spid.ListDocumentsByTag(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents by tag: %w", err)
	}
	return refs, nil
}

// ElementItem 单个图纸元素的编辑状态
type ElementItem struct {
	UniqueID string          `json:"uniqueId" binding:"required"`
	Item     json.RawMessage `json:"item" binding:"required"`
}

// SaveElements 批量保存图纸元素状态，同 (document, uniqueId) 覆盖
func (s *Service) SaveElements(ctx context.Context, documentID string, items []ElementItem) error {
	for _, item := range items {
		element := &model.SpidElement{
			DocumentID: documentID,
			UniqueID:   item.UniqueID,
			ItemJSON:   string(item.Item),
		}
		if err := s.repo.Spid.UpsertElement(ctx, element); err != nil {
			return fmt.Errorf("failed to save element %s: %w", item.UniqueID, err)
		}
	}
	return nil
}

// GetElements 获取文档的所有元素状态
func (s *Service) GetElements(ctx context.Context, documentID string) ([]*model.SpidElement, error) {
	elements, err := s.repo.Spid.ListElementsByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements: %w", err)
	}
	return elements, nil
}

// UpdateDrawing 整体重写图纸：替换 SVG 文件内容并重建全部元素状态
// 元素校验在前，库操作在一个事务里，文件在提交之后才写
func (s *Service) UpdateDrawing(ctx context.Context, documentID, svgContent string, items []ElementItem) (int, error) {
	doc, err := s.repo.Document.GetByDocumentID(ctx, documentID)
	if err != nil {
		return 0, fmt.Errorf("drawing not found: %w", err)
	}
	if doc.Filename == nil || *doc.Filename == "" {
		return 0, fmt.Errorf("document %s has no backing file", documentID)
	}

	for _, item := range items {
		if item.UniqueID == "" || len(item.Item) == 0 {
			return 0, fmt.Errorf("%w: missing uniqueId or item", ErrInvalidElements)
		}
		if !json.Valid(item.Item) {
			return 0, fmt.Errorf("%w: element %s carries invalid JSON", ErrInvalidElements, item.UniqueID)
		}
	}

	err = s.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&model.SpidElement{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			element := &model.SpidElement{
				DocumentID: documentID,
				UniqueID:   item.UniqueID,
				ItemJSON:   string(item.Item),
			}
			if err := tx.Create(element).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to rewrite drawing elements: %w", err)
	}

	path := filepath.Join(s.layout.DocumentsDir(), *doc.Filename)
	if err := os.WriteFile(path, []byte(svgContent), 0o644); err != nil {
		return 0, fmt.Errorf("elements saved but SVG write failed: %w", err)
	}
	return len(items), nil
}

// AssignTagRequest 把标签绑定到图纸元素的请求
type AssignTagRequest struct {
	TagID    string `json:"tagId" binding:"required"`
	UniqueID string `json:"uniqueId" binding:"required"`
	FileID   string `json:"fileId" binding:"required"`
}

// AssignTag 绑定标签到图纸元素
func (s *Service) AssignTag(ctx context.Context, req *AssignTagRequest) (*model.SpidTag, error) {
	spidTag := &model.SpidTag{
		TagID:    req.TagID,
		UniqueID: req.UniqueID,
		FileID:   req.FileID,
	}
	if err := s.repo.Spid.CreateSpidTag(ctx, spidTag); err != nil {
		return nil, fmt.Errorf("failed to assign tag to element: %w", err)
	}
	return spidTag, nil
}

// ListAssignedTags 获取图纸文件下的所有标签绑定
func (s *Service) ListAssignedTags(ctx context.Context, fileID string) ([]*model.SpidTag, error) {
	spidTags, err := s.repo.Spid.ListSpidTagsByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tags: %w", err)
	}
	return spidTags, nil
}

// AddFlagRequest 创建旗标请求
type AddFlagRequest struct {
	FileID             string   `json:"fileId" binding:"required"`
	AssignedDocumentID string   `json:"AssigneddocumentId" binding:"required"`
	UniqueIDs          []string `json:"uniqueIds"`
	DocumentTitle      *string  `json:"documentTitle"`
	FlagText           string   `json:"flagText" binding:"required"`
}

// UpdateFlagRequest 更新旗标请求
type UpdateFlagRequest struct {
	UniqueIDs     []string `json:"uniqueIds"`
	DocumentTitle *string  `json:"documentTitle"`
	FlagText      *string  `json:"flagText"`
}

// AddFlag 创建旗标，元素 id 列表序列化为 JSON 存储
func (s *Service) AddFlag(ctx context.Context, req *AddFlagRequest) (*model.Flag, error) {
	uniqueIDs, err := marshalUniqueIDs(req.UniqueIDs)
	if err != nil {
		return nil, err
	}
	flag := &model.Flag{
		FileID:             req.FileID,
		AssignedDocumentID: req.AssignedDocumentID,
		UniqueIDs:          uniqueIDs,
		DocumentTitle:      req.DocumentTitle,
		FlagText:           req.FlagText,
	}
	if err := s.repo.Spid.CreateFlag(ctx, flag); err != nil {
		return nil, fmt.Errorf("failed to create flag: %w", err)
	}
	return flag, nil
}

// UpdateFlag 更新旗标
func (s *Service) UpdateFlag(ctx context.Context, id uint, req *UpdateFlagRequest) (*model.Flag, error) {
	flag, err := s.repo.Spid.GetFlag(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("flag not found: %w", err)
	}
	if req.UniqueIDs != nil {
		uniqueIDs, err := marshalUniqueIDs(req.UniqueIDs)
		if err != nil {
			return nil, err
		}
		flag.UniqueIDs = uniqueIDs
	}
	if req.DocumentTitle != nil {
		flag.DocumentTitle = req.DocumentTitle
	}
	if req.FlagText != nil {
		flag.FlagText = *req.FlagText
	}
	if err := s.repo.Spid.UpdateFlag(ctx, flag); err != nil {
		return nil, fmt.Errorf("failed to update flag: %w", err)
	}
	return flag, nil
}

// ListFlags 获取图纸文件下的所有旗标
func (s *Service) ListFlags(ctx context.Context, fileID string) ([]*model.Flag, error) {
	flags, err := s.repo.Spid.ListFlagsByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}
	return flags, nil
}

// DeleteFlag 删除旗标
func (s *Service) DeleteFlag(ctx context.Context, id uint) error {
	if _, err := s.repo.Spid.GetFlag(ctx, id); err != nil {
		return fmt.Errorf("flag not found: %w", err)
	}
	if err := s.repo.Spid.DeleteFlag(ctx, id); err != nil {
		return fmt.Errorf("failed to delete flag: %w", err)
	}
	return nil
}

func marshalUniqueIDs(ids []string) (*string, error) {
	if ids == nil {
		return nil, nil
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode unique ids: %w", err)
	}
	s := string(raw)
	return &s, nil
}
