package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// ErrDuplicateNumber 文档编号已被占用，文档编号全局唯一
var ErrDuplicateNumber = errors.New("document number already exists")

// Service 图纸文档服务
type Service struct {
	repo   *repository.Repositories
	layout *storage.Layout
}

// NewService 创建图纸文档服务
func NewService(repo *repository.Repositories, layout *storage.Layout) *Service {
	return &Service{repo: repo, layout: layout}
}

// AddDocumentRequest 登记文档请求，文件由处理器先落到图纸目录
type AddDocumentRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	Number    string  `json:"number" binding:"required"`
	Title     *string `json:"title"`
	Descr     *string `json:"descr"`
	Type      *string `json:"type"`
	Filename  *string `json:"filename"`
}

// UpdateDocumentRequest 更新文档请求
type UpdateDocumentRequest struct {
	Number *string `json:"number"`
	Title  *string `json:"title"`
	Descr  *string `json:"descr"`
	Type   *string `json:"type"`
}

// AddDocument 登记文档
func (s *Service) AddDocument(ctx context.Context, req *AddDocumentRequest) (*model.Document, error) {
	if _, err := s.repo.Document.GetByNumber(ctx, req.Number); err == nil {
		return nil, ErrDuplicateNumber
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check document number: %w", err)
	}

	doc := &model.Document{
		DocumentID: model.NewID("DOC"),
		Number:     req.Number,
		Title:      req.Title,
		Descr:      req.Descr,
		Type:       req.Type,
		Filename:   req.Filename,
		ProjectID:  &req.ProjectID,
	}
	if err := s.repo.Document.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// ListDocuments 获取项目下的所有文档
func (s *Service) ListDocuments(ctx context.Context, projectID string) ([]*model.Document, error) {
	docs, err := s.repo.Document.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument 获取文档
func (s *Service) GetDocument(ctx context.Context, documentID string) (*model.Document, error) {
	doc, err := s.repo.Document.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}
	return doc, nil
}

// UpdateDocument 更新文档元数据
func (s *Service) UpdateDocument(ctx context.Context, documentID string, req *UpdateDocumentRequest) (*model.Document, error) {
	doc, err := s.repo.Document.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}

	if req.Number != nil && *req.Number != doc.Number {
		if existing, err := s.repo.Document.GetByNumber(ctx, *req.Number); err == nil && existing.DocumentID != documentID {
			return nil, ErrDuplicateNumber
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check document number: %w", err)
		}
		doc.Number = *req.Number
	}
	if req.Title != nil {
		doc.Title = req.Title
	}
	if req.Descr != nil {
		doc.Descr = req.Descr
	}
	if req.Type != nil {
		doc.Type = req.Type
	}

	if err := s.repo.Document.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// DeleteDocument 删除文档，级联图纸元素状态和磁盘文件
func (s *Service) DeleteDocument(ctx context.Context, documentID string) error {
	doc, err := s.repo.Document.GetByDocumentID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("document not found: %w", err)
	}

	if err := s.repo.Spid.DeleteElementsByDocument(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete drawing elements: %w", err)
	}
	if err := s.repo.Document.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if doc.Filename != nil {
		path := filepath.Join(s.layout.DocumentsDir(), *doc.Filename)
		if err := s.layout.Remove(path); err != nil {
			return fmt.Errorf("document deleted but file removal failed: %w", err)
		}
	}
	return nil
}

// FilePath 文档在图纸目录下的绝对路径，文件缺失返回错误
func (s *Service) FilePath(ctx context.Context, documentID string) (string, error) {
	doc, err := s.repo.Document.GetByDocumentID(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("document not found: %w", err)
	}
	if doc.Filename == nil || *doc.Filename == "" {
		return "", errors.New("document has no file")
	}
	path := filepath.Join(s.layout.DocumentsDir(), *doc.Filename)
	if _, err := s.layout.FileSize(path); err != nil {
		return "", fmt.Errorf("document file missing on disk: %w", err)
	}
	return path, nil
}
