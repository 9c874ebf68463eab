package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// DocumentRepository 文档仓库
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository 创建文档仓库
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create 创建文档
func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// Update 更新文档
func (r *DocumentRepository) Update(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// GetByDocumentID 根据文档 ID 获取文档
func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*model.Document, error) {
	var doc model.Document
	err := r.db.WithContext(ctx).Where("\"documentId\" = ?", documentID).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByNumber 根据文档编号获取文档
func (r *DocumentRepository) GetByNumber(ctx context.Context, number string) (*model.Document, error) {
	var doc model.Document
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByProject 获取项目下的所有文档
func (r *DocumentRepository) ListByProject(ctx context.Context, projectID string) ([]*model.Document, error) {
	var docs []*model.Document
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

// Delete 删除文档
func (r *DocumentRepository) Delete(ctx context.Context, documentID string) error {
	return r.db.WithContext(ctx).Where("\"documentId\" = ?", documentID).Delete(&model.Document{}).Error
}
