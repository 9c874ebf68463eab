package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// SpidRepository 智能图纸仓库（元素状态 / 标签绑定 / 旗标）
type SpidRepository struct {
	db *gorm.DB
}

// NewSpidRepository 创建智能图纸仓库
func NewSpidRepository(db *gorm.DB) *SpidRepository {
	return &SpidRepository{db: db}
}

// ========== 元素状态 ==========

// UpsertElement 保存图纸元素状态，按 (document, uniqueId) 覆盖
func (r *SpidRepository) UpsertElement(ctx context.Context, element *model.SpidElement) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_id"}, {Name: "unique_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"item_json", "updated_at"}),
	}).Create(element).Error
}

// ListElementsByDocument 获取文档的所有元素状态
func (r *SpidRepository) ListElementsByDocument(ctx context.Context, documentID string) ([]*model.SpidElement, error) {
	var elements []*model.SpidElement
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Find(&elements).Error
	return elements, err
}

// DeleteElementsByDocument 删除文档的所有元素状态
func (r *SpidRepository) DeleteElementsByDocument(ctx context.Context, documentID string) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&model.SpidElement{}).Error
}

// ========== 标签绑定 ==========

// CreateSpidTag 创建标签与图纸元素的绑定
func (r *SpidRepository) CreateSpidTag(ctx context.Context, spidTag *model.SpidTag) error {
	return r.db.WithContext(ctx).Create(spidTag).Error
}

// ListSpidTagsByFile 获取图纸文件下的所有标签绑定
func (r *SpidRepository) ListSpidTagsByFile(ctx context.Context, fileID string) ([]*model.SpidTag, error) {
	var spidTags []*model.SpidTag
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Find(&spidTags).Error
	return spidTags, err
}

// DeleteSpidTagsByTag 删除某标签的所有绑定
func (r *SpidRepository) DeleteSpidTagsByTag(ctx context.Context, tagID string) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagID).Delete(&model.SpidTag{}).Error
}

// ========== 旗标 ==========

// CreateFlag 创建旗标
func (r *SpidRepository) CreateFlag(ctx context.Context, flag *model.Flag) error {
	return r.db.WithContext(ctx).Create(flag).Error
}

// UpdateFlag 更新旗标
func (r *SpidRepository) UpdateFlag(ctx context.Context, flag *model.Flag) error {
	return r.db.WithContext(ctx).Save(flag).Error
}

// GetFlag 根据 ID 获取旗标
func (r *SpidRepository) GetFlag(ctx context.Context, id uint) (*model.Flag, error) {
	var flag model.Flag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&flag).Error
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

// ListFlagsByFile 获取图纸文件下的所有旗标
func (r *SpidRepository) ListFlagsByFile(ctx context.Context, fileID string) ([]*model.Flag, error) {
	var flags []*model.Flag
	err := r.db.WithContext(ctx).
		Where("\"fileId\" = ?", fileID).
		Order("id ASC").
		Find(&flags).Error
	return flags, err
}

// DeleteFlag 删除旗标
func (r *SpidRepository) DeleteFlag(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Flag{}).Error
}

// TagDocumentRef 标签出现过的图纸文档投影
type TagDocumentRef struct {
	DocumentID string  `gorm:"column:document_id" json:"documentId"`
	Title      *string `gorm:"column:title" json:"title"`
	Number     string  `gorm:"column:number" json:"number"`
}

// ListDocumentsByTag 获取绑定过某标签的图纸文档，按文档去重
func (r *SpidRepository) ListDocumentsByTag(ctx context.Context, tagID string) ([]*TagDocumentRef, error) {
	var refs []*TagDocumentRef
	err := r.db.WithContext(ctx).
		Table("spid_tags AS st").
		Select(`DISTINCT d."documentId" AS document_id, d.title, d.number`).
		Joins(`JOIN documents d ON st.file_id = d."documentId"`).
		Where("st.tag_id = ?", tagID).
		Scan(&refs).Error
	return refs, err
}
