package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// CommentRepository 批注仓库
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建批注仓库
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建批注
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update 更新批注
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// GetByNumber 根据批注编号获取批注
func (r *CommentRepository) GetByNumber(ctx context.Context, number string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByProject 获取项目下的所有批注
func (r *CommentRepository) ListByProject(ctx context.Context, projectID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("createddate ASC").
		Find(&comments).Error
	return comments, err
}

// ListByFile 获取图纸文件下的所有批注
func (r *CommentRepository) ListByFile(ctx context.Context, fileID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("fileid = ?", fileID).
		Order("createddate ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteByProject 删除项目下的全部批注
func (r *CommentRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Delete(&model.Comment{}).Error
}

// Delete 删除批注
func (r *CommentRepository) Delete(ctx context.Context, number string) error {
	return r.db.WithContext(ctx).Where("number = ?", number).Delete(&model.Comment{}).Error
}

// ========== 批注状态 ==========

// CreateStatus 创建批注状态
func (r *CommentRepository) CreateStatus(ctx context.Context, status *model.CommentStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// UpdateStatus 更新批注状态
func (r *CommentRepository) UpdateStatus(ctx context.Context, status *model.CommentStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// GetStatus 根据编号获取批注状态
func (r *CommentRepository) GetStatus(ctx context.Context, number string) (*model.CommentStatus, error) {
	var status model.CommentStatus
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStatusByName 根据项目和状态名获取批注状态
func (r *CommentRepository) GetStatusByName(ctx context.Context, projectID, name string) (*model.CommentStatus, error) {
	var status model.CommentStatus
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ? AND statusname = ?", projectID, name).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListStatusesByProject 获取项目下的所有批注状态
func (r *CommentRepository) ListStatusesByProject(ctx context.Context, projectID string) ([]*model.CommentStatus, error) {
	var statuses []*model.CommentStatus
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("number ASC").
		Find(&statuses).Error
	return statuses, err
}

// DeleteStatus 删除批注状态
func (r *CommentRepository) DeleteStatus(ctx context.Context, number string) error {
	return r.db.WithContext(ctx).Where("number = ?", number).Delete(&model.CommentStatus{}).Error
}
