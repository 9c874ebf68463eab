package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// UnassignedRepository 未分配模型仓库
type UnassignedRepository struct {
	db *gorm.DB
}

// NewUnassignedRepository 创建未分配模型仓库
func NewUnassignedRepository(db *gorm.DB) *UnassignedRepository {
	return &UnassignedRepository{db: db}
}

// Create 创建未分配模型记录
func (r *UnassignedRepository) Create(ctx context.Context, m *model.UnassignedModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByNumber 根据编号获取未分配模型记录
func (r *UnassignedRepository) GetByNumber(ctx context.Context, number string) (*model.UnassignedModel, error) {
	var m model.UnassignedModel
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByProjectAndFile 根据项目和文件名获取未分配模型记录
func (r *UnassignedRepository) GetByProjectAndFile(ctx context.Context, projectID, fileName string) (*model.UnassignedModel, error) {
	var m model.UnassignedModel
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ? AND \"fileName\" = ?", projectID, fileName).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByProject 获取项目下的所有未分配模型
func (r *UnassignedRepository) ListByProject(ctx context.Context, projectID string) ([]*model.UnassignedModel, error) {
	var models []*model.UnassignedModel
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("created_at ASC").
		Find(&models).Error
	return models, err
}

// Delete 删除未分配模型记录
func (r *UnassignedRepository) Delete(ctx context.Context, number string) error {
	return r.db.WithContext(ctx).Where("number = ?", number).Delete(&model.UnassignedModel{}).Error
}

// DeleteByProject 删除项目下的所有未分配模型记录
func (r *UnassignedRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Delete(&model.UnassignedModel{}).Error
}
