package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// ProjectRepository 项目仓库
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目仓库
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create 创建项目
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update 更新项目
func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// GetByProjectID 根据项目 ID 获取项目
func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List 获取所有项目
func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.WithContext(ctx).Order("id ASC").Find(&projects).Error
	return projects, err
}

// Delete 删除项目
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Delete(&model.Project{}).Error
}
