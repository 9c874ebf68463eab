package project

import (
	"context"
	"fmt"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// Service 项目服务
type Service struct {
	repo   *repository.Repositories
	layout *storage.Layout
}

// NewService 创建项目服务
func NewService(repo *repository.Repositories, layout *storage.Layout) *Service {
	return &Service{repo: repo, layout: layout}
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	ProjectNumber      *string `json:"projectNumber"`
	ProjectName        string  `json:"projectName" binding:"required"`
	ProjectDescription *string `json:"projectDescription"`
	ProjectPath        *string `json:"projectPath"`
}

// UpdateProjectRequest 更新项目请求，项目 id 随请求体传入
type UpdateProjectRequest struct {
	ProjectID          string  `json:"projectId"`
	ProjectNumber      *string `json:"projectNumber"`
	ProjectName        *string `json:"projectName"`
	ProjectDescription *string `json:"projectDescription"`
	ProjectPath        *string `json:"projectPath"`
}

// CreateProject 创建项目并播种批注状态和自定义字段单位
func (s *Service) CreateProject(ctx context.Context, req *CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		ProjectID:   model.NewID("PRJ"),
		Number:      req.ProjectNumber,
		Name:        req.ProjectName,
		Description: req.ProjectDescription,
		Path:        req.ProjectPath,
	}

	if err := s.repo.Project.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.seedCommentStatuses(ctx, project.ProjectID); err != nil {
		return nil, err
	}
	if err := s.seedFieldUnits(ctx, project.ProjectID); err != nil {
		return nil, err
	}

	// 项目的模型目录提前建好
	for _, dir := range []string{
		s.layout.ModelsDir(project.ProjectID),
		s.layout.UnassignedDir(project.ProjectID),
		s.layout.TagsDir(project.ProjectID),
	} {
		if err := s.layout.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("failed to create project dirs: %w", err)
		}
	}

	return project, nil
}

// seedCommentStatuses 新项目默认的 open / closed 批注状态
func (s *Service) seedCommentStatuses(ctx context.Context, projectID string) error {
	defaults := []model.CommentStatus{
		{Number: model.NewID("CST"), ProjectID: projectID, StatusName: "open", Color: "#ff0000"},
		{Number: model.NewID("CST"), ProjectID: projectID, StatusName: "closed", Color: "#00ff00"},
	}
	for i := range defaults {
		if err := s.repo.Comment.CreateStatus(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("failed to seed comment statuses: %w", err)
		}
	}
	return nil
}

// seedFieldUnits 新项目默认的 50 个 TagInfo 字段单位
func (s *Service) seedFieldUnits(ctx context.Context, projectID string) error {
	units := make([]*model.UserTagInfoFieldUnit, 0, model.TagInfoFieldCount)
	for i := 1; i <= model.TagInfoFieldCount; i++ {
		pid := projectID
		units = append(units, &model.UserTagInfoFieldUnit{
			ProjectID:   &pid,
			Field:       fmt.Sprintf("Taginfo%d", i),
			Unit:        fmt.Sprintf("Taginfounit%d", i),
			StatusCheck: "checked",
		})
	}
	if err := s.repo.Tag.CreateFieldUnits(ctx, units); err != nil {
		return fmt.Errorf("failed to seed tag info field units: %w", err)
	}
	return nil
}

// ListProjects 获取所有项目
func (s *Service) ListProjects(ctx context.Context) ([]*model.Project, error) {
	projects, err := s.repo.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject 获取项目
func (s *Service) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.repo.Project.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}
	return project, nil
}

// UpdateProject 更新项目
func (s *Service) UpdateProject(ctx context.Context, projectID string, req *UpdateProjectRequest) (*model.Project, error) {
	project, err := s.repo.Project.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}

	if req.ProjectNumber != nil {
		project.Number = req.ProjectNumber
	}
	if req.ProjectName != nil {
		project.Name = *req.ProjectName
	}
	if req.ProjectDescription != nil {
		project.Description = req.ProjectDescription
	}
	if req.ProjectPath != nil {
		project.Path = req.ProjectPath
	}

	if err := s.repo.Project.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject 删除项目
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.repo.Project.GetByProjectID(ctx, projectID); err != nil {
		return fmt.Errorf("project not found: %w", err)
	}
	if err := s.repo.Project.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
