package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
)

// defaultAuthor 请求未带创建人时的兜底账号
const defaultAuthor = "jpo@poulconsult"

// Service 批注服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建批注服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// AddCommentRequest 创建批注请求
type AddCommentRequest struct {
	ProjectID  string   `json:"projectId" binding:"required"`
	FileID     *string  `json:"fileid"`
	DocNumber  *string  `json:"docNumber"`
	SourceType *string  `json:"sourcetype"`
	Comment    *string  `json:"comment"`
	Status     *string  `json:"status"`
	Priority   *string  `json:"priority"`
	CreatedBy  *string  `json:"createdby"`
	CoordX     *float64 `json:"coOrdinateX"`
	CoordY     *float64 `json:"coOrdinateY"`
	CoordZ     *float64 `json:"coOrdinateZ"`
}

// UpdateCommentRequest 更新批注请求，批注号随请求体传入
type UpdateCommentRequest struct {
	Number   string  `json:"number"`
	Comment  *string `json:"comment"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	ClosedBy *string `json:"closedBy"`
}

// AddComment 创建批注
func (s *Service) AddComment(ctx context.Context, req *AddCommentRequest) (*model.Comment, error) {
	createdBy := req.CreatedBy
	if createdBy == nil || *createdBy == "" {
		author := defaultAuthor
		createdBy = &author
	}
	comment := &model.Comment{
		Number:     model.NewID("C"),
		ProjectID:  req.ProjectID,
		FileID:     req.FileID,
		DocNumber:  req.DocNumber,
		SourceType: req.SourceType,
		Comment:    req.Comment,
		Status:     req.Status,
		Priority:   req.Priority,
		CreatedBy:  createdBy,
		CoordX:     req.CoordX,
		CoordY:     req.CoordY,
		CoordZ:     req.CoordZ,
	}
	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListComments 获取项目下的所有批注
func (s *Service) ListComments(ctx context.Context, projectID string) ([]*model.Comment, error) {
	comments, err := s.repo.Comment.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ListCommentsByFile 获取图纸文件下的所有批注
func (s *Service) ListCommentsByFile(ctx context.Context, fileID string) ([]*model.Comment, error) {
	comments, err := s.repo.Comment.ListByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// UpdateComment 更新批注，状态改为 closed 时记录关闭人和时间
func (s *Service) UpdateComment(ctx context.Context, number string, req *UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.repo.Comment.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("comment not found: %w", err)
	}

	if req.Comment != nil {
		comment.Comment = req.Comment
	}
	if req.Priority != nil {
		comment.Priority = req.Priority
	}
	if req.Status != nil {
		comment.Status = req.Status
		if strings.EqualFold(*req.Status, "closed") {
			closedBy := req.ClosedBy
			if closedBy == nil || *closedBy == "" {
				author := defaultAuthor
				closedBy = &author
			}
			now := time.Now()
			comment.ClosedBy = closedBy
			comment.ClosedDate = &now
		} else {
			comment.ClosedBy = nil
			comment.ClosedDate = nil
		}
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteAllComments 删除项目下的全部批注
func (s *Service) DeleteAllComments(ctx context.Context, projectID string) (int, error) {
	comments, err := s.repo.Comment.ListByProject(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to list comments: %w", err)
	}
	if err := s.repo.Comment.DeleteByProject(ctx, projectID); err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}
	return len(comments), nil
}

// DeleteComment 删除批注
func (s *Service) DeleteComment(ctx context.Context, number string) error {
	if _, err := s.repo.Comment.GetByNumber(ctx, number); err != nil {
		return fmt.Errorf("comment not found: %w", err)
	}
	if err := s.repo.Comment.Delete(ctx, number); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// ========== 批注状态 ==========

// AddStatusRequest 创建批注状态请求
type AddStatusRequest struct {
	ProjectID  string `json:"projectId" binding:"required"`
	StatusName string `json:"statusname" binding:"required"`
	Color      string `json:"color" binding:"required"`
}

// UpdateStatusRequest 更新批注状态请求
type UpdateStatusRequest struct {
	StatusName *string `json:"statusname"`
	Color      *string `json:"color"`
}

// AddStatus 创建批注状态
func (s *Service) AddStatus(ctx context.Context, req *AddStatusRequest) (*model.CommentStatus, error) {
	status := &model.CommentStatus{
		Number:     model.NewID("CST"),
		ProjectID:  req.ProjectID,
		StatusName: req.StatusName,
		Color:      req.Color,
	}
	if err := s.repo.Comment.CreateStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to create comment status: %w", err)
	}
	return status, nil
}

// ListStatuses 获取项目下的所有批注状态
func (s *Service) ListStatuses(ctx context.Context, projectID string) ([]*model.CommentStatus, error) {
	statuses, err := s.repo.Comment.ListStatusesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comment statuses: %w", err)
	}
	return statuses, nil
}

// UpdateStatus 更新批注状态
func (s *Service) UpdateStatus(ctx context.Context, number string, req *UpdateStatusRequest) (*model.CommentStatus, error) {
	status, err := s.repo.Comment.GetStatus(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("comment status not found: %w", err)
	}
	if req.StatusName != nil {
		status.StatusName = *req.StatusName
	}
	if req.Color != nil {
		status.Color = *req.Color
	}
	if err := s.repo.Comment.UpdateStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to update comment status: %w", err)
	}
	return status, nil
}

// DeleteStatus 删除批注状态，open / closed 两个内置状态不可删
func (s *Service) DeleteStatus(ctx context.Context, number string) error {
	status, err := s.repo.Comment.GetStatus(ctx, number)
	if err != nil {
		return fmt.Errorf("comment status not found: %w", err)
	}
	switch strings.ToLower(status.StatusName) {
	case "open", "closed":
		return fmt.Errorf("built-in status %q cannot be deleted", status.StatusName)
	}
	if err := s.repo.Comment.DeleteStatus(ctx, number); err != nil {
		return fmt.Errorf("failed to delete comment status: %w", err)
	}
	return nil
}
