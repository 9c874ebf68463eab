package handler

import (
	"github.com/gin-gonic/gin"

	svcproject "github.com/Navii02/pods-pidBackend/internal/service/project"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	svc *svcproject.Service
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(svc *svcproject.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req svcproject.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	project, err := h.svc.CreateProject(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, project)
}

// ListProjects 获取所有项目
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, projects)
}

// GetProject 获取项目
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, project)
}

// UpdateProject 更新项目，项目 id 取请求体的 projectId 字段
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req svcproject.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.ProjectID == "" {
		BadRequest(c, "projectId is required")
		return
	}
	project, err := h.svc.UpdateProject(c.Request.Context(), req.ProjectID, &req)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, project)
}

// DeleteProjectRequest 删除项目请求
type DeleteProjectRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
}

// DeleteProject 删除项目，项目 id 取请求体的 projectId 字段
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	var req DeleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.DeleteProject(c.Request.Context(), req.ProjectID); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": req.ProjectID})
}
