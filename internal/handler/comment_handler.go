package handler

import (
	"github.com/gin-gonic/gin"

	svccomment "github.com/Navii02/pods-pidBackend/internal/service/comment"
)

// CommentHandler 批注处理器
type CommentHandler struct {
	svc *svccomment.Service
}

// NewCommentHandler 创建批注处理器
func NewCommentHandler(svc *svccomment.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// AddComment 创建批注
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req svccomment.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, comment)
}

// ListComments 获取项目下的所有批注
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, comments)
}

// ListCommentsByFile 获取图纸文件下的所有批注
func (h *CommentHandler) ListCommentsByFile(c *gin.Context) {
	comments, err := h.svc.ListCommentsByFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, comments)
}

// UpdateComment 更新批注，批注号取请求体的 number 字段
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req svccomment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Number == "" {
		BadRequest(c, "comment number is required")
		return
	}
	comment, err := h.svc.UpdateComment(c.Request.Context(), req.Number, &req)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, comment)
}

// DeleteComment 删除批注
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.svc.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// DeleteAllComments 删除项目下的全部批注
func (h *CommentHandler) DeleteAllComments(c *gin.Context) {
	count, err := h.svc.DeleteAllComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": count})
}

// ========== 批注状态 ==========

// AddStatus 创建批注状态
func (h *CommentHandler) AddStatus(c *gin.Context) {
	var req svccomment.AddStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	status, err := h.svc.AddStatus(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, status)
}

// ListStatuses 获取项目下的所有批注状态
func (h *CommentHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.svc.ListStatuses(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, statuses)
}

// UpdateStatus 更新批注状态
func (h *CommentHandler) UpdateStatus(c *gin.Context) {
	var req svccomment.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	status, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, status)
}

// DeleteStatus 删除批注状态
func (h *CommentHandler) DeleteStatus(c *gin.Context) {
	if err := h.svc.DeleteStatus(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}
