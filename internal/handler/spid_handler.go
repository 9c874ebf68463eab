package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	svcspid "github.com/Navii02/pods-pidBackend/internal/service/spid"
)

// SpidHandler 智能图纸处理器
type SpidHandler struct {
	svc *svcspid.Service
}

// NewSpidHandler 创建智能图纸处理器
func NewSpidHandler(svc *svcspid.Service) *SpidHandler {
	return &SpidHandler{svc: svc}
}

// ListDrawingDocuments 获取图纸类文档，查询参数 projectId + type
func (h *SpidHandler) ListDrawingDocuments(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		BadRequest(c, "projectId is required")
		return
	}
	docs, err := h.svc.ListDrawingDocuments(c.Request.Context(), projectID, c.Query("type"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, docs)
}

// SaveElementsRequest 批量保存元素状态请求
type SaveElementsRequest struct {
	Items []svcspid.ElementItem `json:"items" binding:"required"`
}

// SaveElements 批量保存图纸元素状态，文档 id 取路径参数
func (h *SpidHandler) SaveElements(c *gin.Context) {
	var req SaveElementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.SaveElements(c.Request.Context(), c.Param("id"), req.Items); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"saved": len(req.Items)})
}

// ListDocumentsByTag 获取绑定过某标签的图纸文档
func (h *SpidHandler) ListDocumentsByTag(c *gin.Context) {
	refs, err := h.svc.ListDocumentsByTag(c.Request.Context(), c.Param("tagId"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, refs)
}

// GetElements 获取文档的所有元素状态
func (h *SpidHandler) GetElements(c *gin.Context) {
	elements, err := h.svc.GetElements(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, elements)
}

// UpdateDrawingRequest 整体重写图纸请求
type UpdateDrawingRequest struct {
	SVGContent string                `json:"svgContent"`
	Items      []svcspid.ElementItem `json:"items"`
}

// UpdateDrawing 替换图纸 SVG 内容并重建元素状态
func (h *SpidHandler) UpdateDrawing(c *gin.Context) {
	var req UpdateDrawingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.SVGContent == "" {
		BadRequest(c, "no SVG content provided")
		return
	}
	saved, err := h.svc.UpdateDrawing(c.Request.Context(), c.Param("id"), req.SVGContent, req.Items)
	if err != nil {
		if errors.Is(err, svcspid.ErrInvalidElements) {
			BadRequest(c, err.Error())
			return
		}
		Error(c, err)
		return
	}
	Success(c, gin.H{"saved": saved})
}

// AssignTag 绑定标签到图纸元素
func (h *SpidHandler) AssignTag(c *gin.Context) {
	var req svcspid.AssignTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	spidTag, err := h.svc.AssignTag(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, spidTag)
}

// ListAssignedTags 获取图纸文件下的所有标签绑定
func (h *SpidHandler) ListAssignedTags(c *gin.Context) {
	spidTags, err := h.svc.ListAssignedTags(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, spidTags)
}

// AddFlag 创建旗标
func (h *SpidHandler) AddFlag(c *gin.Context) {
	var req svcspid.AddFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	flag, err := h.svc.AddFlag(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, flag)
}

// UpdateFlag 更新旗标
func (h *SpidHandler) UpdateFlag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid flag id")
		return
	}
	var req svcspid.UpdateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	flag, err := h.svc.UpdateFlag(c.Request.Context(), uint(id), &req)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, flag)
}

// ListFlags 获取图纸文件下的所有旗标
func (h *SpidHandler) ListFlags(c *gin.Context) {
	flags, err := h.svc.ListFlags(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, flags)
}

// DeleteFlag 删除旗标
func (h *SpidHandler) DeleteFlag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid flag id")
		return
	}
	if err := h.svc.DeleteFlag(c.Request.Context(), uint(id)); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": id})
}
