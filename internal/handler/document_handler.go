package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	svcdocument "github.com/Navii02/pods-pidBackend/internal/service/document"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// DocumentHandler 图纸文档处理器
type DocumentHandler struct {
	svc    *svcdocument.Service
	layout *storage.Layout
}

// NewDocumentHandler 创建图纸文档处理器
func NewDocumentHandler(svc *svcdocument.Service, layout *storage.Layout) *DocumentHandler {
	return &DocumentHandler{svc: svc, layout: layout}
}

// AddDocument 上传并登记文档，multipart：file + 表单字段
func (h *DocumentHandler) AddDocument(c *gin.Context) {
	projectID := c.PostForm("projectId")
	number := c.PostForm("number")
	if projectID == "" || number == "" {
		BadRequest(c, "projectId and number are required")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required: "+err.Error())
		return
	}

	// 时间戳前缀避免重名覆盖
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := h.layout.EnsureDir(h.layout.DocumentsDir()); err != nil {
		Error(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.layout.DocumentsDir(), storedName)); err != nil {
		Error(c, err)
		return
	}

	req := &svcdocument.AddDocumentRequest{
		ProjectID: projectID,
		Number:    number,
		Filename:  &storedName,
	}
	if v := c.PostForm("title"); v != "" {
		req.Title = &v
	}
	if v := c.PostForm("descr"); v != "" {
		req.Descr = &v
	}
	if v := c.PostForm("type"); v != "" {
		req.Type = &v
	}

	doc, err := h.svc.AddDocument(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, svcdocument.ErrDuplicateNumber) {
			// 登记失败时清掉刚落盘的文件
			_ = h.layout.Remove(filepath.Join(h.layout.DocumentsDir(), storedName))
			NotAcceptable(c, err.Error())
			return
		}
		Error(c, err)
		return
	}
	Created(c, doc)
}

// ListDocuments 获取项目下的所有文档，项目 id 取查询参数 projectId
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		BadRequest(c, "projectId is required")
		return
	}
	docs, err := h.svc.ListDocuments(c.Request.Context(), projectID)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, docs)
}

// UpdateDocument 更新文档元数据
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req svcdocument.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	doc, err := h.svc.UpdateDocument(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, svcdocument.ErrDuplicateNumber) {
			NotAcceptable(c, err.Error())
			return
		}
		Error(c, err)
		return
	}
	Success(c, doc)
}

// DeleteDocument 删除文档
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.svc.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// StreamFile 以文件流方式返回文档（SVG 图纸等）
func (h *DocumentHandler) StreamFile(c *gin.Context) {
	path, err := h.svc.FilePath(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	c.File(path)
}
