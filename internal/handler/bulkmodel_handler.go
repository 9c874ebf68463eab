package handler

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	svcbulk "github.com/Navii02/pods-pidBackend/internal/service/bulkmodel"
	"github.com/Navii02/pods-pidBackend/internal/service/converter"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// BulkModelHandler 批量 3D 模型处理器
type BulkModelHandler struct {
	svc    *svcbulk.Service
	layout *storage.Layout
}

// NewBulkModelHandler 创建批量模型处理器
func NewBulkModelHandler(svc *svcbulk.Service, layout *storage.Layout) *BulkModelHandler {
	return &BulkModelHandler{svc: svc, layout: layout}
}

// stageBulkUploads 把上传文件落到暂存目录，每个文件独占一个子目录
// 避免同名文件互相覆盖
func stageBulkUploads(c *gin.Context, tmpDir string, files []*multipart.FileHeader) ([]svcbulk.UploadedFile, error) {
	uploads := make([]svcbulk.UploadedFile, 0, len(files))
	for i, f := range files {
		dst := filepath.Join(tmpDir, strconv.Itoa(i), filepath.Base(f.Filename))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, err
		}
		if err := c.SaveUploadedFile(f, dst); err != nil {
			return nil, err
		}
		uploads = append(uploads, svcbulk.UploadedFile{Name: f.Filename, Path: dst})
	}
	return uploads, nil
}

// UploadBulkFiles 批量上传模型文件并转换
// multipart：files 多文件 + projectId 表单字段
func (h *BulkModelHandler) UploadBulkFiles(c *gin.Context) {
	projectID := c.PostForm("projectId")
	if projectID == "" {
		BadRequest(c, "projectId is required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		BadRequest(c, "invalid multipart form: "+err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		BadRequest(c, "no files uploaded")
		return
	}

	// 先做格式检查，不受支持的格式整批拒绝
	for _, f := range files {
		if !converter.Supported(f.Filename) {
			BadRequest(c, "unsupported model format: "+f.Filename)
			return
		}
	}

	tmpDir, err := os.MkdirTemp("", "bulk-upload-*")
	if err != nil {
		Error(c, err)
		return
	}
	defer os.RemoveAll(tmpDir)

	uploads, err := stageBulkUploads(c, tmpDir, files)
	if err != nil {
		Error(c, err)
		return
	}

	results := h.svc.ImportBatch(c.Request.Context(), projectID, uploads)
	for _, r := range results {
		if r.Status == "failed" {
			MultiStatus(c, results)
			return
		}
	}
	Success(c, results)
}

// SaveBulkImport 把转换好的模型登记为未分配模型
// 请求体为顶层数组，每条 {projectId, name}
func (h *BulkModelHandler) SaveBulkImport(c *gin.Context) {
	var items []svcbulk.SaveItem
	if err := c.ShouldBindJSON(&items); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if len(items) == 0 {
		BadRequest(c, "no valid files data provided")
		return
	}

	results := h.svc.SaveBatch(c.Request.Context(), items)
	for _, r := range results {
		if r.Status == "failed" {
			MultiStatus(c, results)
			return
		}
	}
	Created(c, results)
}

// SaveChangedFilesRequest 回存改动文件请求
type SaveChangedFilesRequest struct {
	ProjectID    string                `json:"projectId" binding:"required"`
	FileNamePath []svcbulk.ChangedFile `json:"fileNamePath" binding:"required"`
}

// SaveChangedFiles 把前端改过的模型内容写回未分配目录
func (h *BulkModelHandler) SaveChangedFiles(c *gin.Context) {
	var req SaveChangedFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if len(req.FileNamePath) == 0 {
		BadRequest(c, "no valid files data provided")
		return
	}

	results := h.svc.SaveChangedFiles(c.Request.Context(), req.ProjectID, req.FileNamePath)
	for _, r := range results {
		if r.Status == "failed" {
			MultiStatus(c, results)
			return
		}
	}
	Success(c, results)
}

// AssignModelTags 单事务批量分配模型到标签
// 请求体为顶层数组，每条自带 projectId；任一条失败则整批回滚并返回 207，
// 响应保留每条自身的结果，回滚由信封字段标记
func (h *BulkModelHandler) AssignModelTags(c *gin.Context) {
	var items []svcbulk.AssignItem
	if err := c.ShouldBindJSON(&items); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if len(items) == 0 {
		BadRequest(c, "items is empty")
		return
	}

	results, rolledBack, err := h.svc.AssignTags(c.Request.Context(), items)
	if err != nil {
		Error(c, err)
		return
	}

	counts := gin.H{"created": 0, "updated": 0, "failed": 0}
	for _, r := range results {
		if n, ok := counts[r.Status].(int); ok {
			counts[r.Status] = n + 1
		}
	}
	body := gin.H{"rolledBack": rolledBack, "counts": counts, "results": results}
	if rolledBack {
		MultiStatus(c, body)
		return
	}
	Success(c, body)
}

// ListUnassigned 获取项目的未分配模型
func (h *BulkModelHandler) ListUnassigned(c *gin.Context) {
	models, err := h.svc.ListUnassigned(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, models)
}

// DeleteUnassigned 删除一个未分配模型
func (h *BulkModelHandler) DeleteUnassigned(c *gin.Context) {
	if err := h.svc.DeleteUnassigned(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// DeleteAllUnassigned 删除项目的全部未分配模型
func (h *BulkModelHandler) DeleteAllUnassigned(c *gin.Context) {
	count, err := h.svc.DeleteAllUnassigned(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": count})
}
