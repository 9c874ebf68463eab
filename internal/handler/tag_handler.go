package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Navii02/pods-pidBackend/internal/model"
	svctag "github.com/Navii02/pods-pidBackend/internal/service/tag"
)

// TagHandler 标签处理器
type TagHandler struct {
	svc *svctag.Service
}

// NewTagHandler 创建标签处理器
func NewTagHandler(svc *svctag.Service) *TagHandler {
	return &TagHandler{svc: svc}
}

// AddTag 创建标签
func (h *TagHandler) AddTag(c *gin.Context) {
	var req svctag.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tag, err := h.svc.AddTag(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, svctag.ErrDuplicateNumber) {
			Conflict(c, err.Error())
			return
		}
		Error(c, err)
		return
	}
	Created(c, tag)
}

// ListTags 获取项目下的所有标签
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.svc.ListTags(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, tags)
}

// GetTag 获取标签
func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.svc.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, tag)
}

// UpdateTag 更新标签
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req svctag.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	tag, err := h.svc.UpdateTag(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, svctag.ErrDuplicateNumber) {
			Conflict(c, err.Error())
			return
		}
		Error(c, err)
		return
	}
	Success(c, tag)
}

// DeleteTag 删除标签
func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.svc.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// GetModel 根据项目和模型文件名查标签及文件信息
func (h *TagHandler) GetModel(c *gin.Context) {
	info, err := h.svc.GetModelByFilename(c.Request.Context(), c.Param("projectId"), c.Param("filename"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, info)
}

// ========== TagInfo ==========

// GetTagInfo 获取标签通用信息
func (h *TagHandler) GetTagInfo(c *gin.Context) {
	info, err := h.svc.GetTagInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, info)
}

// ListTagInfo 获取项目下某类型的通用信息，类型经查询参数 type 传入
func (h *TagHandler) ListTagInfo(c *gin.Context) {
	infos, err := h.svc.ListTagInfo(c.Request.Context(), c.Param("id"), c.Query("type"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, infos)
}

// UpdateTagInfo 保存标签通用信息
func (h *TagHandler) UpdateTagInfo(c *gin.Context) {
	var info model.TagInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if info.TagID == "" {
		BadRequest(c, "tagId is required")
		return
	}
	if err := h.svc.UpdateTagInfo(c.Request.Context(), &info); err != nil {
		Error(c, err)
		return
	}
	Success(c, info)
}

// ListFieldUnits 获取项目的自定义字段单位
func (h *TagHandler) ListFieldUnits(c *gin.Context) {
	units, err := h.svc.ListFieldUnits(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, units)
}

// UpdateFieldUnits 批量更新自定义字段单位
func (h *TagHandler) UpdateFieldUnits(c *gin.Context) {
	var units []*model.UserTagInfoFieldUnit
	if err := c.ShouldBindJSON(&units); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.UpdateFieldUnits(c.Request.Context(), units); err != nil {
		Error(c, err)
		return
	}
	Success(c, units)
}

// ========== 类型明细表 ==========

// GetLineList 获取项目的管线清单
func (h *TagHandler) GetLineList(c *gin.Context) {
	rows, err := h.svc.GetLineList(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, rows)
}

// EditLine 保存管线明细
func (h *TagHandler) EditLine(c *gin.Context) {
	var row model.LineList
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if row.Tag == "" {
		BadRequest(c, "tag is required")
		return
	}
	if err := h.svc.EditLine(c.Request.Context(), &row); err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// GetEquipmentList 获取项目的设备清单
func (h *TagHandler) GetEquipmentList(c *gin.Context) {
	rows, err := h.svc.GetEquipmentList(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, rows)
}

// EditEquipment 保存设备明细
func (h *TagHandler) EditEquipment(c *gin.Context) {
	var row model.EquipmentList
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if row.Tag == "" {
		BadRequest(c, "tag is required")
		return
	}
	if err := h.svc.EditEquipment(c.Request.Context(), &row); err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// GetValveList 获取项目的阀门清单
func (h *TagHandler) GetValveList(c *gin.Context) {
	rows, err := h.svc.GetValveList(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, rows)
}

// EditValve 保存阀门明细
func (h *TagHandler) EditValve(c *gin.Context) {
	var row model.ValveList
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if row.Tag == "" {
		BadRequest(c, "tag is required")
		return
	}
	if err := h.svc.EditValve(c.Request.Context(), &row); err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// GetLineDetail 获取项目下某标签的管线明细
func (h *TagHandler) GetLineDetail(c *gin.Context) {
	row, err := h.svc.GetLineDetail(c.Request.Context(), c.Param("id"), c.Param("tagId"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// GetEquipmentDetail 获取项目下某标签的设备明细
func (h *TagHandler) GetEquipmentDetail(c *gin.Context) {
	row, err := h.svc.GetEquipmentDetail(c.Request.Context(), c.Param("id"), c.Param("tagId"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// GetValveDetail 获取项目下某标签的阀门明细
func (h *TagHandler) GetValveDetail(c *gin.Context) {
	row, err := h.svc.GetValveDetail(c.Request.Context(), c.Param("id"), c.Param("tagId"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, row)
}

// ClearDetailRequest 清空明细行请求
type ClearDetailRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	Tag       string `json:"tag" binding:"required"`
}

// ClearDetail 清空标签明细行的业务字段，按项目和标签号定位
func (h *TagHandler) ClearDetail(c *gin.Context) {
	var req ClearDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.ClearDetailByNumber(c.Request.Context(), req.ProjectID, req.Tag); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"cleared": req.Tag})
}

// SaveUpdatedTagFilesRequest 覆盖标签模型文件请求
type SaveUpdatedTagFilesRequest struct {
	ProjectID    string              `json:"projectId" binding:"required"`
	FileNamePath []svctag.FileUpdate `json:"fileNamePath" binding:"required"`
}

// SaveUpdatedTagFiles 覆盖已分配标签的模型文件
func (h *TagHandler) SaveUpdatedTagFiles(c *gin.Context) {
	var req SaveUpdatedTagFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if len(req.FileNamePath) == 0 {
		BadRequest(c, "no valid files data provided")
		return
	}

	results := h.svc.SaveUpdatedFiles(c.Request.Context(), req.ProjectID, req.FileNamePath)
	for _, r := range results {
		if r.Status == "failed" {
			MultiStatus(c, results)
			return
		}
	}
	Success(c, results)
}
