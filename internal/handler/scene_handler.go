package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Navii02/pods-pidBackend/internal/model"
	svcscene "github.com/Navii02/pods-pidBackend/internal/service/scene"
)

// SceneHandler 3D 场景处理器
type SceneHandler struct {
	svc *svcscene.Service
}

// NewSceneHandler 创建 3D 场景处理器
func NewSceneHandler(svc *svcscene.Service) *SceneHandler {
	return &SceneHandler{svc: svc}
}

// SaveView 保存相机视角
func (h *SceneHandler) SaveView(c *gin.Context) {
	var view model.View
	if err := c.ShouldBindJSON(&view); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	saved, err := h.svc.SaveView(c.Request.Context(), &view)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, saved)
}

// ListViews 获取项目下的所有相机视角
func (h *SceneHandler) ListViews(c *gin.Context) {
	views, err := h.svc.ListViews(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, views)
}

// UpdateViewRequest 重命名相机视角请求
type UpdateViewRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	OldName   string `json:"oldName" binding:"required"`
	NewName   string `json:"newName" binding:"required"`
}

// UpdateView 重命名相机视角
func (h *SceneHandler) UpdateView(c *gin.Context) {
	var req UpdateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.RenameView(c.Request.Context(), req.ProjectID, req.OldName, req.NewName); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"name": req.NewName})
}

// GetView 获取相机视角
func (h *SceneHandler) GetView(c *gin.Context) {
	view, err := h.svc.GetView(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, view)
}

// DeleteView 删除相机视角，viewid 即视角名称
func (h *SceneHandler) DeleteView(c *gin.Context) {
	if err := h.svc.DeleteView(c.Request.Context(), c.Param("projectId"), c.Param("viewid")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("viewid")})
}

// GetGround 获取地面设置
func (h *SceneHandler) GetGround(c *gin.Context) {
	ground, err := h.svc.GetGround(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, ground)
}

// SaveGround 保存地面设置
func (h *SceneHandler) SaveGround(c *gin.Context) {
	var ground model.GroundSettings
	if err := c.ShouldBindJSON(&ground); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.SaveGround(c.Request.Context(), &ground); err != nil {
		Error(c, err)
		return
	}
	Success(c, ground)
}

// GetWater 获取水面设置
func (h *SceneHandler) GetWater(c *gin.Context) {
	water, err := h.svc.GetWater(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, water)
}

// SaveWater 保存水面设置
func (h *SceneHandler) SaveWater(c *gin.Context) {
	var water model.WaterSettings
	if err := c.ShouldBindJSON(&water); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.SaveWater(c.Request.Context(), &water); err != nil {
		Error(c, err)
		return
	}
	Success(c, water)
}

// GetSettings 获取项目设置
func (h *SceneHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, settings)
}

// GetModelsBySelection 按树选择（区域 / 专业 / 系统 / 标签，逗号分隔）
// 取命中标签的模型文件
func (h *SceneHandler) GetModelsBySelection(c *gin.Context) {
	projectID := c.Param("projectId")
	models, err := h.svc.GetModelsBySelection(
		c.Request.Context(),
		projectID,
		splitIDs(c.Param("areaIds")),
		splitIDs(c.Param("discIds")),
		splitIDs(c.Param("systemIds")),
		splitIDs(c.Param("tagIds")),
	)
	if err != nil {
		Error(c, err)
		return
	}
	if len(models) == 0 {
		BadRequest(c, "no matching records found")
		return
	}
	Success(c, models)
}

// splitIDs 逗号分隔的路径参数转过滤列表，占位值视为未过滤
func splitIDs(param string) []string {
	switch param {
	case "", "null", "undefined":
		return nil
	}
	parts := strings.Split(param, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// SaveSettings 保存项目设置
func (h *SceneHandler) SaveSettings(c *gin.Context) {
	var settings model.SceneSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.SaveSettings(c.Request.Context(), &settings); err != nil {
		Error(c, err)
		return
	}
	Success(c, settings)
}
