package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	svctree "github.com/Navii02/pods-pidBackend/internal/service/tree"
)

// TreeHandler 层级目录处理器
type TreeHandler struct {
	svc *svctree.Service
}

// NewTreeHandler 创建层级目录处理器
func NewTreeHandler(svc *svctree.Service) *TreeHandler {
	return &TreeHandler{svc: svc}
}

func treeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, svctree.ErrDuplicateCode):
		NotAcceptable(c, err.Error())
	case errors.Is(err, svctree.ErrDuplicateNode):
		Conflict(c, err.Error())
	default:
		Error(c, err)
	}
}

// ========== 区域 ==========

// AddArea 创建区域
func (h *TreeHandler) AddArea(c *gin.Context) {
	var req svctree.AddEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	area, err := h.svc.AddArea(c.Request.Context(), &req)
	if err != nil {
		treeError(c, err)
		return
	}
	Created(c, area)
}

// ListAreas 获取项目下的所有区域
func (h *TreeHandler) ListAreas(c *gin.Context) {
	areas, err := h.svc.ListAreas(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, areas)
}

// UpdateArea 更新区域，区域 id 取请求体的 AreaId 字段
func (h *TreeHandler) UpdateArea(c *gin.Context) {
	var req struct {
		svctree.UpdateEntityRequest
		AreaID string `json:"AreaId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	area, err := h.svc.UpdateArea(c.Request.Context(), req.AreaID, &req.UpdateEntityRequest)
	if err != nil {
		treeError(c, err)
		return
	}
	Success(c, area)
}

// DeleteArea 删除区域
func (h *TreeHandler) DeleteArea(c *gin.Context) {
	if err := h.svc.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// ========== 专业 ==========

// AddDiscipline 创建专业
func (h *TreeHandler) AddDiscipline(c *gin.Context) {
	var req svctree.AddEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	disc, err := h.svc.AddDiscipline(c.Request.Context(), &req)
	if err != nil {
		treeError(c, err)
		return
	}
	Created(c, disc)
}

// ListDisciplines 获取项目下的所有专业
func (h *TreeHandler) ListDisciplines(c *gin.Context) {
	discs, err := h.svc.ListDisciplines(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, discs)
}

// UpdateDiscipline 更新专业，专业 id 取请求体的 discId 字段
func (h *TreeHandler) UpdateDiscipline(c *gin.Context) {
	var req struct {
		svctree.UpdateEntityRequest
		DiscID string `json:"discId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	disc, err := h.svc.UpdateDiscipline(c.Request.Context(), req.DiscID, &req.UpdateEntityRequest)
	if err != nil {
		treeError(c, err)
		return
	}
	Success(c, disc)
}

// DeleteDiscipline 删除专业
func (h *TreeHandler) DeleteDiscipline(c *gin.Context) {
	if err := h.svc.DeleteDiscipline(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// ========== 系统 ==========

// AddSystem 创建系统
func (h *TreeHandler) AddSystem(c *gin.Context) {
	var req svctree.AddEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	sys, err := h.svc.AddSystem(c.Request.Context(), &req)
	if err != nil {
		treeError(c, err)
		return
	}
	Created(c, sys)
}

// ListSystems 获取项目下的所有系统
func (h *TreeHandler) ListSystems(c *gin.Context) {
	syss, err := h.svc.ListSystems(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, syss)
}

// UpdateSystem 更新系统，系统 id 取请求体的 sysId 字段
func (h *TreeHandler) UpdateSystem(c *gin.Context) {
	var req struct {
		svctree.UpdateEntityRequest
		SysID string `json:"sysId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	sys, err := h.svc.UpdateSystem(c.Request.Context(), req.SysID, &req.UpdateEntityRequest)
	if err != nil {
		treeError(c, err)
		return
	}
	Success(c, sys)
}

// DeleteSystem 删除系统
func (h *TreeHandler) DeleteSystem(c *gin.Context) {
	if err := h.svc.DeleteSystem(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("id")})
}

// ========== 树路径 ==========

// AddNode 创建树路径行
func (h *TreeHandler) AddNode(c *gin.Context) {
	var req svctree.AddNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	node, err := h.svc.AddNode(c.Request.Context(), &req)
	if err != nil {
		treeError(c, err)
		return
	}
	Created(c, node)
}

// GetTree 获取项目的全部树路径行
func (h *TreeHandler) GetTree(c *gin.Context) {
	nodes, err := h.svc.GetTree(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, nodes)
}

// DeleteBranch 按路径代码删除树分支
func (h *TreeHandler) DeleteBranch(c *gin.Context) {
	if err := h.svc.DeleteBranch(c.Request.Context(), c.Param("id"), c.Param("code")); err != nil {
		Error(c, err)
		return
	}
	Success(c, gin.H{"deleted": c.Param("code")})
}
