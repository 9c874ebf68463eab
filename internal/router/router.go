package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Navii02/pods-pidBackend/internal/handler"
	"github.com/Navii02/pods-pidBackend/internal/middleware"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, layout *storage.Layout) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 静态文件：图纸和模型直接走文件服务
	r.Static("/upload", layout.DocumentsDir())
	r.Static("/models", layout.ModelsRoot())
	r.Static("/tags", layout.TagsRoot())

	api := r.Group("/api")
	{
		// 项目
		api.POST("/createproject", h.Project.CreateProject)
		api.GET("/getproject", h.Project.ListProjects)
		api.GET("/getproject/:id", h.Project.GetProject)
		api.PUT("/updateproject", h.Project.UpdateProject)
		api.DELETE("/deleteproject", h.Project.DeleteProject)

		// 文档
		api.POST("/savedocument", h.Document.AddDocument)
		api.GET("/getdocumentsdetails", h.Document.ListDocuments)
		api.PUT("/updatedocument/:id", h.Document.UpdateDocument)
		api.DELETE("/deletedocument/:id", h.Document.DeleteDocument)

		// 智能图纸
		api.GET("/getsvgdocuments", h.Spid.ListDrawingDocuments)
		api.GET("/getspiddocument/:id", h.Document.StreamFile)
		api.GET("/spidelements/:id", h.Spid.GetElements)
		api.POST("/saveelementswithuniqueId/:id", h.Spid.SaveElements)
		api.POST("/updatespiddata/:id", h.Spid.UpdateDrawing)
		api.POST("/assign-tag", h.Spid.AssignTag)
		api.GET("/get-assigned-tags/:id", h.Spid.ListAssignedTags)
		api.GET("/tags/:tagId/documents", h.Spid.ListDocumentsByTag)
		api.POST("/assign-flag", h.Spid.AddFlag)
		api.GET("/get-assigned-flags/:id", h.Spid.ListFlags)
		api.PUT("/updateflag/:id", h.Spid.UpdateFlag)
		api.DELETE("/deleteflag/:id", h.Spid.DeleteFlag)

		// 标签
		api.POST("/addtag", h.Tag.AddTag)
		api.POST("/save-updated-tagfile", h.Tag.SaveUpdatedTagFiles)
		api.GET("/get-alltags/:id", h.Tag.ListTags)
		api.GET("/gettag/:id", h.Tag.GetTag)
		api.PUT("/update-tag/:id", h.Tag.UpdateTag)
		api.DELETE("/delete-tag/:id", h.Tag.DeleteTag)
		api.GET("/get-mesh-tag-by-project/:projectId/:filename", h.Tag.GetModel)

		// 标签通用信息和自定义字段单位
		api.GET("/get-taginfo/:id", h.Tag.GetTagInfo)
		api.GET("/get-allgeneral-taginfo/:id", h.Tag.ListTagInfo)
		api.PUT("/edit-general-taginfo-list", h.Tag.UpdateTagInfo)
		api.GET("/getgeneral-taginfo-field/:id", h.Tag.ListFieldUnits)
		api.PUT("/update-general-taginfo-field", h.Tag.UpdateFieldUnits)

		// 类型明细清单
		api.GET("/getline/:id", h.Tag.GetLineList)
		api.PUT("/edit-line-list", h.Tag.EditLine)
		api.DELETE("/delete-line-list/:id", h.Tag.DeleteTag)
		api.GET("/getline-details/:id/:tagId", h.Tag.GetLineDetail)
		api.GET("/getequipment/:id", h.Tag.GetEquipmentList)
		api.PUT("/edit-equipment-list", h.Tag.EditEquipment)
		api.DELETE("/delete-equipment-list/:id", h.Tag.DeleteTag)
		api.GET("/getequipment-details/:id/:tagId", h.Tag.GetEquipmentDetail)
		api.GET("/getvalve/:id", h.Tag.GetValveList)
		api.PUT("/edit-valve-list", h.Tag.EditValve)
		api.PUT("/delete-valve-list", h.Tag.ClearDetail)
		api.GET("/getvalve-details/:id/:tagId", h.Tag.GetValveDetail)

		// 批量模型流水线
		api.POST("/upload-bulk-files", h.BulkModel.UploadBulkFiles)
		api.POST("/save-bulkimport", h.BulkModel.SaveBulkImport)
		api.POST("/save-changedfiles", h.BulkModel.SaveChangedFiles)
		api.GET("/get-unassignedmodels/:id", h.BulkModel.ListUnassigned)
		api.POST("/assign-model-tags", h.BulkModel.AssignModelTags)
		api.DELETE("/delete-allunassignedmodel/:id", h.BulkModel.DeleteAllUnassigned)
		api.DELETE("/delete-unassignedmodel/:id", h.BulkModel.DeleteUnassigned)

		// 区域 / 专业 / 系统 / 树
		api.POST("/add-area", h.Tree.AddArea)
		api.GET("/getarea/:id", h.Tree.ListAreas)
		api.PUT("/updatearea", h.Tree.UpdateArea)
		api.DELETE("/deletearea/:id", h.Tree.DeleteArea)
		api.POST("/add-system", h.Tree.AddSystem)
		api.GET("/getsystems/:id", h.Tree.ListSystems)
		api.PUT("/updatesystem", h.Tree.UpdateSystem)
		api.DELETE("/deletesystem/:id", h.Tree.DeleteSystem)
		api.POST("/add-disipline", h.Tree.AddDiscipline)
		api.GET("/getdispline/:id", h.Tree.ListDisciplines)
		api.PUT("/updatediscipline", h.Tree.UpdateDiscipline)
		api.DELETE("/deletediscipline/:id", h.Tree.DeleteDiscipline)
		api.POST("/add-tree", h.Tree.AddNode)
		api.GET("/gettree/:id", h.Tree.GetTree)
		api.DELETE("/deletetree/:id/:code", h.Tree.DeleteBranch)

		// 批注状态
		api.GET("/getcomments/:id", h.Comment.ListStatuses)
		api.GET("/comment/get-comments/:id", h.Comment.ListStatuses)
		api.POST("/comment/add-comment", h.Comment.AddStatus)
		api.DELETE("/comment/delete-comment/:id", h.Comment.DeleteStatus)
		api.PUT("/updatecommentstatus/:id", h.Comment.UpdateStatus)

		// 批注
		api.POST("/savecomment", h.Comment.AddComment)
		api.GET("/get-allcomments/:id", h.Comment.ListComments)
		api.GET("/get-comments/:id", h.Comment.ListCommentsByFile)
		api.PUT("/update-comment", h.Comment.UpdateComment)
		api.DELETE("/delete-comment/:id", h.Comment.DeleteComment)
		api.DELETE("/delete=all-comments/:id", h.Comment.DeleteAllComments)

		// 3D 场景
		api.GET("/getmodel/:projectId/:areaIds/:discIds/:systemIds/:tagIds", h.Scene.GetModelsBySelection)
		api.POST("/save-saved-view", h.Scene.SaveView)
		api.GET("/all-saved-view/:projectId", h.Scene.ListViews)
		api.PUT("/update-saved-view", h.Scene.UpdateView)
		api.DELETE("/delete-saved-view/:projectId/:viewid", h.Scene.DeleteView)
		api.GET("/get-view/:id/:name", h.Scene.GetView)
		api.GET("/ground-settings/:id", h.Scene.GetGround)
		api.POST("/ground-settings", h.Scene.SaveGround)
		api.GET("/water-settings/:id", h.Scene.GetWater)
		api.POST("/water-settings", h.Scene.SaveWater)
		api.GET("/settings/:id", h.Scene.GetSettings)
		api.POST("/settings", h.Scene.SaveSettings)
	}

	return r
}
