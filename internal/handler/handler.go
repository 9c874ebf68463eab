package handler

import (
	"github.com/Navii02/pods-pidBackend/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Project   *ProjectHandler
	Document  *DocumentHandler
	Tag       *TagHandler
	Tree      *TreeHandler
	BulkModel *BulkModelHandler
	Spid      *SpidHandler
	Comment   *CommentHandler
	Scene     *SceneHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Project:   NewProjectHandler(svc.Project),
		Document:  NewDocumentHandler(svc.Document, svc.Layout),
		Tag:       NewTagHandler(svc.Tag),
		Tree:      NewTreeHandler(svc.Tree),
		BulkModel: NewBulkModelHandler(svc.BulkModel, svc.Layout),
		Spid:      NewSpidHandler(svc.Spid),
		Comment:   NewCommentHandler(svc.Comment),
		Scene:     NewSceneHandler(svc.Scene),
	}
}
