package service

import (
	"github.com/Navii02/pods-pidBackend/internal/config"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/bulkmodel"
	"github.com/Navii02/pods-pidBackend/internal/service/comment"
	"github.com/Navii02/pods-pidBackend/internal/service/converter"
	"github.com/Navii02/pods-pidBackend/internal/service/document"
	"github.com/Navii02/pods-pidBackend/internal/service/project"
	"github.com/Navii02/pods-pidBackend/internal/service/scene"
	"github.com/Navii02/pods-pidBackend/internal/service/spid"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
	"github.com/Navii02/pods-pidBackend/internal/service/tag"
	"github.com/Navii02/pods-pidBackend/internal/service/tree"
)

// Services 服务集合
type Services struct {
	// 业务服务
	Project   *project.Service
	Document  *document.Service
	Tag       *tag.Service
	Tree      *tree.Service
	BulkModel *bulkmodel.Service
	Spid      *spid.Service
	Comment   *comment.Service
	Scene     *scene.Service

	// 基础设施
	Config *config.Config
	Layout *storage.Layout
}

// NewServices 创建所有服务
func NewServices(repo *repository.Repositories, cfg *config.Config) *Services {
	layout := storage.NewLayout(cfg.Storage)
	invoker := converter.NewInvoker(layout.ConvertersDir())

	return &Services{
		Project:   project.NewService(repo, layout),
		Document:  document.NewService(repo, layout),
		Tag:       tag.NewService(repo, layout),
		Tree:      tree.NewService(repo),
		BulkModel: bulkmodel.NewService(repo, layout, invoker),
		Spid:      spid.NewService(repo, layout),
		Comment:   comment.NewService(repo),
		Scene:     scene.NewService(repo, layout),

		Config: cfg,
		Layout: layout,
	}
}
