package repository

import "gorm.io/gorm"

// Repositories 仓库集合，用于统一管理所有仓库
type Repositories struct {
	DB         *gorm.DB // 直接访问数据库
	Project    *ProjectRepository
	Document   *DocumentRepository
	Tag        *TagRepository
	Tree       *TreeRepository
	Spid       *SpidRepository
	Comment    *CommentRepository
	Unassigned *UnassignedRepository
	Scene      *SceneRepository
}

// NewRepositories 创建所有仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:         db,
		Project:    NewProjectRepository(db),
		Document:   NewDocumentRepository(db),
		Tag:        NewTagRepository(db),
		Tree:       NewTreeRepository(db),
		Spid:       NewSpidRepository(db),
		Comment:    NewCommentRepository(db),
		Unassigned: NewUnassignedRepository(db),
		Scene:      NewSceneRepository(db),
	}
}
