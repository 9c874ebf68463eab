package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// SceneRepository 3D 场景仓库（视角 / 地面 / 水面 / 项目设置）
type SceneRepository struct {
	db *gorm.DB
}

// NewSceneRepository 创建 3D 场景仓库
func NewSceneRepository(db *gorm.DB) *SceneRepository {
	return &SceneRepository{db: db}
}

// ========== 相机视角 ==========

// SaveView 保存相机视角，同名同项目覆盖
func (r *SceneRepository) SaveView(ctx context.Context, view *model.View) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "projectId"}},
		UpdateAll: true,
	}).Create(view).Error
}

// GetView 根据项目和名称获取相机视角
func (r *SceneRepository) GetView(ctx context.Context, projectID, name string) (*model.View, error) {
	var view model.View
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ? AND name = ?", projectID, name).
		First(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListViewsByProject 获取项目下的所有相机视角
func (r *SceneRepository) ListViewsByProject(ctx context.Context, projectID string) ([]*model.View, error) {
	var views []*model.View
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("name ASC").
		Find(&views).Error
	return views, err
}

// RenameView 重命名相机视角
func (r *SceneRepository) RenameView(ctx context.Context, projectID, oldName, newName string) error {
	return r.db.WithContext(ctx).Model(&model.View{}).
		Where("\"projectId\" = ? AND name = ?", projectID, oldName).
		Update("name", newName).Error
}

// DeleteView 删除相机视角
func (r *SceneRepository) DeleteView(ctx context.Context, projectID, name string) error {
	return r.db.WithContext(ctx).
		Where("\"projectId\" = ? AND name = ?", projectID, name).
		Delete(&model.View{}).Error
}

// ========== 地面设置 ==========

// GetGround 获取项目的地面设置
func (r *SceneRepository) GetGround(ctx context.Context, projectID string) (*model.GroundSettings, error) {
	var ground model.GroundSettings
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).First(&ground).Error
	if err != nil {
		return nil, err
	}
	return &ground, nil
}

// SaveGround 保存项目的地面设置，已有则覆盖
func (r *SceneRepository) SaveGround(ctx context.Context, ground *model.GroundSettings) error {
	existing, err := r.GetGround(ctx, ground.ProjectID)
	if err == nil {
		ground.ID = existing.ID
		return r.db.WithContext(ctx).Save(ground).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(ground).Error
}

// ========== 水面设置 ==========

// GetWater 获取项目的水面设置
func (r *SceneRepository) GetWater(ctx context.Context, projectID string) (*model.WaterSettings, error) {
	var water model.WaterSettings
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).First(&water).Error
	if err != nil {
		return nil, err
	}
	return &water, nil
}

// SaveWater 保存项目的水面设置，已有则覆盖
func (r *SceneRepository) SaveWater(ctx context.Context, water *model.WaterSettings) error {
	existing, err := r.GetWater(ctx, water.ProjectID)
	if err == nil {
		water.ID = existing.ID
		return r.db.WithContext(ctx).Save(water).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(water).Error
}

// ========== 项目设置 ==========

// GetSettings 获取项目设置
func (r *SceneRepository) GetSettings(ctx context.Context, projectID string) (*model.SceneSettings, error) {
	var settings model.SceneSettings
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings 保存项目设置，已有则覆盖
func (r *SceneRepository) SaveSettings(ctx context.Context, settings *model.SceneSettings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "projectId"}},
		UpdateAll: true,
	}).Create(settings).Error
}

// ========== 树选择取模型 ==========

// TreeModelRef 树节点与标签模型文件的关联投影
type TreeModelRef struct {
	Area      *string `gorm:"column:area" json:"area"`
	Disc      *string `gorm:"column:disc" json:"disc"`
	Sys       *string `gorm:"column:sys" json:"sys"`
	Tag       string  `gorm:"column:tag" json:"tag"`
	TagID     string  `gorm:"column:tag_id" json:"tagId"`
	ProjectID *string `gorm:"column:project_id" json:"projectId"`
	Filename  *string `gorm:"column:filename" json:"filename"`
}

// ListTreeModelRefs 按树选择查标签模型：tagIDs 非空时只按标签过滤，
// 否则按区域 / 专业 / 系统过滤
func (r *SceneRepository) ListTreeModelRefs(ctx context.Context, projectID string, areaIDs, discIDs, sysIDs, tagIDs []string) ([]*TreeModelRef, error) {
	q := r.db.WithContext(ctx).
		Table("tree AS tr").
		Select(`tr.area, tr.disc, tr.sys, tr.tag, t."tagId" AS tag_id, t."projectId" AS project_id, t.filename`).
		Joins("JOIN tags t ON tr.tag = t.number").
		Where("tr.project_id = ?", projectID)

	if len(tagIDs) > 0 {
		q = q.Where("tr.tag IN ?", tagIDs)
	} else {
		if len(areaIDs) > 0 {
			q = q.Where("tr.area IN ?", areaIDs)
		}
		if len(discIDs) > 0 {
			q = q.Where("tr.disc IN ?", discIDs)
		}
		if len(sysIDs) > 0 {
			q = q.Where("tr.sys IN ?", sysIDs)
		}
	}

	var refs []*TreeModelRef
	if err := q.Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
