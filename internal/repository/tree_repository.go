package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// TreeRepository 层级目录仓库（区域 / 专业 / 系统 / 树路径）
type TreeRepository struct {
	db *gorm.DB
}

// NewTreeRepository 创建层级目录仓库
func NewTreeRepository(db *gorm.DB) *TreeRepository {
	return &TreeRepository{db: db}
}

// ========== 区域 ==========

// CreateArea 创建区域
func (r *TreeRepository) CreateArea(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

// GetArea 根据区域 ID 获取区域
func (r *TreeRepository) GetArea(ctx context.Context, areaID string) (*model.Area, error) {
	var area model.Area
	err := r.db.WithContext(ctx).Where("\"areaId\" = ?", areaID).First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// GetAreaByCode 根据区域代码获取区域
func (r *TreeRepository) GetAreaByCode(ctx context.Context, code string) (*model.Area, error) {
	var area model.Area
	err := r.db.WithContext(ctx).Where("area = ?", code).First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// ListAreasByProject 获取项目下的所有区域
func (r *TreeRepository) ListAreasByProject(ctx context.Context, projectID string) ([]*model.Area, error) {
	var areas []*model.Area
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("area ASC").
		Find(&areas).Error
	return areas, err
}

// UpdateArea 更新区域
func (r *TreeRepository) UpdateArea(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// DeleteArea 删除区域
func (r *TreeRepository) DeleteArea(ctx context.Context, areaID string) error {
	return r.db.WithContext(ctx).Where("\"areaId\" = ?", areaID).Delete(&model.Area{}).Error
}

// ========== 专业 ==========

// CreateDiscipline 创建专业
func (r *TreeRepository) CreateDiscipline(ctx context.Context, disc *model.Discipline) error {
	return r.db.WithContext(ctx).Create(disc).Error
}

// GetDiscipline 根据专业 ID 获取专业
func (r *TreeRepository) GetDiscipline(ctx context.Context, discID string) (*model.Discipline, error) {
	var disc model.Discipline
	err := r.db.WithContext(ctx).Where("\"discId\" = ?", discID).First(&disc).Error
	if err != nil {
		return nil, err
	}
	return &disc, nil
}

// GetDisciplineByCode 根据专业代码获取专业
func (r *TreeRepository) GetDisciplineByCode(ctx context.Context, code string) (*model.Discipline, error) {
	var disc model.Discipline
	err := r.db.WithContext(ctx).Where("disc = ?", code).First(&disc).Error
	if err != nil {
		return nil, err
	}
	return &disc, nil
}

// ListDisciplinesByProject 获取项目下的所有专业
func (r *TreeRepository) ListDisciplinesByProject(ctx context.Context, projectID string) ([]*model.Discipline, error) {
	var discs []*model.Discipline
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("disc ASC").
		Find(&discs).Error
	return discs, err
}

// UpdateDiscipline 更新专业
func (r *TreeRepository) UpdateDiscipline(ctx context.Context, disc *model.Discipline) error {
	return r.db.WithContext(ctx).Save(disc).Error
}

// DeleteDiscipline 删除专业
func (r *TreeRepository) DeleteDiscipline(ctx context.Context, discID string) error {
	return r.db.WithContext(ctx).Where("\"discId\" = ?", discID).Delete(&model.Discipline{}).Error
}

// ========== 系统 ==========

// CreateSystem 创建系统
func (r *TreeRepository) CreateSystem(ctx context.Context, sys *model.System) error {
	return r.db.WithContext(ctx).Create(sys).Error
}

// GetSystem 根据系统 ID 获取系统
func (r *TreeRepository) GetSystem(ctx context.Context, sysID string) (*model.System, error) {
	var sys model.System
	err := r.db.WithContext(ctx).Where("\"sysId\" = ?", sysID).First(&sys).Error
	if err != nil {
		return nil, err
	}
	return &sys, nil
}

// GetSystemByCode 根据系统代码获取系统
func (r *TreeRepository) GetSystemByCode(ctx context.Context, code string) (*model.System, error) {
	var sys model.System
	err := r.db.WithContext(ctx).Where("sys = ?", code).First(&sys).Error
	if err != nil {
		return nil, err
	}
	return &sys, nil
}

// ListSystemsByProject 获取项目下的所有系统
func (r *TreeRepository) ListSystemsByProject(ctx context.Context, projectID string) ([]*model.System, error) {
	var syss []*model.System
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sys ASC").
		Find(&syss).Error
	return syss, err
}

// UpdateSystem 更新系统
func (r *TreeRepository) UpdateSystem(ctx context.Context, sys *model.System) error {
	return r.db.WithContext(ctx).Save(sys).Error
}

// DeleteSystem 删除系统
func (r *TreeRepository) DeleteSystem(ctx context.Context, sysID string) error {
	return r.db.WithContext(ctx).Where("\"sysId\" = ?", sysID).Delete(&model.System{}).Error
}

// ========== 树路径 ==========

// CreateNode 创建树路径行
func (r *TreeRepository) CreateNode(ctx context.Context, node *model.TreeNode) error {
	return r.db.WithContext(ctx).Create(node).Error
}

// ListNodesByProject 获取项目下的所有树路径行
func (r *TreeRepository) ListNodesByProject(ctx context.Context, projectID string) ([]*model.TreeNode, error) {
	var nodes []*model.TreeNode
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&nodes).Error
	return nodes, err
}

// NodeExists 判断项目下是否已存在完全相同的路径行
func (r *TreeRepository) NodeExists(ctx context.Context, node *model.TreeNode) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.TreeNode{}).
		Where("project_id = ?", node.ProjectID)
	query = whereNullable(query, "area", node.Area)
	query = whereNullable(query, "disc", node.Disc)
	query = whereNullable(query, "sys", node.Sys)
	query = whereNullable(query, "tag", node.Tag)
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateNodeTag 更新树路径行中某标签的显示号
func (r *TreeRepository) UpdateNodeTag(ctx context.Context, projectID, oldTag, newTag string) error {
	return r.db.WithContext(ctx).Model(&model.TreeNode{}).
		Where("project_id = ? AND tag = ?", projectID, oldTag).
		Update("tag", newTag).Error
}

// RenameNodeLevel 更新树路径行中某层级代码（area / disc / sys）
func (r *TreeRepository) RenameNodeLevel(ctx context.Context, projectID, level, oldCode, newCode string) error {
	switch level {
	case "area", "disc", "sys":
	default:
		return fmt.Errorf("unknown tree level %q", level)
	}
	return r.db.WithContext(ctx).Model(&model.TreeNode{}).
		Where("project_id = ? AND "+level+" = ?", projectID, oldCode).
		Update(level, newCode).Error
}

// DeleteNodesByTag 删除树路径中引用某标签的行
func (r *TreeRepository) DeleteNodesByTag(ctx context.Context, projectID, tag string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND tag = ?", projectID, tag).
		Delete(&model.TreeNode{}).Error
}

// DeleteNodes 删除项目下匹配给定路径前缀的行
func (r *TreeRepository) DeleteNodes(ctx context.Context, projectID string, area, disc, sys *string) error {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if area != nil {
		query = query.Where("area = ?", *area)
	}
	if disc != nil {
		query = query.Where("disc = ?", *disc)
	}
	if sys != nil {
		query = query.Where("sys = ?", *sys)
	}
	return query.Delete(&model.TreeNode{}).Error
}

func whereNullable(query *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return query.Where(column + " IS NULL")
	}
	return query.Where(column+" = ?", *value)
}
