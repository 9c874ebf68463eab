package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
)

// TagRepository 标签仓库，同时管理 TagInfo、类型明细表和自定义字段单位
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create 创建标签
func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// Update 更新标签
func (r *TagRepository) Update(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// GetByTagID 根据标签 ID 获取标签
func (r *TagRepository) GetByTagID(ctx context.Context, tagID string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByNumber 根据标签号获取标签，标签号全局唯一
func (r *TagRepository) GetByNumber(ctx context.Context, number string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByProjectAndFilename 根据项目和模型文件名获取标签
func (r *TagRepository) GetByProjectAndFilename(ctx context.Context, projectID, filename string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ? AND filename = ?", projectID, filename).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListByProject 获取项目下的所有标签
func (r *TagRepository) ListByProject(ctx context.Context, projectID string) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).
		Where("\"projectId\" = ?", projectID).
		Order("number ASC").
		Find(&tags).Error
	return tags, err
}

// Delete 删除标签
func (r *TagRepository) Delete(ctx context.Context, tagID string) error {
	return r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).Delete(&model.Tag{}).Error
}

// ========== TagInfo ==========

// CreateInfo 创建标签通用信息
func (r *TagRepository) CreateInfo(ctx context.Context, info *model.TagInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

// SaveInfo 保存标签通用信息
func (r *TagRepository) SaveInfo(ctx context.Context, info *model.TagInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

// GetInfo 根据标签 ID 获取通用信息
func (r *TagRepository) GetInfo(ctx context.Context, tagID string) (*model.TagInfo, error) {
	var info model.TagInfo
	err := r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ListInfoByProject 获取项目下某类型的所有通用信息
func (r *TagRepository) ListInfoByProject(ctx context.Context, projectID, tagType string) ([]*model.TagInfo, error) {
	var infos []*model.TagInfo
	query := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID)
	if tagType != "" {
		query = query.Where("type = ?", tagType)
	}
	err := query.Find(&infos).Error
	return infos, err
}

// DeleteInfo 删除标签通用信息
func (r *TagRepository) DeleteInfo(ctx context.Context, tagID string) error {
	return r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).Delete(&model.TagInfo{}).Error
}

// ========== 类型明细表 ==========

// CreateDetail 按标签类型创建空明细行，类型无明细表时为空操作
func (r *TagRepository) CreateDetail(ctx context.Context, tag *model.Tag, typ model.TagType) error {
	tagID := tag.TagID
	switch typ {
	case model.TagTypeLine:
		row := &model.LineList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}
		return r.db.WithContext(ctx).Create(row).Error
	case model.TagTypeEquipment:
		row := &model.EquipmentList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}
		return r.db.WithContext(ctx).Create(row).Error
	case model.TagTypeValve:
		row := &model.ValveList{Tag: tag.Number, TagID: &tagID, ProjectID: tag.ProjectID}
		return r.db.WithContext(ctx).Create(row).Error
	default:
		return nil
	}
}

// DeleteDetail 按标签类型删除明细行，类型无明细表时为空操作
func (r *TagRepository) DeleteDetail(ctx context.Context, tagID string, typ model.TagType) error {
	switch typ {
	case model.TagTypeLine:
		return r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).Delete(&model.LineList{}).Error
	case model.TagTypeEquipment:
		return r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).Delete(&model.EquipmentList{}).Error
	case model.TagTypeValve:
		return r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).Delete(&model.ValveList{}).Error
	default:
		return nil
	}
}

// ClearDetail 按标签类型清空明细行的业务字段，保留主键关联
func (r *TagRepository) ClearDetail(ctx context.Context, tag *model.Tag, typ model.TagType) error {
	if !typ.HasDetailTable() {
		return fmt.Errorf("tag type %q has no detail table", typ)
	}
	if err := r.DeleteDetail(ctx, tag.TagID, typ); err != nil {
		return err
	}
	return r.CreateDetail(ctx, tag, typ)
}

// GetLine 根据标签 ID 获取管线明细
func (r *TagRepository) GetLine(ctx context.Context, tagID string) (*model.LineList, error) {
	var row model.LineList
	err := r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListLinesByProject 获取项目下所有管线明细
func (r *TagRepository) ListLinesByProject(ctx context.Context, projectID string) ([]*model.LineList, error) {
	var rows []*model.LineList
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Order("tag ASC").Find(&rows).Error
	return rows, err
}

// SaveLine 保存管线明细
func (r *TagRepository) SaveLine(ctx context.Context, row *model.LineList) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// GetEquipment 根据标签 ID 获取设备明细
func (r *TagRepository) GetEquipment(ctx context.Context, tagID string) (*model.EquipmentList, error) {
	var row model.EquipmentList
	err := r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListEquipmentByProject 获取项目下所有设备明细
func (r *TagRepository) ListEquipmentByProject(ctx context.Context, projectID string) ([]*model.EquipmentList, error) {
	var rows []*model.EquipmentList
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Order("tag ASC").Find(&rows).Error
	return rows, err
}

// SaveEquipment 保存设备明细
func (r *TagRepository) SaveEquipment(ctx context.Context, row *model.EquipmentList) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// GetValve 根据标签 ID 获取阀门明细
func (r *TagRepository) GetValve(ctx context.Context, tagID string) (*model.ValveList, error) {
	var row model.ValveList
	err := r.db.WithContext(ctx).Where("\"tagId\" = ?", tagID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListValvesByProject 获取项目下所有阀门明细
func (r *TagRepository) ListValvesByProject(ctx context.Context, projectID string) ([]*model.ValveList, error) {
	var rows []*model.ValveList
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Order("tag ASC").Find(&rows).Error
	return rows, err
}

// SaveValve 保存阀门明细
func (r *TagRepository) SaveValve(ctx context.Context, row *model.ValveList) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// ========== 自定义字段单位 ==========

// CreateFieldUnits 批量创建自定义字段单位
func (r *TagRepository) CreateFieldUnits(ctx context.Context, units []*model.UserTagInfoFieldUnit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(units).Error
}

// ListFieldUnits 获取项目下的自定义字段单位
func (r *TagRepository) ListFieldUnits(ctx context.Context, projectID string) ([]*model.UserTagInfoFieldUnit, error) {
	var units []*model.UserTagInfoFieldUnit
	err := r.db.WithContext(ctx).Where("\"projectId\" = ?", projectID).Order("id ASC").Find(&units).Error
	return units, err
}

// UpdateFieldUnit 更新自定义字段单位
func (r *TagRepository) UpdateFieldUnit(ctx context.Context, unit *model.UserTagInfoFieldUnit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}
