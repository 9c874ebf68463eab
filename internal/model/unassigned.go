package model

import "time"

// UnassignedModel 已上传转换、尚未绑定标签的 3D 模型文件
type UnassignedModel struct {
	Number    string    `gorm:"type:varchar(36);primaryKey" json:"number"`
	ProjectID string    `gorm:"column:projectId;type:varchar(100);not null;index" json:"projectId"`
	FileName  string    `gorm:"column:fileName;type:varchar(255);not null" json:"fileName"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (UnassignedModel) TableName() string {
	return "unassigned_models"
}
