package model

import "time"

// Area 区域目录
type Area struct {
	AreaID    string    `gorm:"column:areaId;type:varchar(100);primaryKey" json:"areaId"`
	Area      string    `gorm:"type:varchar(100);uniqueIndex" json:"area"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	ProjectID string    `gorm:"column:project_id;type:varchar(100);index" json:"project_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Area) TableName() string {
	return "area_table"
}

// Discipline 专业目录
type Discipline struct {
	DiscID    string    `gorm:"column:discId;type:varchar(100);primaryKey" json:"discId"`
	Disc      string    `gorm:"type:varchar(100);uniqueIndex" json:"disc"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	ProjectID string    `gorm:"column:project_id;type:varchar(100);index" json:"project_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Discipline) TableName() string {
	return "disc_table"
}

// System 系统目录
type System struct {
	SysID     string    `gorm:"column:sysId;type:varchar(100);primaryKey" json:"sysId"`
	Sys       string    `gorm:"type:varchar(100);uniqueIndex" json:"sys"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	ProjectID string    `gorm:"column:project_id;type:varchar(100);index" json:"project_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (System) TableName() string {
	return "sys_table"
}

// TreeNode 区域→专业→系统→标签的反规范化路径行
// 非空前缀 {area, disc, sys, tag} 表示对应深度的一个节点
type TreeNode struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Area      *string   `gorm:"type:varchar(100);index" json:"area"`
	Disc      *string   `gorm:"type:varchar(100);index" json:"disc"`
	Sys       *string   `gorm:"type:varchar(100);index" json:"sys"`
	Tag       *string   `gorm:"type:varchar(255);index" json:"tag"`
	Name      *string   `gorm:"type:varchar(100)" json:"name"`
	ProjectID string    `gorm:"column:project_id;type:varchar(100);index" json:"project_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (TreeNode) TableName() string {
	return "tree"
}
