package model

import "time"

// Comment 文档批注，坐标定位在 2D/3D 视图中
type Comment struct {
	FileID      *string    `gorm:"column:fileid;type:varchar(100);index" json:"fileid"`
	DocNumber   *string    `gorm:"column:docNumber;type:varchar(100);index" json:"docNumber"`
	Number      string     `gorm:"type:varchar(36);primaryKey" json:"number"`
	ProjectID   string     `gorm:"column:projectId;type:varchar(100);not null;index" json:"projectId"`
	SourceType  *string    `gorm:"column:sourcetype;type:varchar(100)" json:"sourcetype"`
	Comment     *string    `gorm:"type:text" json:"comment"`
	Status      *string    `gorm:"type:varchar(50)" json:"status"`
	Priority    *string    `gorm:"type:varchar(50)" json:"priority"`
	CreatedBy   *string    `gorm:"column:createdby;type:varchar(100)" json:"createdby"`
	CreatedDate time.Time  `gorm:"column:createddate;autoCreateTime" json:"createddate"`
	CoordX      *float64   `gorm:"column:coOrdinateX" json:"coOrdinateX"`
	CoordY      *float64   `gorm:"column:coOrdinateY" json:"coOrdinateY"`
	CoordZ      *float64   `gorm:"column:coOrdinateZ" json:"coOrdinateZ"`
	ClosedBy    *string    `gorm:"column:closedBy;type:varchar(100)" json:"closedBy"`
	ClosedDate  *time.Time `gorm:"column:closedDate" json:"closedDate"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comment_table"
}

// CommentStatus 项目的批注状态定义（名称 + 颜色），建项目时播种 open/closed
type CommentStatus struct {
	Number     string `gorm:"type:varchar(36);primaryKey" json:"number"`
	ProjectID  string `gorm:"column:projectId;type:varchar(100);not null;index" json:"projectId"`
	StatusName string `gorm:"column:statusname;type:varchar(100);not null;index" json:"statusname"`
	Color      string `gorm:"type:varchar(50);not null" json:"color"`
}

// TableName 指定表名
func (CommentStatus) TableName() string {
	return "comment_status"
}
