package model

import "time"

// Document 工程图纸文档（SVG 图纸、数据表等）
type Document struct {
	DocumentID string    `gorm:"column:documentId;type:varchar(36);primaryKey" json:"documentId"`
	Number     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"number"`
	Title      *string   `gorm:"type:text" json:"title"`
	Descr      *string   `gorm:"type:text" json:"descr"`
	Type       *string   `gorm:"type:varchar(50)" json:"type"`
	Filename   *string   `gorm:"type:varchar(255)" json:"filename"`
	ProjectID  *string   `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Document) TableName() string {
	return "documents"
}
