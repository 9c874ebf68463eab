package model

import "time"

// SpidElement 图纸元素的编辑状态，按 document + uniqueId 存 JSON
type SpidElement struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DocumentID string    `gorm:"column:document_id;type:varchar(36);not null;index:idx_spid_doc_unique,unique" json:"document_id"`
	UniqueID   string    `gorm:"column:unique_id;type:varchar(255);not null;index:idx_spid_doc_unique,unique" json:"unique_id"`
	ItemJSON   string    `gorm:"column:item_json;type:text;not null" json:"item_json"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (SpidElement) TableName() string {
	return "spid_elements"
}

// SpidTag 标签与图纸元素的绑定
type SpidTag struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TagID      string    `gorm:"column:tag_id;type:varchar(50);not null;index" json:"tag_id"`
	UniqueID   string    `gorm:"column:unique_id;type:varchar(100);not null" json:"unique_id"`
	FileID     string    `gorm:"column:file_id;type:varchar(50);not null;index" json:"file_id"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
}

// TableName 指定表名
func (SpidTag) TableName() string {
	return "spid_tags"
}

// Flag 图纸批注旗标，uniqueIds 为 JSON 序列化的元素 id 列表
type Flag struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FileID             string    `gorm:"column:fileId;type:varchar(50);not null;index" json:"fileId"`
	AssignedDocumentID string    `gorm:"column:assignedDocumentId;type:varchar(50);not null" json:"AssigneddocumentId"`
	UniqueIDs          *string   `gorm:"column:uniqueIds;type:text" json:"uniqueIds"`
	DocumentTitle      *string   `gorm:"column:documentTitle;type:varchar(100)" json:"documentTitle"`
	FlagText           string    `gorm:"column:flagText;type:varchar(50);not null" json:"flagText"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Flag) TableName() string {
	return "flags"
}
