package model

// Project 工程项目，所有其他实体的根
type Project struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   string  `gorm:"column:projectId;type:varchar(36);uniqueIndex;not null" json:"projectId"`
	Number      *string `gorm:"column:projectNumber;type:varchar(255)" json:"projectNumber"`
	Name        string  `gorm:"column:projectName;type:varchar(255);not null" json:"projectName"`
	Description *string `gorm:"column:projectDescription;type:text" json:"projectDescription"`
	Path        *string `gorm:"column:projectPath;type:text" json:"projectPath"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}
