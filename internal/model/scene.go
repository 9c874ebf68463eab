package model

// GroundSettings 3D 场景地面设置
type GroundSettings struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID string   `gorm:"column:projectId;type:varchar(36);not null;index" json:"projectId"`
	Level     *float64 `json:"level"`
	Color     *string  `gorm:"type:varchar(50)" json:"color"`
	Opacity   *float64 `json:"opacity"`
}

// TableName 指定表名
func (GroundSettings) TableName() string {
	return "ground_settings"
}

// WaterSettings 3D 场景水面设置
type WaterSettings struct {
	ID               uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID        string   `gorm:"column:projectId;type:varchar(36);not null;index" json:"projectId"`
	Level            *float64 `json:"level"`
	Opacity          *float64 `json:"opacity"`
	Color            *string  `gorm:"type:varchar(50)" json:"color"`
	ColorBlendFactor *float64 `gorm:"column:colorBlendFactor" json:"colorBlendFactor"`
	BumpHeight       *float64 `gorm:"column:bumpHeight" json:"bumpHeight"`
	WaveLength       *float64 `gorm:"column:waveLength" json:"waveLength"`
	WindForce        *float64 `gorm:"column:windForce" json:"windForce"`
}

// TableName 指定表名
func (WaterSettings) TableName() string {
	return "water_settings"
}

// View 保存的相机视角，主键 (name, projectId)
type View struct {
	Name      string   `gorm:"type:varchar(255);primaryKey" json:"name"`
	ProjectID string   `gorm:"column:projectId;type:varchar(36);primaryKey" json:"projectId"`
	PosX      *float64 `gorm:"column:posX" json:"posX"`
	PosY      *float64 `gorm:"column:posY" json:"posY"`
	PosZ      *float64 `gorm:"column:posZ" json:"posZ"`
	TargX     *float64 `gorm:"column:targX" json:"targX"`
	TargY     *float64 `gorm:"column:targY" json:"targY"`
	TargZ     *float64 `gorm:"column:targZ" json:"targZ"`
}

// TableName 指定表名
func (View) TableName() string {
	return "views"
}

// SceneSettings 项目级其余设置，整体存一个 JSON 文本
type SceneSettings struct {
	ProjectID string  `gorm:"column:projectId;type:varchar(36);primaryKey" json:"projectId"`
	Settings  *string `gorm:"type:text" json:"settings"`
}

// TableName 指定表名
func (SceneSettings) TableName() string {
	return "settings_table"
}
