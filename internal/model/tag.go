package model

import "strings"

// TagType 标签类型，决定明细表（LineList / EquipmentList / ValveList）
type TagType string

const (
	TagTypeLine      TagType = "line"
	TagTypeEquipment TagType = "equipment"
	TagTypeValve     TagType = "valve"
	TagTypeOther     TagType = "other"
)

// ParseTagType 解析标签类型，大小写不敏感；未知类型归为 other
func ParseTagType(s string) TagType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return TagTypeLine
	case "equipment":
		return TagTypeEquipment
	case "valve":
		return TagTypeValve
	default:
		return TagTypeOther
	}
}

// HasDetailTable 是否存在类型明细表
func (t TagType) HasDetailTable() bool {
	switch t {
	case TagTypeLine, TagTypeEquipment, TagTypeValve:
		return true
	default:
		return false
	}
}

// Tag 工程标签（管线 / 设备 / 阀门等）
type Tag struct {
	TagID     string  `gorm:"column:tagId;type:varchar(255);primaryKey" json:"tagId"`
	Number    string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"number"`
	ProjectID *string `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	Name      string  `gorm:"type:text;not null" json:"name"`
	ParentTag *string `gorm:"column:parenttag;type:text" json:"parenttag"`
	Type      string  `gorm:"type:text;not null" json:"type"`
	Filename  *string `gorm:"type:text" json:"filename"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// TagInfo 标签通用信息，与 Tag 一对一，50 个自由字段
type TagInfo struct {
	TagID     string  `gorm:"column:tagId;type:varchar(255);primaryKey" json:"tagId"`
	Tag       *string `gorm:"type:text" json:"tag"`
	Type      *string `gorm:"type:text" json:"type"`
	ProjectID *string `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`

	TagInfo1  *string `gorm:"column:taginfo1;type:text" json:"taginfo1"`
	TagInfo2  *string `gorm:"column:taginfo2;type:text" json:"taginfo2"`
	TagInfo3  *string `gorm:"column:taginfo3;type:text" json:"taginfo3"`
	TagInfo4  *string `gorm:"column:taginfo4;type:text" json:"taginfo4"`
	TagInfo5  *string `gorm:"column:taginfo5;type:text" json:"taginfo5"`
	TagInfo6  *string `gorm:"column:taginfo6;type:text" json:"taginfo6"`
	TagInfo7  *string `gorm:"column:taginfo7;type:text" json:"taginfo7"`
	TagInfo8  *string `gorm:"column:taginfo8;type:text" json:"taginfo8"`
	TagInfo9  *string `gorm:"column:taginfo9;type:text" json:"taginfo9"`
	TagInfo10 *string `gorm:"column:taginfo10;type:text" json:"taginfo10"`
	TagInfo11 *string `gorm:"column:taginfo11;type:text" json:"taginfo11"`
	TagInfo12 *string `gorm:"column:taginfo12;type:text" json:"taginfo12"`
	TagInfo13 *string `gorm:"column:taginfo13;type:text" json:"taginfo13"`
	TagInfo14 *string `gorm:"column:taginfo14;type:text" json:"taginfo14"`
	TagInfo15 *string `gorm:"column:taginfo15;type:text" json:"taginfo15"`
	TagInfo16 *string `gorm:"column:taginfo16;type:text" json:"taginfo16"`
	TagInfo17 *string `gorm:"column:taginfo17;type:text" json:"taginfo17"`
	TagInfo18 *string `gorm:"column:taginfo18;type:text" json:"taginfo18"`
	TagInfo19 *string `gorm:"column:taginfo19;type:text" json:"taginfo19"`
	TagInfo20 *string `gorm:"column:taginfo20;type:text" json:"taginfo20"`
	TagInfo21 *string `gorm:"column:taginfo21;type:text" json:"taginfo21"`
	TagInfo22 *string `gorm:"column:taginfo22;type:text" json:"taginfo22"`
	TagInfo23 *string `gorm:"column:taginfo23;type:text" json:"taginfo23"`
	TagInfo24 *string `gorm:"column:taginfo24;type:text" json:"taginfo24"`
	TagInfo25 *string `gorm:"column:taginfo25;type:text" json:"taginfo25"`
	TagInfo26 *string `gorm:"column:taginfo26;type:text" json:"taginfo26"`
	TagInfo27 *string `gorm:"column:taginfo27;type:text" json:"taginfo27"`
	TagInfo28 *string `gorm:"column:taginfo28;type:text" json:"taginfo28"`
	TagInfo29 *string `gorm:"column:taginfo29;type:text" json:"taginfo29"`
	TagInfo30 *string `gorm:"column:taginfo30;type:text" json:"taginfo30"`
	TagInfo31 *string `gorm:"column:taginfo31;type:text" json:"taginfo31"`
	TagInfo32 *string `gorm:"column:taginfo32;type:text" json:"taginfo32"`
	TagInfo33 *string `gorm:"column:taginfo33;type:text" json:"taginfo33"`
	TagInfo34 *string `gorm:"column:taginfo34;type:text" json:"taginfo34"`
	TagInfo35 *string `gorm:"column:taginfo35;type:text" json:"taginfo35"`
	TagInfo36 *string `gorm:"column:taginfo36;type:text" json:"taginfo36"`
	TagInfo37 *string `gorm:"column:taginfo37;type:text" json:"taginfo37"`
	TagInfo38 *string `gorm:"column:taginfo38;type:text" json:"taginfo38"`
	TagInfo39 *string `gorm:"column:taginfo39;type:text" json:"taginfo39"`
	TagInfo40 *string `gorm:"column:taginfo40;type:text" json:"taginfo40"`
	TagInfo41 *string `gorm:"column:taginfo41;type:text" json:"taginfo41"`
	TagInfo42 *string `gorm:"column:taginfo42;type:text" json:"taginfo42"`
	TagInfo43 *string `gorm:"column:taginfo43;type:text" json:"taginfo43"`
	TagInfo44 *string `gorm:"column:taginfo44;type:text" json:"taginfo44"`
	TagInfo45 *string `gorm:"column:taginfo45;type:text" json:"taginfo45"`
	TagInfo46 *string `gorm:"column:taginfo46;type:text" json:"taginfo46"`
	TagInfo47 *string `gorm:"column:taginfo47;type:text" json:"taginfo47"`
	TagInfo48 *string `gorm:"column:taginfo48;type:text" json:"taginfo48"`
	TagInfo49 *string `gorm:"column:taginfo49;type:text" json:"taginfo49"`
	TagInfo50 *string `gorm:"column:taginfo50;type:text" json:"taginfo50"`
}

// TableName 指定表名
func (TagInfo) TableName() string {
	return "tag_info"
}

// TagInfoFieldCount TagInfo 自由字段数量
const TagInfoFieldCount = 50

// UserTagInfoFieldUnit 用户自定义的 TagInfo 字段名 / 单位 / 显示开关
type UserTagInfoFieldUnit struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   *string `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	Field       string  `gorm:"type:text;not null" json:"field"`
	Unit        string  `gorm:"type:text;not null" json:"unit"`
	StatusCheck string  `gorm:"column:statuscheck;type:text;not null" json:"statuscheck"`
}

// TableName 指定表名
func (UserTagInfoFieldUnit) TableName() string {
	return "user_tag_info_field_units"
}
