package model

import "time"

// LineList 管线清单，主键为标签显示号
type LineList struct {
	ProjectID       *string  `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	TagID           *string  `gorm:"column:tagId;type:varchar(255);index" json:"tagId"`
	Tag             string   `gorm:"type:varchar(255);primaryKey" json:"tag"`
	FluidCode       *string  `gorm:"column:fluidCode;type:text" json:"fluidCode"`
	LineID          *string  `gorm:"column:lineId;type:text" json:"lineId"`
	Medium          *string  `gorm:"type:text" json:"medium"`
	LineSizeIn      *float64 `gorm:"column:lineSizeIn" json:"lineSizeIn"`
	LineSizeNb      *float64 `gorm:"column:lineSizeNb" json:"lineSizeNb"`
	PipingSpec      *string  `gorm:"column:pipingSpec;type:text" json:"pipingSpec"`
	InsType         *string  `gorm:"column:insType;type:text" json:"insType"`
	InsThickness    *string  `gorm:"column:insThickness;type:text" json:"insThickness"`
	HeatTrace       *string  `gorm:"column:heatTrace;type:text" json:"heatTrace"`
	LineFrom        *string  `gorm:"column:lineFrom;type:text" json:"lineFrom"`
	LineTo          *string  `gorm:"column:lineTo;type:text" json:"lineTo"`
	Pnid            *string  `gorm:"type:text" json:"pnid"`
	PipingIso       *string  `gorm:"column:pipingIso;type:text" json:"pipingIso"`
	PipingStressIso *string  `gorm:"column:pipingStressIso;type:text" json:"pipingStressIso"`
	MaxOpPress      *float64 `gorm:"column:maxOpPress" json:"maxOpPress"`
	MaxOpTemp       *float64 `gorm:"column:maxOpTemp" json:"maxOpTemp"`
	DsgnPress       *float64 `gorm:"column:dsgnPress" json:"dsgnPress"`
	MinDsgnTemp     *float64 `gorm:"column:minDsgnTemp" json:"minDsgnTemp"`
	MaxDsgnTemp     *float64 `gorm:"column:maxDsgnTemp" json:"maxDsgnTemp"`
	TestPress       *float64 `gorm:"column:testPress" json:"testPress"`
	TestMedium      *string  `gorm:"column:testMedium;type:text" json:"testMedium"`
	TestMediumPhase *string  `gorm:"column:testMediumPhase;type:text" json:"testMediumPhase"`
	MassFlow        *float64 `gorm:"column:massFlow" json:"massFlow"`
	VolFlow         *float64 `gorm:"column:volFlow" json:"volFlow"`
	Density         *float64 `gorm:"type:numeric" json:"density"`
	Velocity        *float64 `gorm:"type:numeric" json:"velocity"`
	PaintSystem     *string  `gorm:"column:paintSystem;type:text" json:"paintSystem"`
	NdtGroup        *string  `gorm:"column:ndtGroup;type:text" json:"ndtGroup"`
	ChemCleaning    *string  `gorm:"column:chemCleaning;type:text" json:"chemCleaning"`
	Pwht            *string  `gorm:"type:text" json:"pwht"`
}

// TableName 指定表名
func (LineList) TableName() string {
	return "line_list"
}

// EquipmentList 设备清单，主键为标签显示号
type EquipmentList struct {
	ProjectID    *string  `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	TagID        *string  `gorm:"column:tagId;type:varchar(255);index" json:"tagId"`
	Tag          string   `gorm:"type:varchar(255);primaryKey" json:"tag"`
	Descr        *string  `gorm:"type:text" json:"descr"`
	Qty          *string  `gorm:"type:varchar(50)" json:"qty"`
	Capacity     *float64 `gorm:"type:numeric" json:"capacity"`
	Type         *string  `gorm:"type:varchar(100)" json:"type"`
	Materials    *string  `gorm:"type:text" json:"materials"`
	CapacityDuty *string  `gorm:"column:capacityDuty;type:varchar(100)" json:"capacityDuty"`
	Dims         *string  `gorm:"type:varchar(100)" json:"dims"`
	DsgnPress    *float64 `gorm:"column:dsgnPress" json:"dsgnPress"`
	OpPress      *float64 `gorm:"column:opPress" json:"opPress"`
	DsgnTemp     *float64 `gorm:"column:dsgnTemp" json:"dsgnTemp"`
	OpTemp       *float64 `gorm:"column:opTemp" json:"opTemp"`
	DryWeight    *float64 `gorm:"column:dryWeight" json:"dryWeight"`
	OpWeight     *float64 `gorm:"column:opWeight" json:"opWeight"`
	Pnid         *string  `gorm:"type:varchar(100)" json:"pnid"`
	Supplier     *string  `gorm:"type:varchar(255)" json:"supplier"`
	Remarks      *string  `gorm:"type:text" json:"remarks"`
	InitStatus   *string  `gorm:"column:initStatus;type:varchar(50)" json:"initStatus"`
	Revision     *string  `gorm:"type:varchar(50)" json:"revision"`
	RevisionDate *string  `gorm:"column:revisionDate;type:varchar(50)" json:"revisionDate"`
}

// TableName 指定表名
func (EquipmentList) TableName() string {
	return "equipment_list"
}

// ValveList 阀门清单，主键为标签显示号
type ValveList struct {
	Area              *string   `gorm:"type:varchar(100)" json:"area"`
	Discipline        *string   `gorm:"type:varchar(100)" json:"discipline"`
	Systm             *string   `gorm:"type:varchar(100)" json:"Systm"`
	FunctionCode      *string   `gorm:"column:function_code;type:varchar(100)" json:"function_code"`
	SequenceNumber    *string   `gorm:"column:sequence_number;type:varchar(100)" json:"sequence_number"`
	ProjectID         *string   `gorm:"column:projectId;type:varchar(36);index" json:"projectId"`
	TagID             *string   `gorm:"column:tagId;type:varchar(255);index" json:"tagId"`
	Tag               string    `gorm:"type:varchar(255);primaryKey" json:"tag"`
	LineID            *string   `gorm:"column:line_id;type:varchar(100)" json:"line_id"`
	LineNumber        *string   `gorm:"column:line_number;type:varchar(100)" json:"line_number"`
	Pid               *string   `gorm:"type:varchar(100)" json:"pid"`
	Isometric         *string   `gorm:"type:varchar(100)" json:"isometric"`
	DataSheet         *string   `gorm:"column:data_sheet;type:varchar(100)" json:"data_sheet"`
	Drawings          *string   `gorm:"type:varchar(100)" json:"drawings"`
	DesignPressure    *string   `gorm:"column:design_pressure;type:varchar(100)" json:"design_pressure"`
	DesignTemperature *string   `gorm:"column:design_temperature;type:varchar(100)" json:"design_temperature"`
	Size              *string   `gorm:"type:varchar(100)" json:"size"`
	PaintSystem       *string   `gorm:"column:paint_system;type:varchar(100)" json:"paint_system"`
	PurchaseOrder     *string   `gorm:"column:purchase_order;type:varchar(100)" json:"purchase_order"`
	Supplier          *string   `gorm:"type:varchar(100)" json:"supplier"`
	InformationStatus *string   `gorm:"column:information_status;type:varchar(100)" json:"information_status"`
	EquipmentStatus   *string   `gorm:"column:equipment_status;type:varchar(100)" json:"equipment_status"`
	Comment           *string   `gorm:"type:text" json:"comment"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (ValveList) TableName() string {
	return "valve_list"
}
