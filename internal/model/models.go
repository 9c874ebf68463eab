package model

// 所有模型的统一导入点
// 用于 AutoMigrate
var AllModels = []interface{}{
	&Project{},
	&Document{},
	&SpidElement{},
	&Tag{},
	&TagInfo{},
	&UserTagInfoFieldUnit{},
	&LineList{},
	&EquipmentList{},
	&ValveList{},
	&SpidTag{},
	&Flag{},
	&Area{},
	&Discipline{},
	&System{},
	&TreeNode{},
	&UnassignedModel{},
	&Comment{},
	&CommentStatus{},
	&GroundSettings{},
	&WaterSettings{},
	&View{},
	&SceneSettings{},
}
