package models

// QuantTypeModel describes a kind of quantification and the standard type it must be run against
type QuantTypeModel struct {
	Id             int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string             `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	StandardTypeId *int               `json:"standardTypeId" gorm:"column:standard_type_id"`
	StandardType   *StandardTypeModel `json:"standardType,omitempty" gorm:"foreignKey:StandardTypeId;references:Id"`
}
