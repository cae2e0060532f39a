package models

import "time"

type QuantModel struct {
	Id          int             `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID        string          `json:"uuid" gorm:"column:uuid;type:varchar(36);not null"`
	QuantTypeId int             `json:"quantTypeId" gorm:"column:quant_type_id;not null"`
	QuantType   *QuantTypeModel `json:"quantType,omitempty" gorm:"foreignKey:QuantTypeId;references:Id"`
	AssayId     int             `json:"assayId" gorm:"column:assay_id;uniqueIndex;not null"`
	Assay       *AssayModel     `json:"assay,omitempty" gorm:"foreignKey:AssayId;references:Id"`
	StandardId  int             `json:"standardId" gorm:"column:standard_id;not null"`
	Standard    *StandardModel  `json:"standard,omitempty" gorm:"foreignKey:StandardId;references:Id"`
	InputId     int             `json:"inputId" gorm:"column:input_id;not null"`
	Input       *InputModel     `json:"input,omitempty" gorm:"foreignKey:InputId;references:Id"`
	UserId      int             `json:"userId" gorm:"column:user_id;not null"`
	User        *UserModel      `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	CreatedAt   time.Time       `json:"createdAt"`
}
