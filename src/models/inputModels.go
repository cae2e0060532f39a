package models

// InputModel is the sample plate being quantified, usually registered from Sequencescape
type InputModel struct {
	Id           int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Barcode      string  `json:"barcode" gorm:"type:varchar(100);uniqueIndex;not null"`
	UUID         *string `json:"uuid" gorm:"column:uuid;type:varchar(36)"`
	Name         *string `json:"name" gorm:"type:varchar(255)"`
	ExternalType *string `json:"externalType" gorm:"column:external_type;type:varchar(255)"`
}
