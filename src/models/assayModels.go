package models

// AssayModel is an assay plate. Each plate can be read by at most one quant.
type AssayModel struct {
	Id      int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Barcode string      `json:"barcode" gorm:"type:varchar(100);uniqueIndex;not null"`
	Quant   *QuantModel `json:"quant,omitempty" gorm:"foreignKey:AssayId;references:Id"`
}

// Used reports whether a quant has already been recorded against the assay.
// The Quant association must be preloaded.
func (a *AssayModel) Used() bool {
	return a.Quant != nil
}
