package models

import "time"

type StandardModel struct {
	Id             int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Barcode        string             `json:"barcode" gorm:"type:varchar(100);uniqueIndex;not null"`
	LotNumber      *string            `json:"lotNumber" gorm:"column:lot_number;type:varchar(100)"`
	ExpiresAt      *time.Time         `json:"expiresAt" gorm:"column:expires_at;type:date"`
	StandardTypeId *int               `json:"standardTypeId" gorm:"column:standard_type_id"`
	StandardType   *StandardTypeModel `json:"standardType,omitempty" gorm:"foreignKey:StandardTypeId;references:Id"`
}

// Expired reports whether the standard's expiry date lies before the day of now.
// A standard without an expiry date never expires.
func (s *StandardModel) Expired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ey, em, ed := s.ExpiresAt.Date()
	expiry := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())
	return expiry.Before(today)
}

// SameStandardType compares the standard type ids, treating two unset types as equal
func (s *StandardModel) SameStandardType(id *int) bool {
	if s.StandardTypeId == nil || id == nil {
		return s.StandardTypeId == nil && id == nil
	}
	return *s.StandardTypeId == *id
}
