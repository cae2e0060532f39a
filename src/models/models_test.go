package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

func TestStandardModel_Expired(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  bool
	}{
		{"no expiry date", nil, false},
		{"expired yesterday", day(2024, 5, 9), true},
		{"expires today", day(2024, 5, 10), false},
		{"expires tomorrow", day(2024, 5, 11), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standard := &StandardModel{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, standard.Expired(now))
		})
	}
}

func TestStandardModel_SameStandardType(t *testing.T) {
	one, two := 1, 2
	assert.True(t, (&StandardModel{StandardTypeId: &one}).SameStandardType(&one))
	assert.False(t, (&StandardModel{StandardTypeId: &one}).SameStandardType(&two))
	assert.False(t, (&StandardModel{}).SameStandardType(&two))
	assert.True(t, (&StandardModel{}).SameStandardType(nil))
}

func TestAssayModel_UsedAfterQuant(t *testing.T) {
	db := setupTestDB(t)

	standardType := StandardTypeModel{Name: "Picogreen"}
	require.NoError(t, db.Create(&standardType).Error)
	quantType := QuantTypeModel{Name: "Picogreen 384", StandardTypeId: &standardType.Id}
	require.NoError(t, db.Create(&quantType).Error)
	standard := StandardModel{Barcode: "STD1", StandardTypeId: &standardType.Id}
	require.NoError(t, db.Create(&standard).Error)
	input := InputModel{Barcode: "IN1"}
	require.NoError(t, db.Create(&input).Error)
	user := UserModel{Login: "ab1", SwipecardCode: "SC1"}
	require.NoError(t, db.Create(&user).Error)
	assay := AssayModel{Barcode: "AS1"}
	require.NoError(t, db.Create(&assay).Error)

	var loaded AssayModel
	require.NoError(t, db.Preload("Quant").First(&loaded, assay.Id).Error)
	assert.False(t, loaded.Used())

	quant := QuantModel{
		UUID:        "2d6e4f2a-0000-4000-8000-000000000001",
		QuantTypeId: quantType.Id,
		AssayId:     assay.Id,
		StandardId:  standard.Id,
		InputId:     input.Id,
		UserId:      user.Id,
	}
	require.NoError(t, db.Create(&quant).Error)

	require.NoError(t, db.Preload("Quant").First(&loaded, assay.Id).Error)
	assert.True(t, loaded.Used())
}
