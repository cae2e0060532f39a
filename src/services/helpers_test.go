package services

import (
	"context"
	"testing"
	"time"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// every connection to :memory: is a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

type lab struct {
	standardType models.StandardTypeModel
	quantType    models.QuantTypeModel
	standard     models.StandardModel
	assay        models.AssayModel
	input        models.InputModel
	user         models.UserModel
}

// seedLab stores one of everything a valid quant needs
func seedLab(t *testing.T, db *gorm.DB) *lab {
	t.Helper()

	l := &lab{}
	l.standardType = models.StandardTypeModel{Name: "Picogreen standard"}
	require.NoError(t, db.Create(&l.standardType).Error)

	l.quantType = models.QuantTypeModel{Name: "Picogreen", StandardTypeId: &l.standardType.Id}
	require.NoError(t, db.Create(&l.quantType).Error)

	expires := time.Now().AddDate(1, 0, 0)
	l.standard = models.StandardModel{Barcode: "STD1", ExpiresAt: &expires, StandardTypeId: &l.standardType.Id}
	require.NoError(t, db.Create(&l.standard).Error)

	l.assay = models.AssayModel{Barcode: "AS1"}
	require.NoError(t, db.Create(&l.assay).Error)

	l.input = models.InputModel{Barcode: "IN1"}
	require.NoError(t, db.Create(&l.input).Error)

	l.user = models.UserModel{Login: "bob", SwipecardCode: "SC1", UUID: "U-bob"}
	require.NoError(t, db.Create(&l.user).Error)
	return l
}

type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) Find(ctx context.Context, endpoint sequencescape.Endpoint, query string) (sequencescape.Result, error) {
	args := m.Called(ctx, endpoint, query)
	result, _ := args.Get(0).(sequencescape.Result)
	return result, args.Error(1)
}
