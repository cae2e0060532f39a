package seed

import (
	"testing"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeed_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	Seed(db)
	Seed(db)

	var users, quantTypeCount, standardTypes int64
	db.Model(&models.UserModel{}).Count(&users)
	db.Model(&models.QuantTypeModel{}).Count(&quantTypeCount)
	db.Model(&models.StandardTypeModel{}).Count(&standardTypes)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(len(quantTypes)), quantTypeCount)
	assert.Equal(t, int64(3), standardTypes)

	var picogreen models.QuantTypeModel
	require.NoError(t, db.Preload("StandardType").Where("name = ?", "Picogreen").First(&picogreen).Error)
	require.NotNil(t, picogreen.StandardType)
	assert.Equal(t, "Picogreen standard", picogreen.StandardType.Name)
}
