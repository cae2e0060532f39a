package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLocator_LocalLookups(t *testing.T) {
	db := setupTestDB(t)
	l := seedLab(t, db)
	locator := NewLocatorService(db, nil)
	ctx := context.Background()

	user, err := locator.FindUserBySwipecard(ctx, "SC1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Login)

	standard, err := locator.FindStandardByBarcode(ctx, "STD1")
	require.NoError(t, err)
	require.NotNil(t, standard.StandardType)
	assert.Equal(t, "Picogreen standard", standard.StandardType.Name)

	input, err := locator.FindInputByBarcode(ctx, "IN1")
	require.NoError(t, err)
	assert.Equal(t, l.input.Id, input.Id)

	byName, err := locator.FindQuantType(ctx, "Picogreen")
	require.NoError(t, err)
	byID, err := locator.FindQuantType(ctx, strconv.Itoa(l.quantType.Id))
	require.NoError(t, err)
	assert.Equal(t, byName.Id, byID.Id)

	for name, lookup := range map[string]func() (any, error){
		"user":       func() (any, error) { return locator.FindUserBySwipecard(ctx, "nope") },
		"assay":      func() (any, error) { return locator.FindAssayByBarcode(ctx, "nope") },
		"standard":   func() (any, error) { return locator.FindStandardByBarcode(ctx, "nope") },
		"input":      func() (any, error) { return locator.FindInputByBarcode(ctx, "nope") },
		"quant type": func() (any, error) { return locator.FindQuantType(ctx, "999") },
	} {
		value, err := lookup()
		assert.NoError(t, err, name)
		assert.Nil(t, value, name)
	}
}

func TestLocator_NumericQuantTypeName(t *testing.T) {
	db := setupTestDB(t)
	l := seedLab(t, db)
	numeric := models.QuantTypeModel{Name: "260"}
	require.NoError(t, db.Create(&numeric).Error)
	locator := NewLocatorService(db, nil)
	ctx := context.Background()

	byName, err := locator.FindQuantType(ctx, "260")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, numeric.Id, byName.Id)

	byID, err := locator.FindQuantType(ctx, strconv.Itoa(l.quantType.Id))
	require.NoError(t, err)
	assert.Equal(t, "Picogreen", byID.Name)
}

func TestLocator_AssayPreloadsQuant(t *testing.T) {
	db := setupTestDB(t)
	l := seedLab(t, db)
	locator := NewLocatorService(db, nil)

	assay, err := locator.FindAssayByBarcode(context.Background(), "AS1")
	require.NoError(t, err)
	assert.False(t, assay.Used())

	require.NoError(t, db.Create(&models.QuantModel{
		UUID: "Q1", QuantTypeId: l.quantType.Id, AssayId: l.assay.Id,
		StandardId: l.standard.Id, InputId: l.input.Id, UserId: l.user.Id,
	}).Error)

	assay, err = locator.FindAssayByBarcode(context.Background(), "AS1")
	require.NoError(t, err)
	assert.True(t, assay.Used())
}

func TestLocator_RegistersUserFromSequencescape(t *testing.T) {
	db := setupTestDB(t)
	remote := new(mockRemote)
	remote.On("Find", mock.Anything, sequencescape.SwipecardSearch, "SC9").
		Return(sequencescape.Result{"uuid": "U9", "login": "ann"}, nil).Once()
	locator := NewLocatorService(db, remote)

	user, err := locator.FindUserBySwipecard(context.Background(), "SC9")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ann", user.Login)
	assert.Equal(t, "U9", user.UUID)

	// the second lookup is local
	again, err := locator.FindUserBySwipecard(context.Background(), "SC9")
	require.NoError(t, err)
	assert.Equal(t, user.Id, again.Id)
	remote.AssertExpectations(t)
}

func TestLocator_ReassignsSwipecardToKnownUser(t *testing.T) {
	db := setupTestDB(t)
	l := seedLab(t, db)
	remote := new(mockRemote)
	remote.On("Find", mock.Anything, sequencescape.SwipecardSearch, "NEWCARD").
		Return(sequencescape.Result{"uuid": "U-bob", "login": "bob"}, nil)
	locator := NewLocatorService(db, remote)

	user, err := locator.FindUserBySwipecard(context.Background(), "NEWCARD")
	require.NoError(t, err)
	assert.Equal(t, l.user.Id, user.Id)
	assert.Equal(t, "NEWCARD", user.SwipecardCode)

	var count int64
	db.Model(&models.UserModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLocator_RemoteMissesAndFailures(t *testing.T) {
	db := setupTestDB(t)
	remote := new(mockRemote)
	remote.On("Find", mock.Anything, sequencescape.SwipecardSearch, "GHOST").
		Return(sequencescape.Result{"uuid": nil, "login": nil}, nil)
	remote.On("Find", mock.Anything, sequencescape.PlateBarcodeSearch, "BROKEN").
		Return(nil, sequencescape.ErrSearchNotFound)
	locator := NewLocatorService(db, remote)

	user, err := locator.FindUserBySwipecard(context.Background(), "GHOST")
	assert.NoError(t, err)
	assert.Nil(t, user)

	input, err := locator.FindInputByBarcode(context.Background(), "BROKEN")
	assert.ErrorIs(t, err, sequencescape.ErrSearchNotFound)
	assert.Nil(t, input)
}

func TestLocator_RegistersInputFromSequencescape(t *testing.T) {
	db := setupTestDB(t)
	remote := new(mockRemote)
	remote.On("Find", mock.Anything, sequencescape.PlateBarcodeSearch, "DN1").
		Return(sequencescape.Result{"uuid": "P1", "name": "Plate DN1", "external_type": nil}, nil).Once()
	locator := NewLocatorService(db, remote)

	input, err := locator.FindInputByBarcode(context.Background(), "DN1")
	require.NoError(t, err)
	require.NotNil(t, input)
	assert.Equal(t, "DN1", input.Barcode)
	require.NotNil(t, input.Name)
	assert.Equal(t, "Plate DN1", *input.Name)
	assert.Nil(t, input.ExternalType)
	remote.AssertExpectations(t)
}

func TestLocator_DatabaseFailure(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlMock.ExpectQuery(`SELECT \* FROM "assay_models"`).WillReturnError(errors.New("connection reset by peer"))

	assay, err := NewLocatorService(db, nil).FindAssayByBarcode(context.Background(), "AS1")
	assert.Nil(t, assay)
	assert.ErrorContains(t, err, "failed to find assay")
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
