package services

import (
	"bytes"
	"testing"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportService_Assays(t *testing.T) {
	db := setupTestDB(t)
	seedLab(t, db)
	service := NewImportService(db)

	result, err := service.ImportAssaysFromExcel(workbook(t,
		[]interface{}{"Barcode"},
		[]interface{}{"AS1"},
		[]interface{}{"AS2"},
		[]interface{}{""},
		[]interface{}{"AS3"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	var count int64
	db.Model(&models.AssayModel{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestImportService_Standards(t *testing.T) {
	db := setupTestDB(t)
	service := NewImportService(db)

	result, err := service.ImportStandardsFromExcel(workbook(t,
		[]interface{}{"barcode", "type", "lot", "expires"},
		[]interface{}{"STD10", "Picogreen standard", "LOT-1", "2030-01-31"},
		[]interface{}{"STD11", "Picogreen standard", "", ""},
		[]interface{}{"STD12", "Ribogreen standard", "LOT-2", "not a date"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3")

	var standard models.StandardModel
	require.NoError(t, db.Preload("StandardType").Where("barcode = ?", "STD10").First(&standard).Error)
	require.NotNil(t, standard.StandardType)
	assert.Equal(t, "Picogreen standard", standard.StandardType.Name)
	require.NotNil(t, standard.ExpiresAt)
	assert.Equal(t, 2030, standard.ExpiresAt.Year())
	require.NotNil(t, standard.LotNumber)
	assert.Equal(t, "LOT-1", *standard.LotNumber)

	var types int64
	db.Model(&models.StandardTypeModel{}).Count(&types)
	assert.Equal(t, int64(2), types)
}

func TestImportService_RejectsGarbage(t *testing.T) {
	_, err := NewImportService(setupTestDB(t)).ImportAssaysFromExcel(bytes.NewBufferString("not a workbook"))
	assert.ErrorContains(t, err, "invalid excel file")
}
