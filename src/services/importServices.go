package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ARQAP/quanti-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type ImportService struct {
	db *gorm.DB
}

// NewImportService creates a new instance of ImportService
func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

var expiryLayouts = []string{"2006-01-02", "02/01/2006", "01-02-06"}

// readRows returns the rows of the first sheet, without a leading "barcode" header
func readRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("the workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "barcode") {
		rows = rows[1:]
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// ImportAssaysFromExcel registers assay plates listed one barcode per row
func (s *ImportService) ImportAssaysFromExcel(r io.Reader) (*ImportResult, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		barcode := cell(row, 0)
		if barcode == "" {
			continue
		}
		assay := models.AssayModel{Barcode: barcode}
		created := s.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&assay)
		if created.Error != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, created.Error))
			continue
		}
		if created.RowsAffected == 0 {
			result.Skipped++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportStandardsFromExcel registers standards from rows of
// barcode, standard type, lot number, expiry date. Unknown standard types are created.
func (s *ImportService) ImportStandardsFromExcel(r io.Reader) (*ImportResult, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	standardTypes := make(map[string]int)

	for i, row := range rows {
		barcode := cell(row, 0)
		if barcode == "" {
			continue
		}

		standard := models.StandardModel{Barcode: barcode, LotNumber: optionalString(cell(row, 2))}

		if typeName := cell(row, 1); typeName != "" {
			id, ok := standardTypes[typeName]
			if !ok {
				standardType := models.StandardTypeModel{Name: typeName}
				if err := s.db.Where(models.StandardTypeModel{Name: typeName}).FirstOrCreate(&standardType).Error; err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("row %d: standard type %s: %v", i+1, typeName, err))
					continue
				}
				id = standardType.Id
				standardTypes[typeName] = id
			}
			standard.StandardTypeId = &id
		}

		if expiry := cell(row, 3); expiry != "" {
			expiresAt, err := parseExpiry(expiry)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				continue
			}
			standard.ExpiresAt = &expiresAt
		}

		created := s.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&standard)
		if created.Error != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, created.Error))
			continue
		}
		if created.RowsAffected == 0 {
			result.Skipped++
			continue
		}
		result.Imported++
	}
	return result, nil
}

func parseExpiry(value string) (time.Time, error) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid expiry date %q", value)
}
