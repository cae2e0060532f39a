package services

import (
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StandardService struct {
	db *gorm.DB
}

// NewStandardService creates a new instance of StandardService
func NewStandardService(db *gorm.DB) *StandardService {
	return &StandardService{db: db}
}

// GetAllStandards retrieves all Standard records from the database
func (s *StandardService) GetAllStandards() ([]models.StandardModel, error) {
	var standards []models.StandardModel
	result := s.db.Preload("StandardType").Order("id").Find(&standards)
	if result.Error != nil {
		return nil, result.Error
	}
	return standards, nil
}

// GetStandardByID retrieves a Standard record by its ID
func (s *StandardService) GetStandardByID(id int) (*models.StandardModel, error) {
	var standard models.StandardModel
	result := s.db.Preload("StandardType").First(&standard, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &standard, nil
}

// CreateStandard creates a new Standard record in the database
func (s *StandardService) CreateStandard(standard *models.StandardModel) (*models.StandardModel, error) {
	result := s.db.Omit(clause.Associations).Create(standard)
	if result.Error != nil {
		return nil, result.Error
	}
	return standard, nil
}

// UpdateStandard updates an existing Standard record in the database
func (s *StandardService) UpdateStandard(id int, updatedData *models.StandardModel) (*models.StandardModel, error) {
	var standard models.StandardModel
	if err := s.db.First(&standard, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&standard).Omit(clause.Associations).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &standard, nil
}

// DeleteStandard removes a Standard record from the database
func (s *StandardService) DeleteStandard(id int) error {
	result := s.db.Delete(&models.StandardModel{}, id)
	return result.Error
}
