package services

import (
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StandardTypeService struct {
	db *gorm.DB
}

// NewStandardTypeService creates a new instance of StandardTypeService
func NewStandardTypeService(db *gorm.DB) *StandardTypeService {
	return &StandardTypeService{db: db}
}

// GetAllStandardTypes retrieves all StandardType records from the database
func (s *StandardTypeService) GetAllStandardTypes() ([]models.StandardTypeModel, error) {
	var standardTypes []models.StandardTypeModel
	result := s.db.Order("id").Find(&standardTypes)
	if result.Error != nil {
		return nil, result.Error
	}
	return standardTypes, nil
}

// GetStandardTypeByID retrieves a StandardType record by its ID
func (s *StandardTypeService) GetStandardTypeByID(id int) (*models.StandardTypeModel, error) {
	var standardType models.StandardTypeModel
	result := s.db.First(&standardType, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &standardType, nil
}

// CreateStandardType creates a new StandardType record in the database
func (s *StandardTypeService) CreateStandardType(standardType *models.StandardTypeModel) (*models.StandardTypeModel, error) {
	result := s.db.Omit(clause.Associations).Create(standardType)
	if result.Error != nil {
		return nil, result.Error
	}
	return standardType, nil
}

// UpdateStandardType updates an existing StandardType record in the database
func (s *StandardTypeService) UpdateStandardType(id int, updatedData *models.StandardTypeModel) (*models.StandardTypeModel, error) {
	var standardType models.StandardTypeModel
	if err := s.db.First(&standardType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&standardType).Omit(clause.Associations).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &standardType, nil
}

// DeleteStandardType removes a StandardType record from the database
func (s *StandardTypeService) DeleteStandardType(id int) error {
	result := s.db.Delete(&models.StandardTypeModel{}, id)
	return result.Error
}
