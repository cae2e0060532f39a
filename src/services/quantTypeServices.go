package services

import (
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuantTypeService struct {
	db *gorm.DB
}

// NewQuantTypeService creates a new instance of QuantTypeService
func NewQuantTypeService(db *gorm.DB) *QuantTypeService {
	return &QuantTypeService{db: db}
}

// GetAllQuantTypes retrieves all QuantType records from the database
func (s *QuantTypeService) GetAllQuantTypes() ([]models.QuantTypeModel, error) {
	var quantTypes []models.QuantTypeModel
	result := s.db.Preload("StandardType").Order("id").Find(&quantTypes)
	if result.Error != nil {
		return nil, result.Error
	}
	return quantTypes, nil
}

// GetQuantTypeByID retrieves a QuantType record by its ID
func (s *QuantTypeService) GetQuantTypeByID(id int) (*models.QuantTypeModel, error) {
	var quantType models.QuantTypeModel
	result := s.db.Preload("StandardType").First(&quantType, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &quantType, nil
}

// CreateQuantType creates a new QuantType record in the database
func (s *QuantTypeService) CreateQuantType(quantType *models.QuantTypeModel) (*models.QuantTypeModel, error) {
	result := s.db.Omit(clause.Associations).Create(quantType)
	if result.Error != nil {
		return nil, result.Error
	}
	return quantType, nil
}

// UpdateQuantType updates an existing QuantType record in the database
func (s *QuantTypeService) UpdateQuantType(id int, updatedData *models.QuantTypeModel) (*models.QuantTypeModel, error) {
	var quantType models.QuantTypeModel
	if err := s.db.First(&quantType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&quantType).Omit(clause.Associations).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &quantType, nil
}

// DeleteQuantType removes a QuantType record from the database
func (s *QuantTypeService) DeleteQuantType(id int) error {
	result := s.db.Delete(&models.QuantTypeModel{}, id)
	return result.Error
}
