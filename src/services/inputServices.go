package services

import (
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InputService struct {
	db *gorm.DB
}

// NewInputService creates a new instance of InputService
func NewInputService(db *gorm.DB) *InputService {
	return &InputService{db: db}
}

// GetAllInputs retrieves all Input records from the database
func (s *InputService) GetAllInputs() ([]models.InputModel, error) {
	var inputs []models.InputModel
	result := s.db.Order("id").Find(&inputs)
	if result.Error != nil {
		return nil, result.Error
	}
	return inputs, nil
}

// GetInputByID retrieves an Input record by its ID
func (s *InputService) GetInputByID(id int) (*models.InputModel, error) {
	var input models.InputModel
	result := s.db.First(&input, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &input, nil
}

// CreateInput creates a new Input record in the database
func (s *InputService) CreateInput(input *models.InputModel) (*models.InputModel, error) {
	result := s.db.Omit(clause.Associations).Create(input)
	if result.Error != nil {
		return nil, result.Error
	}
	return input, nil
}

// UpdateInput updates an existing Input record in the database
func (s *InputService) UpdateInput(id int, updatedData *models.InputModel) (*models.InputModel, error) {
	var input models.InputModel
	if err := s.db.First(&input, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&input).Omit(clause.Associations).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &input, nil
}

// DeleteInput removes an Input record from the database
func (s *InputService) DeleteInput(id int) error {
	result := s.db.Delete(&models.InputModel{}, id)
	return result.Error
}
