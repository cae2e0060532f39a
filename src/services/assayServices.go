package services

import (
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssayService struct {
	db *gorm.DB
}

// NewAssayService creates a new instance of AssayService
func NewAssayService(db *gorm.DB) *AssayService {
	return &AssayService{db: db}
}

// GetAllAssays retrieves all Assay records from the database
func (s *AssayService) GetAllAssays() ([]models.AssayModel, error) {
	var assays []models.AssayModel
	result := s.db.Preload("Quant").Order("id").Find(&assays)
	if result.Error != nil {
		return nil, result.Error
	}
	return assays, nil
}

// GetAssayByID retrieves an Assay record by its ID
func (s *AssayService) GetAssayByID(id int) (*models.AssayModel, error) {
	var assay models.AssayModel
	result := s.db.Preload("Quant").First(&assay, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &assay, nil
}

// CreateAssay creates a new Assay record in the database
func (s *AssayService) CreateAssay(assay *models.AssayModel) (*models.AssayModel, error) {
	result := s.db.Omit(clause.Associations).Create(assay)
	if result.Error != nil {
		return nil, result.Error
	}
	return assay, nil
}

// UpdateAssay updates an existing Assay record in the database
func (s *AssayService) UpdateAssay(id int, updatedData *models.AssayModel) (*models.AssayModel, error) {
	var assay models.AssayModel
	if err := s.db.First(&assay, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&assay).Omit(clause.Associations).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &assay, nil
}

// DeleteAssay removes an Assay record from the database
func (s *AssayService) DeleteAssay(id int) error {
	result := s.db.Delete(&models.AssayModel{}, id)
	return result.Error
}
