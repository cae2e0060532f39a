package seed

import (
	"errors"

	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// quantTypes maps every seeded quant type to the standard type it is run against
var quantTypes = []struct {
	Name         string
	StandardType string
}{
	{"Picogreen", "Picogreen standard"},
	{"Ribogreen", "Ribogreen standard"},
	{"Qubit", "Qubit standard"},
	{"Nanodrop", ""},
}

// EnsureUser creates login with password and swipecard unless it already exists
func EnsureUser(db *gorm.DB, login, password, swipecard string) error {
	var user models.UserModel
	result := db.Where("login = ?", login).First(&user)
	if result.Error == nil {
		logging.Get().Info("User '%s' already exists", login)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser := models.UserModel{
		Login:         login,
		Password:      string(hashedPassword),
		SwipecardCode: swipecard,
		UUID:          uuid.New().String(),
	}
	if err := db.Create(&newUser).Error; err != nil {
		return err
	}
	logging.Get().Info("User '%s' created", login)
	return nil
}

// Seed creates the admin user and the standard quant types. It is safe to run repeatedly.
func Seed(db *gorm.DB) {
	if err := EnsureUser(db, "quanti", "quanti", "QUANTI-ADMIN"); err != nil {
		logging.Get().Error("Failed to create user: %v", err)
	}

	createdCount := 0
	for _, qt := range quantTypes {
		var standardTypeID *int
		if qt.StandardType != "" {
			standardType := models.StandardTypeModel{Name: qt.StandardType}
			if err := db.Where(models.StandardTypeModel{Name: qt.StandardType}).FirstOrCreate(&standardType).Error; err != nil {
				logging.Get().Error("Failed to create standard type %s: %v", qt.StandardType, err)
				continue
			}
			standardTypeID = &standardType.Id
		}

		var existing models.QuantTypeModel
		if err := db.Where("name = ?", qt.Name).First(&existing).Error; err == nil {
			logging.Get().Debug("Quant type %s already exists, skipping", qt.Name)
			continue
		}

		quantType := models.QuantTypeModel{Name: qt.Name, StandardTypeId: standardTypeID}
		if err := db.Create(&quantType).Error; err != nil {
			logging.Get().Error("Failed to create quant type %s: %v", qt.Name, err)
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		logging.Get().Info("Finished creating %d new quant types", createdCount)
	} else {
		logging.Get().Info("All quant types already exist")
	}
}
