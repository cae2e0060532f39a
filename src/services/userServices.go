package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown login or a wrong password
var ErrInvalidCredentials = errors.New("invalid login or password")

type UserService struct {
	db            *gorm.DB
	tokenLifetime time.Duration
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB, tokenLifetime time.Duration) *UserService {
	if tokenLifetime <= 0 {
		tokenLifetime = 12 * time.Hour
	}
	return &UserService{db: db, tokenLifetime: tokenLifetime}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// CreateUser creates a new User record in the database
func (s *UserService) CreateUser(user *models.UserModel) (*models.UserModel, error) {
	user.Login = strings.TrimSpace(user.Login)
	user.SwipecardCode = strings.TrimSpace(user.SwipecardCode)
	if user.Login == "" || user.SwipecardCode == "" {
		return nil, errors.New("login and swipecard code are required")
	}
	if user.UUID == "" {
		user.UUID = uuid.New().String()
	}

	// Hash the password before saving
	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	result := s.db.Create(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

// DeleteUser deletes a User record by ID
func (s *UserService) DeleteUser(id int) error {
	result := s.db.Delete(&models.UserModel{}, id)
	return result.Error
}

// AuthenticateUser checks user credentials and returns a JWT token if valid.
// Users registered from a swipecard have no password and cannot log in.
func (s *UserService) AuthenticateUser(login, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("login = ?", login).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", result.Error
	}
	if user.Password == "" {
		return "", ErrInvalidCredentials
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":    user.Id,
		"login": user.Login,
		"exp":   time.Now().Add(s.tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
