package services

import (
	"testing"
	"time"

	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateAndAuthenticate(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	db := setupTestDB(t)
	service := NewUserService(db, time.Hour)

	user, err := service.CreateUser(&models.UserModel{Login: " alice ", SwipecardCode: "SC2", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.NotEmpty(t, user.UUID)
	assert.NotEqual(t, "pw", user.Password)

	tokenString, err := service.AuthenticateUser("alice", "pw")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["login"])
	assert.Equal(t, float64(user.Id), claims["id"])

	_, err = service.AuthenticateUser("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = service.AuthenticateUser("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_SwipecardOnlyUserCannotLogIn(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, 0)

	_, err := service.CreateUser(&models.UserModel{Login: "op", SwipecardCode: "SC3"})
	require.NoError(t, err)

	_, err = service.AuthenticateUser("op", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_CreateRequiresSwipecard(t *testing.T) {
	service := NewUserService(setupTestDB(t), time.Hour)

	_, err := service.CreateUser(&models.UserModel{Login: "x"})
	assert.Error(t, err)

	users, err := service.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}
