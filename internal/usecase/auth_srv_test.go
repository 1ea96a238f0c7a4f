package usecase_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(userRepo *fakeUserRepo, sessionRepo *fakeSessionRepo) usecase.AuthService {
	repo := &repository.Repository{User: userRepo, Session: sessionRepo}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryDays: 30}}
	return usecase.NewAuthService(repo, config, zap.NewNop())
}

func registeredUser(userRepo *fakeUserRepo, phone, password string) *entity.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		PhoneNumber:  phone,
		Name:         "Existing User",
		Email:        "existing@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}
	userRepo.add(user)
	return user
}

func TestRegister_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		PhoneNumber: "081234567890",
		Name:        "New Customer",
		Email:       "new@example.com",
		Password:    "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "081234567890", resp.PhoneNumber)
	assert.Equal(t, entity.RoleCustomer, resp.Role)

	// auto login: a session is created alongside the account
	require.NotEmpty(t, resp.Token)
	session, err := sessionRepo.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)

	// password never stored in the clear
	stored, _ := userRepo.FindByPhoneNumber(context.Background(), "081234567890")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegister_DuplicatePhoneNumber(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	registeredUser(userRepo, "081234567890", "secret123")

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		PhoneNumber: "081234567890",
		Name:        "Somebody Else",
		Email:       "else@example.com",
		Password:    "hunter22",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Nil(t, resp)
	assert.Len(t, userRepo.users, 1)
}

func TestLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	user := registeredUser(userRepo, "081234567890", "secret123")

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		PhoneNumber: "081234567890",
		Password:    "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
	require.NotEmpty(t, resp.Token)

	session, err := sessionRepo.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	registeredUser(userRepo, "081234567890", "secret123")

	_, err := service.Login(context.Background(), &request.LoginRequest{
		PhoneNumber: "081234567890",
		Password:    "wrong-password",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_UnknownPhoneNumber(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		PhoneNumber: "089999999999",
		Password:    "whatever",
	})

	require.Error(t, err)
	// same error as a wrong password, no account probing
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogout_RevokesSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	service := newAuthService(userRepo, sessionRepo)

	registeredUser(userRepo, "081234567890", "secret123")

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		PhoneNumber: "081234567890",
		Password:    "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), resp.Token))

	session, err := sessionRepo.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogout_InvalidTokenFormat(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	err := service.Logout(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token format")
}

func TestCheckUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newAuthService(userRepo, newFakeSessionRepo())

	user := registeredUser(userRepo, "081234567890", "secret123")

	resp, err := service.CheckUser(context.Background(), &request.CheckUserRequest{PhoneNumber: "081234567890"})
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, user.ID.String(), *resp.UserID)

	resp, err = service.CheckUser(context.Background(), &request.CheckUserRequest{PhoneNumber: "080000000000"})
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.Nil(t, resp.UserID)
}
