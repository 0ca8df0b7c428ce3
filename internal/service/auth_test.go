package service_test

import (
	"context"
	"testing"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := &domain.User{
		ID:           "user-1",
		Username:     "root",
		PasswordHash: string(hash),
		RoleID:       domain.RoleAdmin,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tm := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tm)

		userRepo.On("GetActiveByUsername", ctx, "root").Return(admin, nil).Once()
		tm.On("GenerateAccessToken", "user-1", "root", []string{domain.RoleAdmin}).Return("signed-token", nil).Once()

		token, err := svc.Login(ctx, "root", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		tm.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tm := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tm)

		userRepo.On("GetActiveByUsername", ctx, "root").Return(admin, nil).Once()

		_, err := svc.Login(ctx, "root", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		tm.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockTokenManager))

		userRepo.On("GetActiveByUsername", ctx, "ghost").Return(nil, nil).Once()

		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
