package unit

import (
	"context"
	"testing"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/security"
	"rentnest-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-that-is-long-enough-0123", 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	user := &domain.User{ID: 1, Email: "renter@test.com", Name: "Renter", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "renter@test.com").Return(user, nil)
		svc := service.NewAuthService(userRepo, tokens)

		token, got, err := svc.Login(ctx, "renter@test.com", "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "renter@test.com").Return(user, nil)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "renter@test.com", "nope")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.ErrNotFound)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "ghost@test.com", "password123")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
