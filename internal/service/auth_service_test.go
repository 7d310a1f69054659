package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

const testJWTSecret = "test-secret-do-not-use"

func hashedUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
	}
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("creates a new user and strips the password hash", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, testJWTSecret, time.Hour)

		user, err := svc.Register(context.Background(), "New User", "new@example.com", "password123")
		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, "new@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
		assert.Nil(t, user.Profile)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		existing := hashedUser(t, "taken@example.com", "whatever")
		svc := NewAuthService(&mockUserRepo{user: existing}, testJWTSecret, time.Hour)

		_, err := svc.Register(context.Background(), "Someone", "taken@example.com", "password123")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, testJWTSecret, time.Hour)

		_, err := svc.Register(context.Background(), "", "new@example.com", "password123")
		assert.Error(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		user := hashedUser(t, "demo@example.com", "correct-horse")
		svc := NewAuthService(&mockUserRepo{user: user}, testJWTSecret, time.Hour)

		token, loggedIn, err := svc.Login(context.Background(), "demo@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Empty(t, loggedIn.PasswordHash)

		claims := &jwtClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, "aihealthcoach", claims.Issuer)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		user := hashedUser(t, "demo@example.com", "correct-horse")
		svc := NewAuthService(&mockUserRepo{user: user}, testJWTSecret, time.Hour)

		_, _, err := svc.Login(context.Background(), "demo@example.com", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown emails map to the same auth failure", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, testJWTSecret, time.Hour)

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(&mockUserRepo{}, "", time.Hour)
	})
}
