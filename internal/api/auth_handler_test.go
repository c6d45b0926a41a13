package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/mocks"
	"github.com/presently/presently-api/internal/service/auth"
	"github.com/presently/presently-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Email:          "alex@example.com",
		Role:           domain.RoleCore,
		HashedPassword: "$2a$10$hash",
	}
}

func newTestAuthHandler(users *mocks.MockUserService, verifier *mocks.MockPasswordVerifier) *AuthHandler {
	jwtSvc := &mocks.MockJWTService{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		Lifetime:     7 * 24 * time.Hour,
	}
	return NewAuthHandler(users, jwtSvc, verifier)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	user := testUser()

	tests := []struct {
		name       string
		body       any
		createErr  error
		wantStatus int
	}{
		{"success", RegisterRequest{Email: user.Email, Password: "password1234567"}, nil, http.StatusCreated},
		{"malformed json", `{"email":`, nil, http.StatusBadRequest},
		{"short password", RegisterRequest{Email: user.Email, Password: "short"}, nil, http.StatusBadRequest},
		{"bad email", RegisterRequest{Email: "nope", Password: "password1234567"}, nil, http.StatusBadRequest},
		{"duplicate email", RegisterRequest{Email: user.Email, Password: "password1234567"},
			fmt.Errorf("failed to create user: %w", store.ErrEmailExists), http.StatusConflict},
		{"store failure", RegisterRequest{Email: user.Email, Password: "password1234567"},
			errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			users := &mocks.MockUserService{
				CreateUserFn: func(ctx context.Context, email, password string) (*domain.User, error) {
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					return user, nil
				},
			}
			h := newTestAuthHandler(users, &mocks.MockPasswordVerifier{})
			rec := httptest.NewRecorder()

			h.Register(rec, newJSONRequest(t, http.MethodPost, "/api/auth/register", tt.body, uuid.Nil))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusCreated {
				return
			}
			resp := decodeBody[AuthResponse](t, rec)
			require.NotNil(t, resp.User)
			assert.Equal(t, user.ID, resp.User.ID)
			assert.Equal(t, domain.RoleCore, resp.User.Role)
			assert.Equal(t, "access-token", resp.AccessToken)
			assert.Equal(t, "refresh-token", resp.RefreshToken)
			expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	user := testUser()

	tests := []struct {
		name       string
		lookupErr  error
		passwordOK bool
		wantStatus int
	}{
		{"success", nil, true, http.StatusOK},
		{"wrong password", nil, false, http.StatusUnauthorized},
		{"unknown email", store.ErrUserNotFound, true, http.StatusUnauthorized},
		{"lookup failure", errors.New("timeout"), true, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			users := &mocks.MockUserService{
				GetUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
					if tt.lookupErr != nil {
						return nil, fmt.Errorf("failed to retrieve user by email: %w", tt.lookupErr)
					}
					return user, nil
				},
			}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: tt.passwordOK}
			h := newTestAuthHandler(users, verifier)
			rec := httptest.NewRecorder()

			body := LoginRequest{Email: user.Email, Password: "password1234567"}
			h.Login(rec, newJSONRequest(t, http.MethodPost, "/api/auth/login", body, uuid.Nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "Invalid credentials")
			}
			if tt.lookupErr == nil {
				assert.Equal(t, user.HashedPassword, verifier.CompareCalledWith.HashedPassword)
			}
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Parallel()

	user := testUser()
	users := &mocks.MockUserService{
		GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != user.ID {
				return nil, store.ErrUserNotFound
			}
			return user, nil
		},
	}

	t.Run("valid refresh token", func(t *testing.T) {
		t.Parallel()
		jwtSvc := &mocks.MockJWTService{
			Token:        "new-access",
			RefreshToken: "new-refresh",
			Claims:       &auth.Claims{UserID: user.ID, TokenType: auth.TokenTypeRefresh},
		}
		h := NewAuthHandler(users, jwtSvc, &mocks.MockPasswordVerifier{})
		rec := httptest.NewRecorder()

		h.RefreshToken(rec, newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "old-refresh"}, uuid.Nil))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeBody[AuthResponse](t, rec)
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		t.Parallel()
		jwtSvc := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredRefreshToken}
		h := NewAuthHandler(users, jwtSvc, &mocks.MockPasswordVerifier{})
		rec := httptest.NewRecorder()

		h.RefreshToken(rec, newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "old-refresh"}, uuid.Nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid refresh token")
	})

	t.Run("user no longer exists", func(t *testing.T) {
		t.Parallel()
		jwtSvc := &mocks.MockJWTService{Claims: &auth.Claims{UserID: uuid.New()}}
		h := NewAuthHandler(users, jwtSvc, &mocks.MockPasswordVerifier{})
		rec := httptest.NewRecorder()

		h.RefreshToken(rec, newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "old-refresh"}, uuid.Nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	user := testUser()
	users := &mocks.MockUserService{
		GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) { return user, nil },
	}
	h := newTestAuthHandler(users, &mocks.MockPasswordVerifier{})

	rec := httptest.NewRecorder()
	h.Me(rec, newJSONRequest(t, http.MethodGet, "/api/auth/me", nil, user.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[UserResponse](t, rec)
	assert.Equal(t, user.Email, resp.Email)
	assert.NotContains(t, rec.Body.String(), "hash")

	rec = httptest.NewRecorder()
	h.Me(rec, newJSONRequest(t, http.MethodGet, "/api/auth/me", nil, uuid.Nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
