package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	session *entity.Session
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return nil
}

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if s.session != nil && s.session.Token.String() == token {
		return s.session, nil
	}
	return nil, nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error {
	return nil
}

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	return nil, nil
}

func activeSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestAuthSession_ValidToken(t *testing.T) {
	userID := uuid.New()
	session := activeSession(userID)
	sessionRepo := &stubSessionRepo{session: session}

	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.AuthSession(sessionRepo, zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthSession_Rejections(t *testing.T) {
	sessionRepo := &stubSessionRepo{}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token abc"},
		{name: "no token after scheme", header: "Bearer"},
		{name: "unknown token", header: "Bearer " + uuid.New().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			handler := middleware.AuthSession(sessionRepo, zap.NewNop())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.UserRole
		wantCode int
	}{
		{name: "admin passes", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "customer forbidden", role: entity.RoleCustomer, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &entity.User{
				Base: entity.Base{ID: uuid.New()},
				Role: tt.role,
			}
			userRepo := &stubUserRepo{user: user}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := middleware.Admin(userRepo, zap.NewNop())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req = req.WithContext(utils.SetUserContext(req.Context(), user.ID))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdmin_NoAuthContext(t *testing.T) {
	handler := middleware.Admin(&stubUserRepo{}, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
