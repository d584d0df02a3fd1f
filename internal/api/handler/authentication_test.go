package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/social-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *authmocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "valid credentials return a token",
			body: `{"email":"ana@example.com","password":"secret123"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "secret123").Return("signed.jwt.token", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp LoginResponse
				decodeBody(t, rec, &resp)
				assert.Equal(t, "signed.jwt.token", resp.Token)
			},
		},
		{
			name:  "malformed body",
			body:  `{"email":`,
			setup: func(m *authmocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name: "wrong password",
			body: `{"email":"ana@example.com","password":"nope"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid email or password"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)

				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, body.Code)
				assert.Equal(t, "Invalid email or password", body.Message)
			},
		},
		{
			name: "unexpected error",
			body: `{"email":"ana@example.com","password":"secret123"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			Login(service).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			tt.validate(t, rec)
		})
	}
}

func TestGetMe(t *testing.T) {
	t.Run("returns the caller profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GetUserProfile(gomock.Any(), "u1").Return(&domain.Profile{
			UserRecord:  domain.UserRecord{UID: "u1", Email: "u1@example.com"},
			Role:        domain.RoleMarketingTeam,
			RoleDisplay: "Marketing Team",
		}, nil)

		rec := httptest.NewRecorder()
		req := withClaims(newRequest(http.MethodGet, "/v1/me", nil), "u1", domain.RoleMarketingTeam)
		GetMe(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var profile domain.Profile
		decodeBody(t, rec, &profile)
		assert.Equal(t, "u1", profile.UID)
		assert.Equal(t, domain.RoleMarketingTeam, profile.Role)
	})

	t.Run("without claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
	})
}
