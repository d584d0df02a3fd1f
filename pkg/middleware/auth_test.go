package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		setup    func(auth *mocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder, called bool, claims *domain.Claims)
	}{
		{
			name:   "public path skips validation",
			method: http.MethodPost,
			path:   "/v1/login",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.True(t, called)
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "preflight passes through",
			method: http.MethodOptions,
			path:   "/v1/users",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.True(t, called)
			},
		},
		{
			name:   "missing header",
			method: http.MethodGet,
			path:   "/v1/me",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.False(t, called)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingToken, decodeError(t, rec).Code)
			},
		},
		{
			name:   "header without bearer scheme",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Token abc",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.False(t, called)
				assert.Equal(t, apiErrors.ErrMissingToken, decodeError(t, rec).Code)
			},
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Bearer old",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("old").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "token is expired"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.False(t, called)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrExpiredToken, decodeError(t, rec).Code)
			},
		},
		{
			name:   "invalid token",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Bearer forged",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, _ *domain.Claims) {
				assert.False(t, called)
				assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
			},
		},
		{
			name:   "valid token stores claims",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{
					UID:   "u-1",
					Email: "ana@example.com",
					Roles: []domain.Role{domain.RoleAdmin},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, called bool, claims *domain.Claims) {
				assert.True(t, called)
				require.NotNil(t, claims)
				assert.Equal(t, "u-1", claims.UID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var (
				called bool
				claims *domain.Claims
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				claims, _ = ClaimsFromContext(r.Context())
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			tt.validate(t, rec, called, claims)
		})
	}
}
