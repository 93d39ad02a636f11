package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Healthcheck não exige token",
			path:       "/healthcheck",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem header de autorização",
			path:       "/v1/experiments",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Header sem Bearer",
			path:       "/v1/experiments",
			header:     "Basic abc",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/experiments",
			header: "Bearer velho",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token válido segue com as claims no contexto",
			path:   "/v1/experiments",
			header: "Bearer bom",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, 1, claims.UserID)
				w.WriteHeader(http.StatusNoContent)
			}))
			if tt.path == "/healthcheck" {
				handler = AuthMiddleware(auth)(okHandler)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		roleID     int
		middleware func() func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "Admin em rota de admin", roleID: domain.RoleAdmin, middleware: AdminOnly, wantStatus: http.StatusNoContent},
		{name: "Supervisor em rota de admin", roleID: domain.RoleSupervisor, middleware: AdminOnly, wantStatus: http.StatusForbidden},
		{name: "Supervisor em rota de supervisor", roleID: domain.RoleSupervisor, middleware: AdminOrSupervisor, wantStatus: http.StatusNoContent},
		{name: "Cliente em rota de supervisor", roleID: domain.RoleClient, middleware: AdminOrSupervisor, wantStatus: http.StatusForbidden},
		{name: "Cliente em rota aberta a todos", roleID: domain.RoleClient, middleware: AllRoles, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: 5, UserRoleID: tt.roleID}, nil)

			chain := alice.New(AuthMiddleware(auth), tt.middleware()).Then(okHandler)

			req := httptest.NewRequest(http.MethodPost, "/v1/experiments", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()

			chain.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestRoleMiddlewareSemClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminOnly()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/experiments", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggingMiddlewarePropagaCorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationHeader, "corr-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "corr-1", rec.Header().Get(CorrelationHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/experiments", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/v1/experiments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/experiments", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
