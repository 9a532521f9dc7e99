package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"
	mockSvc "gasradar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockSvc.MockTokenService)
		wantCode   int
		wantCalled bool
	}{
		{
			name:      "missing header",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "not a bearer token",
			header:    "Basic dXNlcjpwYXNz",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
			},
			wantCode:   http.StatusNoContent,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setupMock(tokenSvc)
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				gotID, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)

				return c.NoContent(http.StatusNoContent)
			}

			require.NoError(t, m.Authenticate(next)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{name: "operator allowed", roles: []string{"user", "operator"}, wantCode: http.StatusNoContent},
		{name: "plain user rejected", roles: []string{"user"}, wantCode: http.StatusForbidden},
		{name: "no roles", roles: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/test/jobs/sync/run", nil), rec)
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			require.NoError(t, m.RequireRole(entity.RoleOperator)(next)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
