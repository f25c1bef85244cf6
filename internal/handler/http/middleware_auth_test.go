package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/colores", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "only spaces", header: "   ", wantErr: ErrEmptyAuthorizationHeader},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "non-Bearer scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer token extra-part", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_DisabledPassesThrough(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: false})

	called := false
	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, found := utils.GetUserIDFromContext(r.Context())
		assert.False(t, found)
		w.WriteHeader(http.StatusOK)
	}))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_StoresUserInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		enabled: true,
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good-token", tokenString)
			return models.Token{UserID: 42, Role: models.RoleSupervisor}, nil
		},
	})

	var userID int64
	var role string
	rr := executeAuth(h, "Bearer good-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ = utils.GetUserIDFromContext(r.Context())
		role, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, models.RoleSupervisor, role)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		wantBody string
	}{
		{name: "no header", header: "", wantBody: errorBody(app.MsgUnauthorized)},
		{name: "wrong scheme", header: "Token abc", wantBody: errorBody(app.MsgUnauthorized)},
		{name: "expired token", header: "Bearer old", parseErr: service.ErrTokenIsExpiredOrInvalid, wantBody: errorBody(app.MsgTokenIsExpiredOrInvalid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				enabled: true,
				parseTokenFn: func(context.Context, string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			})

			rr := executeAuth(h, tt.header, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next must not be called")
			}))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
