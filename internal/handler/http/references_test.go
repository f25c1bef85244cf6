package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/internal/validators"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/stretchr/testify/assert"
)

// ── /colores ────────────────────────────────────────────────────────────────

func TestListColors(t *testing.T) {
	s := newTestServices()
	s.references.listColorsFn = func(context.Context) ([]models.Color, error) {
		return []models.Color{{ID: 1, Name: "amarillo"}}, nil
	}
	rec := serve(t, newTestRouter(t, s, config.StructuredConfig{}), http.MethodGet, "/colores", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"amarillo"}]`, rec.Body.String())

	s.references.listColorsFn = func(context.Context) ([]models.Color, error) {
		return nil, errors.New("boom")
	}
	rec = serve(t, newTestRouter(t, s, config.StructuredConfig{}), http.MethodGet, "/colores", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, errorBody(app.MsgListColorsFailed), rec.Body.String())
}

func TestCreateColor(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "created", body: `{"name":"gris"}`, wantStatus: http.StatusOK, wantBody: `{"success":true,"id":5,"name":"gris"}`},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest, wantBody: errorBody(app.MsgInvalidJSON)},
		{
			name:       "blank name",
			body:       `{"name":" "}`,
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyColorName),
			wantStatus: http.StatusBadRequest,
			wantBody:   errorBody(app.MsgColorNameRequired),
		},
		{name: "duplicate", body: `{"name":"gris"}`, err: store.ErrDuplicateKey, wantStatus: http.StatusBadRequest, wantBody: errorBody(app.MsgColorAlreadyExists)},
		{
			name:       "storage failure",
			body:       `{"name":"gris"}`,
			err:        fmt.Errorf("%w: %w", service.ErrPersistenceFailure, store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorBody(app.MsgCreateColorFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.references.createColorFn = func(_ context.Context, c models.Color) (models.Color, error) {
				c.ID = 5
				return c, tt.err
			}

			rec := serve(t, newTestRouter(t, s, config.StructuredConfig{}), http.MethodPost, "/colores", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── /postes ─────────────────────────────────────────────────────────────────

func TestListPosts(t *testing.T) {
	s := newTestServices()
	s.references.listPostsFn = func(_ context.Context, companyID int64) ([]models.Post, error) {
		return []models.Post{{ID: 9, Code: "P-009", CompanyID: companyID}}, nil
	}
	router := newTestRouter(t, s, config.StructuredConfig{})

	rec := serve(t, router, http.MethodGet, "/postes?companyId=4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"companyId":4`)

	for _, path := range []string{"/postes", "/postes?companyId=", "/postes?companyId=abc", "/postes?companyId=0"} {
		rec = serve(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.JSONEq(t, errorBody(app.MsgCompanyIDRequired), rec.Body.String(), path)
	}
}

func TestGetPost(t *testing.T) {
	s := newTestServices()
	s.references.getPostFn = func(_ context.Context, id int64) (models.Post, error) {
		if id == 1 {
			return models.Post{}, store.ErrPostNotFound
		}
		return models.Post{ID: id, Code: "P-002"}, nil
	}
	router := newTestRouter(t, s, config.StructuredConfig{})

	rec := serve(t, router, http.MethodGet, "/postes/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/postes/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, errorBody(app.MsgPostNotFound), rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/postes/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, errorBody(app.MsgInvalidPostID), rec.Body.String())
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:       "missing fields",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPostAddress),
			wantStatus: http.StatusBadRequest,
			wantBody:   errorBody(app.MsgPostRequiredFields),
		},
		{name: "duplicate code", err: store.ErrDuplicateKey, wantStatus: http.StatusBadRequest, wantBody: errorBody(app.MsgPostCodeExists)},
		{name: "storage failure", err: service.ErrPersistenceFailure, wantStatus: http.StatusInternalServerError, wantBody: errorBody(app.MsgCreatePostFailed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.references.createPostFn = func(_ context.Context, p models.Post) (models.Post, error) {
				p.ID = 12
				return p, tt.err
			}

			body := `{"codigo":"P-012","direccion":"Calle 5","tipo":"madera","lat":4.6,"lng":-74.1,"companyId":1}`
			rec := serve(t, newTestRouter(t, s, config.StructuredConfig{}), http.MethodPost, "/postes", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}
			assert.JSONEq(t, `{"id":12,"codigo":"P-012","lat":4.6,"lng":-74.1,"direccion":"Calle 5","tipo":"madera","companyId":1}`, rec.Body.String())
		})
	}
}

// ── /health ─────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	s := newTestServices()
	router := newTestRouter(t, s, config.StructuredConfig{})

	rec := serve(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	s.health.report = models.HealthReport{Status: models.HealthStatusUnhealthy, Database: models.DatabaseDisconnected, Error: "dial tcp"}
	rec = serve(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"disconnected"`)
}
