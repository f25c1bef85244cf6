package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/models"
)

// ---- Mock: InspectionService ----

type mockInspectionService struct {
	createFn           func(ctx context.Context, payload models.InspectionPayload) (int64, error)
	updateFn           func(ctx context.Context, id int64, payload models.InspectionPayload) error
	getFn              func(ctx context.Context, id int64) (models.Inspection, error)
	listByTechnicianFn func(ctx context.Context, technicianID int64) ([]models.Inspection, error)
	listBySupervisorFn func(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error)
	reconcileFn        func(ctx context.Context, items []models.SyncItem) ([]models.SyncResult, error)
}

func (m *mockInspectionService) Create(ctx context.Context, payload models.InspectionPayload) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, payload)
	}
	return 1, nil
}

func (m *mockInspectionService) Update(ctx context.Context, id int64, payload models.InspectionPayload) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, payload)
	}
	return nil
}

func (m *mockInspectionService) Get(ctx context.Context, id int64) (models.Inspection, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Inspection{ID: id}, nil
}

func (m *mockInspectionService) ListByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error) {
	if m.listByTechnicianFn != nil {
		return m.listByTechnicianFn(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockInspectionService) ListBySupervisor(ctx context.Context, supervisorID int64) ([]models.InspectionSummary, error) {
	if m.listBySupervisorFn != nil {
		return m.listBySupervisorFn(ctx, supervisorID)
	}
	return nil, nil
}

func (m *mockInspectionService) Reconcile(ctx context.Context, items []models.SyncItem) ([]models.SyncResult, error) {
	if m.reconcileFn != nil {
		return m.reconcileFn(ctx, items)
	}
	return nil, nil
}

// ---- Mock: ReferenceService ----

type mockReferenceService struct {
	listColorsFn  func(ctx context.Context) ([]models.Color, error)
	createColorFn func(ctx context.Context, color models.Color) (models.Color, error)
	listPostsFn   func(ctx context.Context, companyID int64) ([]models.Post, error)
	getPostFn     func(ctx context.Context, id int64) (models.Post, error)
	createPostFn  func(ctx context.Context, post models.Post) (models.Post, error)
}

func (m *mockReferenceService) ListColors(ctx context.Context) ([]models.Color, error) {
	if m.listColorsFn != nil {
		return m.listColorsFn(ctx)
	}
	return nil, nil
}

func (m *mockReferenceService) CreateColor(ctx context.Context, color models.Color) (models.Color, error) {
	if m.createColorFn != nil {
		return m.createColorFn(ctx, color)
	}
	color.ID = 1
	return color, nil
}

func (m *mockReferenceService) ListPosts(ctx context.Context, companyID int64) ([]models.Post, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockReferenceService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	if m.getPostFn != nil {
		return m.getPostFn(ctx, id)
	}
	return models.Post{ID: id}, nil
}

func (m *mockReferenceService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if m.createPostFn != nil {
		return m.createPostFn(ctx, post)
	}
	post.ID = 1
	return post, nil
}

// ---- Mock: HealthService ----

type mockHealthService struct {
	report models.HealthReport
}

func (m *mockHealthService) Check(context.Context) models.HealthReport {
	return m.report
}

// ---- Mock: AuthService ----

type mockAuthService struct {
	enabled      bool
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Enabled() bool {
	return m.enabled
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1, Role: models.RoleTechnician}, nil
}

// ---- Helpers ----

type testServices struct {
	inspections *mockInspectionService
	references  *mockReferenceService
	health      *mockHealthService
	auth        *mockAuthService
}

func newTestServices() testServices {
	return testServices{
		inspections: &mockInspectionService{},
		references:  &mockReferenceService{},
		health:      &mockHealthService{report: models.HealthReport{Status: models.HealthStatusHealthy, Database: models.DatabaseConnected}},
		auth:        &mockAuthService{},
	}
}

func (s testServices) services() *service.Services {
	return &service.Services{
		AuthService:       s.auth,
		InspectionService: s.inspections,
		ReferenceService:  s.references,
		HealthService:     s.health,
	}
}

// newTestRouter собирает полный роутер поверх моков сервисов.
func newTestRouter(t *testing.T, s testServices, cfg config.StructuredConfig) http.Handler {
	t.Helper()
	return NewHandler(s.services(), cfg, logger.Nop()).Init()
}
