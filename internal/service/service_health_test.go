package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		wantStatus   string
		wantDatabase string
		wantError    bool
	}{
		{name: "healthy", wantStatus: models.HealthStatusHealthy, wantDatabase: models.DatabaseConnected},
		{name: "database down", pingErr: store.ErrStorageUnavailable, wantStatus: models.HealthStatusUnhealthy, wantDatabase: models.DatabaseDisconnected, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService(stubPinger{err: tt.pingErr}, config.App{Version: "1.4.0"}, logger.Nop()).(*healthService)
			svc.now = func() time.Time { return fixedNow }

			report := svc.Check(context.Background())
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, tt.wantDatabase, report.Database)
			assert.Equal(t, ServiceName, report.Service)
			assert.Equal(t, "1.4.0", report.Version)
			assert.Equal(t, fixedNow, report.Timestamp)
			assert.Equal(t, tt.wantError, report.Error != "")
			assert.Equal(t, !tt.wantError, report.IsHealthy())
		})
	}
}
