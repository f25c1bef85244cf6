package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/models"
)

// ServiceName is reported in the health body.
const ServiceName = "inspecciones-postes-api"

type healthService struct {
	pinger     store.Pinger
	appVersion string

	logger *logger.Logger
	now    func() time.Time
}

func NewHealthService(pinger store.Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:     pinger,
		appVersion: cfg.Version,
		logger:     logger,
		now:        time.Now,
	}
}

// Check pings the database. A failed ping yields an unhealthy report
// carrying the error text.
func (s *healthService) Check(ctx context.Context) models.HealthReport {
	report := models.HealthReport{
		Timestamp: s.now().UTC(),
		Service:   ServiceName,
		Version:   s.appVersion,
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		report.Status = models.HealthStatusUnhealthy
		report.Database = models.DatabaseDisconnected
		report.Error = err.Error()
		return report
	}

	report.Status = models.HealthStatusHealthy
	report.Database = models.DatabaseConnected
	return report
}
