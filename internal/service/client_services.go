package service

import (
	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/store"
)

type ClientServices struct {
	InspectionService ClientInspectionService
	SyncService       ClientSyncService

	// SyncJob is the background sync trigger.
	SyncJob ClientSyncJob
	// RefreshJob periodically pulls the server view.
	RefreshJob ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, serverAdapter, cfg, logger)

	return &ClientServices{
		InspectionService: NewClientInspectionService(storages, syncSvc, logger),
		SyncService:       syncSvc,
		SyncJob:           NewClientSyncJob(syncSvc, storages.SyncTags, serverAdapter, logger),
		RefreshJob:        NewClientRefreshJob(syncSvc, logger),
	}
}
