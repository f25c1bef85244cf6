// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the field client's transport to the inspection
// backend.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) whose
// requests go through the caching gateway.
//
// mapHTTPError turns HTTP status codes into the sentinel values of
// errors.go so callers can use [errors.Is]. Transport failures and the
// gateway's synthesized offline responses both surface as
// [ErrNetworkUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-field-inspections/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the inspection backend.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// CreateInspection submits payload as a new inspection and returns the
	// server-assigned id.
	CreateInspection(ctx context.Context, payload models.InspectionPayload) (int64, error)

	// UpdateInspection overwrites the inspection remoteID with payload.
	UpdateInspection(ctx context.Context, remoteID int64, payload models.InspectionPayload) error

	// SyncInspections submits records through the bulk reconciliation
	// endpoint. Results are in input order.
	SyncInspections(ctx context.Context, records []models.LocalInspection) ([]models.SyncResult, error)

	// ListInspectionsByTechnician fetches the inspections assigned to
	// technicianID. The List calls never answer from the gateway cache, so
	// offline they fail with ErrNetworkUnavailable.
	ListInspectionsByTechnician(ctx context.Context, technicianID int64) ([]models.Inspection, error)

	// ListColors fetches the color catalog.
	ListColors(ctx context.Context) ([]models.Color, error)

	// ListPosts fetches the posts of companyID.
	ListPosts(ctx context.Context, companyID int64) ([]models.Post, error)

	// Health probes the backend. It bypasses every cache, so a nil result
	// means the backend answered right now.
	Health(ctx context.Context) error
}
