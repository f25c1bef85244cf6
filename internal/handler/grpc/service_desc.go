// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-field-inspections/models"
	"google.golang.org/grpc"
)

const (
	serviceName = "inspections.v1.Inspections"

	CreateMethod = "/" + serviceName + "/Create"
	UpdateMethod = "/" + serviceName + "/Update"
	SyncMethod   = "/" + serviceName + "/Sync"
)

// UpdateRequest overwrites inspection ID with Inspection.
type UpdateRequest struct {
	ID         int64                    `json:"id"`
	Inspection models.InspectionPayload `json:"inspeccion"`
}

// InspectionsServer is the server API of the inspections service.
type InspectionsServer interface {
	Create(ctx context.Context, in *models.InspectionPayload) (*models.CreateResponse, error)
	Update(ctx context.Context, in *UpdateRequest) (*models.SuccessResponse, error)

	// Sync receives the bulk body {"inspecciones": [...]} undecoded.
	Sync(ctx context.Context, in *json.RawMessage) (*models.SyncResponse, error)
}

// InspectionsServiceDesc describes the inspections service for
// grpc.ServiceRegistrar.RegisterService.
var InspectionsServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*InspectionsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: createHandler},
		{MethodName: "Update", Handler: updateHandler},
		{MethodName: "Sync", Handler: syncHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inspections/v1/inspections.json",
}

func createHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.InspectionPayload)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InspectionsServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InspectionsServer).Create(ctx, req.(*models.InspectionPayload))
	}
	return interceptor(ctx, in, info, handler)
}

func updateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InspectionsServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InspectionsServer).Update(ctx, req.(*UpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func syncHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(json.RawMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InspectionsServer).Sync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InspectionsServer).Sync(ctx, req.(*json.RawMessage))
	}
	return interceptor(ctx, in, info, handler)
}
