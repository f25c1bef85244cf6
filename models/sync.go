// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SyncRequest is the body of the bulk reconciliation call sent by the field
// client. Each element is a [LocalInspection] serialized as
// {id: localId, ...payload}.
type SyncRequest struct {
	Inspections []LocalInspection `json:"inspecciones"`
}

// SyncItem is one undecoded element of a bulk reconciliation request.
//
// The server keeps the raw bytes of every element so that a malformed
// element fails on its own without rejecting the rest of the batch.
type SyncItem struct {
	// LocalID is the client identifier read from the element's "id" field.
	// It is zero when the element carries no usable id.
	LocalID int64

	// Raw is the element exactly as it appeared in the request body.
	Raw json.RawMessage
}

// SyncResult is the outcome of reconciling a single element.
type SyncResult struct {
	// LocalID echoes the client identifier of the element.
	LocalID int64 `json:"localId"`

	// RemoteID is the server identifier, present only when Success is true.
	RemoteID *int64 `json:"remoteId,omitempty"`

	// Success reports whether the element was persisted.
	Success bool `json:"success"`

	// Error is a human-readable failure description, present only when
	// Success is false.
	Error string `json:"error,omitempty"`
}

// SyncResponse is the body returned by the bulk reconciliation call. Results
// preserve the order of the request elements.
type SyncResponse struct {
	Results []SyncResult `json:"results"`
}

// CreateResponse is the body returned by single-record creation.
type CreateResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// SuccessResponse is the body returned by operations that carry no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON error body used by the REST API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DrainReport summarizes one pass over the pending records.
type DrainReport struct {
	// Attempted is the number of pending records the pass tried to submit.
	Attempted int `json:"attempted"`

	// Synced is the number of records acknowledged by the server.
	Synced int `json:"synced"`

	// Failed lists local identifiers of records that stayed pending.
	Failed []int64 `json:"failed,omitempty"`
}
