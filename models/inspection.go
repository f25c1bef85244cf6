// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InspectionState is the workflow state of a pole inspection.
type InspectionState string

const (
	InspectionPending    InspectionState = "pendiente"
	InspectionInProgress InspectionState = "en_progreso"
	InspectionCompleted  InspectionState = "completada"
)

// PaintCondition grades the paint of an inspected pole.
type PaintCondition string

const (
	PaintExcellent PaintCondition = "excelente"
	PaintGood      PaintCondition = "bueno"
	PaintFair      PaintCondition = "regular"
	PaintPoor      PaintCondition = "malo"
)

// BaseCondition grades the base of an inspected pole.
type BaseCondition string

const (
	BaseSolid        BaseCondition = "solida"
	BaseDeteriorated BaseCondition = "deteriorada"
	BaseNeedsRepair  BaseCondition = "requiere_reparacion"
)

// InspectionPayload holds the domain fields of an inspection as they travel
// between the field client and the server. It is embedded both in the server
// row ([Inspection]) and in the client-side record ([LocalInspection]).
//
// Nullable columns are modelled as pointers so that "not provided" and
// "zero" stay distinguishable.
type InspectionPayload struct {
	// PostID references the inspected pole. Required.
	PostID int64 `json:"posteId"`

	// TechnicianID references the technician the inspection is assigned to.
	// Required.
	TechnicianID int64 `json:"tecnicoId"`

	// SupervisorID references the supervising user, if any.
	SupervisorID *int64 `json:"supervisorId,omitempty"`

	// AssignedAt is the time the inspection was assigned. The server fills it
	// with the current time when the client leaves it empty.
	AssignedAt time.Time `json:"fechaAsignacion"`

	// ExecutedAt is the time the inspection was carried out in the field.
	ExecutedAt *time.Time `json:"fechaEjecucion,omitempty"`

	// State is the workflow state. Required.
	State InspectionState `json:"estado"`

	// Height is the measured pole height in meters.
	Height *float64 `json:"altura,omitempty"`

	// PaintCondition grades the paint.
	PaintCondition *PaintCondition `json:"estadoPintura,omitempty"`

	// ColorID references the observed pole color.
	ColorID *int64 `json:"colorId,omitempty"`

	// Functioning reports whether the pole fixture works.
	Functioning *bool `json:"funcionando,omitempty"`

	// BaseCondition grades the pole base.
	BaseCondition *BaseCondition `json:"estadoBase,omitempty"`

	// Notes is free-text technician commentary.
	Notes *string `json:"observaciones,omitempty"`

	// Photos lists identifiers of the attached photos.
	Photos PhotoList `json:"fotos"`

	// Latitude is the real-world latitude captured at execution time.
	Latitude *float64 `json:"latReal,omitempty"`

	// Longitude is the real-world longitude captured at execution time.
	Longitude *float64 `json:"lngReal,omitempty"`

	// Signature is the captured signature, usually an image data URL.
	Signature *string `json:"firma,omitempty"`

	// SyncStatus is the synchronization state of the record.
	SyncStatus SyncStatus `json:"syncStatus,omitempty"`

	// LastModified is stamped on every mutation. It is the only ordering
	// signal between two versions of a record.
	LastModified time.Time `json:"lastModified"`
}

// Inspection is an inspection row as persisted by the server.
type Inspection struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	InspectionPayload

	// PostCode is the code of the referenced pole. Filled by read queries only.
	PostCode *string `json:"posteCodigo,omitempty"`

	// PostAddress is the address of the referenced pole. Filled by read
	// queries only.
	PostAddress *string `json:"posteUbicacion,omitempty"`

	// ColorName is the name of the referenced color. Filled by read queries
	// only.
	ColorName *string `json:"colorNombre,omitempty"`
}

// InspectionSummary is the reduced view returned to supervisors.
type InspectionSummary struct {
	ID             int64           `json:"id"`
	State          InspectionState `json:"estado"`
	AssignedAt     time.Time       `json:"fechaAsignacion"`
	ExecutedAt     *time.Time      `json:"fechaEjecucion,omitempty"`
	PostCode       *string         `json:"posteCodigo,omitempty"`
	TechnicianName *string         `json:"tecnicoNombre,omitempty"`
}

// LocalInspection is an inspection record as kept by the field client.
//
// LocalID is assigned by the local store and is what the server echoes back
// as localId in bulk reconciliation results. RemoteID stays nil until the
// server has acknowledged the record; a record with SyncStatus synced always
// has a non-nil RemoteID.
type LocalInspection struct {
	// LocalID is the client-assigned auto-increment identifier. On the wire it
	// travels as "id" so that a bulk sync item reads {id: localId, ...}.
	LocalID int64 `json:"id"`

	// RemoteID is the server identifier, nil until the first acknowledgment.
	RemoteID *int64 `json:"remoteId,omitempty"`

	InspectionPayload
}

// IsSynced reports whether the record has been acknowledged by the server.
func (l LocalInspection) IsSynced() bool {
	return l.SyncStatus == SyncStatusSynced && l.RemoteID != nil
}

// ToLocal converts a server row into a synced client record.
func (i Inspection) ToLocal() LocalInspection {
	remoteID := i.ID
	payload := i.InspectionPayload
	payload.SyncStatus = SyncStatusSynced

	return LocalInspection{
		RemoteID:          &remoteID,
		InspectionPayload: payload,
	}
}
