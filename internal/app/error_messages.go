// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// inspection backend handlers and the field client.
//
// All Msg* constants are the human-readable strings written into the
// "error" field of REST response bodies. The client maps them back to
// service errors, so the wording must stay stable.
package app

// Inspections.
const (
	// MsgInspectionRequiredFields is returned when posteId, tecnicoId or
	// estado is missing from a create request.
	MsgInspectionRequiredFields = "posteId, tecnicoId y estado son requeridos"

	// MsgInvalidInspection is returned when an inspection carries an
	// unknown enum value or out-of-range measurements.
	MsgInvalidInspection = "Datos de inspección inválidos"

	MsgInspectionNotFound     = "Inspección no encontrada"
	MsgCreateInspectionFailed = "Error al crear inspección"
	MsgUpdateInspectionFailed = "Error al actualizar inspección"
	MsgGetInspectionFailed    = "Error al obtener inspección"
	MsgListInspectionsFailed  = "Error al obtener inspecciones"
	MsgInvalidInspectionID    = "ID de inspección inválido"
	MsgInvalidTechnicianID    = "ID de técnico inválido"
	MsgInvalidSupervisorID    = "ID de supervisor inválido"
)

// Bulk reconciliation.
const (
	// MsgSyncExpectedArray is returned when the bulk body is not JSON or its
	// "inspecciones" field is not an array.
	MsgSyncExpectedArray = "Se esperaba un array de inspecciones"

	// MsgSyncItemFailed is the per-item error of a rejected element.
	MsgSyncItemFailed = "Error al sincronizar"

	// MsgSyncFailed is returned when the whole reconciliation call fails.
	MsgSyncFailed = "Error en sincronización"

	// MsgSyncInProgress is returned by the local client when a pass is
	// already running.
	MsgSyncInProgress = "Sincronización en curso"
	MsgOffline        = "Sin conexión con el servidor"
	MsgPhotoRequired  = "Se requiere la foto"
)

// Reference data.
const (
	MsgListColorsFailed   = "Error al obtener colores"
	MsgColorNameRequired  = "El nombre es requerido"
	MsgColorAlreadyExists = "El color ya existe"
	MsgCreateColorFailed  = "Error al crear color"

	MsgCompanyIDRequired  = "Se requiere companyId"
	MsgListPostsFailed    = "Error obteniendo postes"
	MsgGetPostFailed      = "Error obteniendo poste"
	MsgPostNotFound       = "Poste no encontrado"
	MsgPostRequiredFields = "Faltan campos requeridos"
	MsgPostCodeExists     = "El código del poste ya existe"
	MsgCreatePostFailed   = "Error creando poste"
	MsgInvalidPostID      = "ID de poste inválido"
)

// Transport.
const (
	MsgInvalidJSON             = "JSON inválido"
	MsgUnauthorized            = "No autorizado"
	MsgTokenIsExpiredOrInvalid = "Token expirado o inválido"
	MsgForbidden               = "Acceso denegado"
	MsgIntegrityCheckFailed    = "Falló la verificación de integridad"
	MsgRouteNotFound           = "Ruta no encontrada"
	MsgInternalServerError     = "Error interno del servidor"
)
