// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the synchronization lifecycle state of a locally stored
// record. It governs whether the record is a candidate for the next sync
// pass.
type SyncStatus string

const (
	// SyncStatusPending marks a record that was created or edited locally and
	// has not been acknowledged by the server yet.
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusSynced marks a record accepted by the server. A synced record
	// always carries a server-assigned remote identifier.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusConflict is a reachable status value that no operation writes
	// today. The server never rejects a record for content or version
	// reasons, so nothing transitions into it.
	SyncStatusConflict SyncStatus = "conflict"
)

// IsValid reports whether s is one of the declared statuses.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSynced, SyncStatusConflict:
		return true
	}
	return false
}

// CanTransition reports whether a record may move from one status to another.
//
// Allowed transitions:
//   - pending → synced: the server accepted the record;
//   - pending → pending: the record was edited again before it was sent;
//   - synced  → pending: a synced record was edited locally and must be
//     resubmitted;
//   - synced  → synced: a bulk refresh replaced the record with the server view.
//
// Transitions into or out of conflict are not exercised and are rejected.
func CanTransition(from, to SyncStatus) bool {
	switch from {
	case SyncStatusPending:
		return to == SyncStatusPending || to == SyncStatusSynced
	case SyncStatusSynced:
		return to == SyncStatusPending || to == SyncStatusSynced
	}
	return false
}
