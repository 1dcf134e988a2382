// Package store provides slot-based local persistence for the healthboard
// system. State is organized into named slots, each holding one
// JSON-serializable collection or record. Three backends implement the same
// contract: a JSON-file store (default), a local SQLite store, and an
// in-memory store for tests.
package store

import "errors"

// Sentinel errors returned by all Store implementations.
var (
	// ErrSlotNotFound is returned by Load when the slot has never been saved.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrInvalidSlot is returned when the slot name is empty or unsafe.
	ErrInvalidSlot = errors.New("invalid slot name")
)

// Well-known slot names. Each slot is saved independently; there is no
// cross-slot transaction.
const (
	SlotDiseases  = "national-diseases"
	SlotHospitals = "hospitals"
	SlotPatients  = "patients"
	SlotStaff     = "staff"
	SlotResources = "resources"
	SlotPrincipal = "current-session-principal"
)

// AllSlots returns every well-known slot name, in a stable order.
func AllSlots() []string {
	return []string{
		SlotDiseases,
		SlotHospitals,
		SlotPatients,
		SlotStaff,
		SlotResources,
		SlotPrincipal,
	}
}

// Store reads and writes JSON-serializable values keyed by slot name.
// Load decodes the slot into v (a pointer); it returns ErrSlotNotFound when
// the slot is absent. Save fully replaces the slot. Delete removes the slot
// and is a no-op when it does not exist.
type Store interface {
	Load(slot string, v any) error
	Save(slot string, v any) error
	Delete(slot string) error
}
