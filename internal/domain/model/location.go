package model

import "time"

// StorageKind classifies a storage location.
type StorageKind string

const (
	StorageFridge  StorageKind = "fridge"
	StorageFreezer StorageKind = "freezer"
	StoragePantry  StorageKind = "pantry"
)

// Valid reports whether k is a known storage kind.
func (k StorageKind) Valid() bool {
	switch k {
	case StorageFridge, StorageFreezer, StoragePantry:
		return true
	}
	return false
}

// Location is one Fridge, Freezer or Pantry instance.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" example:"Kitchen fridge"`
	Kind        StorageKind `json:"kind" swaggertype:"string" example:"fridge"`
	OwnerID     string      `json:"owner_id"`
	HouseholdID string      `json:"household_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// VisibleTo reports whether the location can be used by the scope.
func (l Location) VisibleTo(scope OwnerScope) bool {
	if l.OwnerID == scope.UserID {
		return true
	}
	return scope.HouseholdID != "" && l.HouseholdID == scope.HouseholdID
}
