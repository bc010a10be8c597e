// Package dto defines Data Transfer Objects for authentication.
package dto

import "github.com/guttosm/pantry-service/internal/domain/model"

// Claims is the identity carried by an access token.
type Claims struct {
	UserID      string `json:"user_id"`
	HouseholdID string `json:"household_id,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Scope returns the inventory visibility of the token holder.
func (c Claims) Scope() model.OwnerScope {
	return model.OwnerScope{UserID: c.UserID, HouseholdID: c.HouseholdID}
}
