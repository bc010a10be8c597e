package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/repository"
)

// LocationService manages fridges, freezers and pantries.
type LocationService interface {
	List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error)
	Create(ctx context.Context, scope model.OwnerScope, name string, kind model.StorageKind, shared bool) (*model.Location, error)
}

// LocationServiceImpl implements LocationService.
type LocationServiceImpl struct {
	repo  repository.LocationRepositoryInterface
	newID func() string
}

// NewLocationService creates a new location service.
func NewLocationService(repo repository.LocationRepositoryInterface) *LocationServiceImpl {
	return &LocationServiceImpl{repo: repo, newID: uuid.NewString}
}

// List returns the caller's locations and those shared with their household.
func (s *LocationServiceImpl) List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error) {
	locs, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

// Create adds a location owned by the caller. Shared locations are visible to the household.
func (s *LocationServiceImpl) Create(ctx context.Context, scope model.OwnerScope, name string, kind model.StorageKind, shared bool) (*model.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: "location name is required"}
	}
	if !kind.Valid() {
		return nil, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: fmt.Sprintf("unknown storage kind %q", kind)}
	}

	loc := &model.Location{
		ID:      s.newID(),
		Name:    name,
		Kind:    kind,
		OwnerID: scope.UserID,
	}
	if shared {
		loc.HouseholdID = scope.HouseholdID
	}
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}
