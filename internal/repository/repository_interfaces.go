// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

var (
	// ErrConcurrencyConflict is returned when a diff was planned against packages that changed since.
	ErrConcurrencyConflict = errors.New("inventory changed concurrently")
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when inserting an id that already exists.
	ErrDuplicateID = errors.New("duplicate id")
)

// PackageRepositoryInterface defines the package store.
// ApplyDiff is all-or-nothing: every update and removal is conditional on its expected version.
type PackageRepositoryInterface interface {
	List(ctx context.Context, scope model.OwnerScope) ([]model.Package, error)
	Get(ctx context.Context, id string) (*model.Package, error)
	Insert(ctx context.Context, pkgs []model.Package) error
	ApplyDiff(ctx context.Context, diff model.Diff) error
}

// LocationRepositoryInterface defines the storage location store.
type LocationRepositoryInterface interface {
	List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error)
	Get(ctx context.Context, id string) (*model.Location, error)
	Create(ctx context.Context, loc *model.Location) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// IsStoreFailure reports whether err means the store itself misbehaved.
// Conflicts and missing documents are answers, not outages.
func IsStoreFailure(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrConcurrencyConflict) &&
		!errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrDuplicateID) &&
		!errors.Is(err, context.Canceled)
}
