package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pantry-service/internal/circuitbreaker"
	"github.com/guttosm/pantry-service/internal/domain/model"
)

// PackagesRepositoryWithCircuitBreaker wraps a package store with circuit breaker protection.
type PackagesRepositoryWithCircuitBreaker struct {
	repo           PackageRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackagesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPackagesRepositoryWithCircuitBreaker(repo PackageRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PackagesRepositoryWithCircuitBreaker {
	return &PackagesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns visible packages with circuit breaker protection.
func (r *PackagesRepositoryWithCircuitBreaker) List(ctx context.Context, scope model.OwnerScope) ([]model.Package, error) {
	var result []model.Package
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, scope)
		return cbErr
	})
	return result, err
}

// Get returns one package with circuit breaker protection.
func (r *PackagesRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Package, error) {
	var result *model.Package
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Insert stores packages with circuit breaker protection.
func (r *PackagesRepositoryWithCircuitBreaker) Insert(ctx context.Context, pkgs []model.Package) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, pkgs)
	})
}

// ApplyDiff applies a diff with circuit breaker protection.
func (r *PackagesRepositoryWithCircuitBreaker) ApplyDiff(ctx context.Context, diff model.Diff) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.ApplyDiff(ctx, diff)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackagesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LocationsRepositoryWithCircuitBreaker wraps a location store with circuit breaker protection.
type LocationsRepositoryWithCircuitBreaker struct {
	repo           LocationRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLocationsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLocationsRepositoryWithCircuitBreaker(repo LocationRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LocationsRepositoryWithCircuitBreaker {
	return &LocationsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns visible locations with circuit breaker protection.
func (r *LocationsRepositoryWithCircuitBreaker) List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error) {
	var result []model.Location
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, scope)
		return cbErr
	})
	return result, err
}

// Get returns one location with circuit breaker protection.
func (r *LocationsRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Location, error) {
	var result *model.Location
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Create stores a location with circuit breaker protection.
func (r *LocationsRepositoryWithCircuitBreaker) Create(ctx context.Context, loc *model.Location) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, loc)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LocationsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. An open circuit drops the entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
