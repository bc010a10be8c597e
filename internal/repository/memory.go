package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// MemoryPackagesRepository keeps packages in memory. It is used when MongoDB is disabled
// and in tests; each instance owns its own state.
type MemoryPackagesRepository struct {
	mu       sync.RWMutex
	packages map[string]model.Package
	now      func() time.Time
}

// NewMemoryPackagesRepository creates an empty in-memory package store.
func NewMemoryPackagesRepository() *MemoryPackagesRepository {
	return &MemoryPackagesRepository{
		packages: make(map[string]model.Package),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// List returns every package visible to the scope, ordered by id.
func (r *MemoryPackagesRepository) List(ctx context.Context, scope model.OwnerScope) ([]model.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Package, 0, len(r.packages))
	for _, p := range r.packages {
		if p.VisibleTo(scope) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns one package by id.
func (r *MemoryPackagesRepository) Get(ctx context.Context, id string) (*model.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packages[id]
	if !ok {
		return nil, fmt.Errorf("package %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

// Insert stores new packages.
func (r *MemoryPackagesRepository) Insert(ctx context.Context, pkgs []model.Package) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkNew(pkgs); err != nil {
		return err
	}
	r.insertLocked(pkgs)
	return nil
}

// ApplyDiff verifies every expected version before changing anything.
func (r *MemoryPackagesRepository) ApplyDiff(ctx context.Context, diff model.Diff) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id, ok := diff.RepeatedTarget(); ok {
		return fmt.Errorf("package %s named twice in diff: %w", id, ErrDuplicateID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range diff.Updates {
		if err := r.checkVersion(u.ID, u.ExpectedVersion); err != nil {
			return err
		}
	}
	for _, rm := range diff.Removals {
		if err := r.checkVersion(rm.ID, rm.ExpectedVersion); err != nil {
			return err
		}
	}
	if err := r.checkNew(diff.Insertions); err != nil {
		return err
	}

	now := r.now()
	for _, u := range diff.Updates {
		p := r.packages[u.ID]
		p.TotalQuantity = u.TotalQuantity
		p.LocationID = u.LocationID
		p.IsPrivate = u.IsPrivate
		p.OwnerID = u.OwnerID
		p.Version++
		p.UpdatedAt = now
		r.packages[u.ID] = p
	}
	for _, rm := range diff.Removals {
		delete(r.packages, rm.ID)
	}
	r.insertLocked(diff.Insertions)
	return nil
}

func (r *MemoryPackagesRepository) checkVersion(id string, expected int64) error {
	p, ok := r.packages[id]
	if !ok || p.Version != expected {
		return fmt.Errorf("package %s at version %d: %w", id, expected, ErrConcurrencyConflict)
	}
	return nil
}

func (r *MemoryPackagesRepository) checkNew(pkgs []model.Package) error {
	seen := make(map[string]struct{}, len(pkgs))
	for _, p := range pkgs {
		_, exists := r.packages[p.ID]
		_, repeated := seen[p.ID]
		if exists || repeated {
			return fmt.Errorf("package %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func (r *MemoryPackagesRepository) insertLocked(pkgs []model.Package) {
	now := r.now()
	for _, p := range pkgs {
		if p.Version == 0 {
			p.Version = 1
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		r.packages[p.ID] = p
	}
}

// MemoryLocationsRepository keeps storage locations in memory.
type MemoryLocationsRepository struct {
	mu        sync.RWMutex
	locations map[string]model.Location
}

// NewMemoryLocationsRepository creates an empty in-memory location store.
func NewMemoryLocationsRepository() *MemoryLocationsRepository {
	return &MemoryLocationsRepository{locations: make(map[string]model.Location)}
}

// List returns the caller's locations and those of their household, by name.
func (r *MemoryLocationsRepository) List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Location
	for _, l := range r.locations {
		if l.VisibleTo(scope) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get returns one location by id.
func (r *MemoryLocationsRepository) Get(ctx context.Context, id string) (*model.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %s: %w", id, ErrNotFound)
	}
	return &l, nil
}

// Create stores a new location.
func (r *MemoryLocationsRepository) Create(ctx context.Context, loc *model.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[loc.ID]; ok {
		return fmt.Errorf("location %s: %w", loc.ID, ErrDuplicateID)
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	r.locations[loc.ID] = *loc
	return nil
}
