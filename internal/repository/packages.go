package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageDocument is the stored form of a package. Quantities are Decimal128 so that
// the store never rounds what the engine computed.
type PackageDocument struct {
	ID               string               `bson:"_id"`
	OwnerID          string               `bson:"owner_id"`
	HouseholdID      string               `bson:"household_id,omitempty"`
	ItemName         string               `bson:"item_name"`
	NameKey          string               `bson:"name_key"`
	OriginalQuantity primitive.Decimal128 `bson:"original_quantity"`
	TotalQuantity    primitive.Decimal128 `bson:"total_quantity"`
	Unit             string               `bson:"unit"`
	ExpiryDate       *time.Time           `bson:"expiry_date,omitempty"`
	LocationID       string               `bson:"location_id"`
	IsPrivate        bool                 `bson:"is_private"`
	ServingMacros    *model.Macros        `bson:"serving_macros,omitempty"`
	ServingSize      *model.ServingSize   `bson:"serving_size,omitempty"`
	Version          int64                `bson:"version"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(quantity.Normalize(d).String())
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func newPackageDocument(p model.Package) (*PackageDocument, error) {
	original, err := toDecimal128(p.OriginalQuantity)
	if err != nil {
		return nil, fmt.Errorf("original quantity: %w", err)
	}
	total, err := toDecimal128(p.TotalQuantity)
	if err != nil {
		return nil, fmt.Errorf("total quantity: %w", err)
	}
	return &PackageDocument{
		ID:               p.ID,
		OwnerID:          p.OwnerID,
		HouseholdID:      p.HouseholdID,
		ItemName:         p.ItemName,
		NameKey:          p.NameKey(),
		OriginalQuantity: original,
		TotalQuantity:    total,
		Unit:             string(p.Unit),
		ExpiryDate:       p.ExpiryDate,
		LocationID:       p.LocationID,
		IsPrivate:        p.IsPrivate,
		ServingMacros:    p.ServingMacros,
		ServingSize:      p.ServingSize,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

// ToModel converts the document into a domain package.
func (d *PackageDocument) ToModel() (model.Package, error) {
	original, err := fromDecimal128(d.OriginalQuantity)
	if err != nil {
		return model.Package{}, fmt.Errorf("package %s original quantity: %w", d.ID, err)
	}
	total, err := fromDecimal128(d.TotalQuantity)
	if err != nil {
		return model.Package{}, fmt.Errorf("package %s total quantity: %w", d.ID, err)
	}
	return model.Package{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		HouseholdID:      d.HouseholdID,
		ItemName:         d.ItemName,
		OriginalQuantity: original,
		TotalQuantity:    total,
		Unit:             quantity.Unit(d.Unit),
		ExpiryDate:       d.ExpiryDate,
		LocationID:       d.LocationID,
		IsPrivate:        d.IsPrivate,
		ServingMacros:    d.ServingMacros,
		ServingSize:      d.ServingSize,
		Version:          d.Version,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

// scopeFilter selects the caller's own packages and the household's shared ones.
func scopeFilter(scope model.OwnerScope) bson.M {
	if scope.HouseholdID == "" {
		return bson.M{"owner_id": scope.UserID}
	}
	return bson.M{"$or": bson.A{
		bson.M{"owner_id": scope.UserID},
		bson.M{"household_id": scope.HouseholdID, "is_private": false},
	}}
}

// PackagesRepository stores packages in MongoDB.
type PackagesRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

// NewPackagesRepository creates a new packages repository.
func NewPackagesRepository(db *MongoDB) *PackagesRepository {
	return &PackagesRepository{
		client:     db.Client,
		collection: db.Packages,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns every package visible to the scope.
func (r *PackagesRepository) List(ctx context.Context, scope model.OwnerScope) ([]model.Package, error) {
	cursor, err := r.collection.Find(ctx, scopeFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PackageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}

	pkgs := make([]model.Package, 0, len(docs))
	for i := range docs {
		p, err := docs[i].ToModel()
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

// Get returns one package by id.
func (r *PackagesRepository) Get(ctx context.Context, id string) (*model.Package, error) {
	var doc PackageDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("package %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find package %s: %w", id, err)
	}
	p, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert stores new packages.
func (r *PackagesRepository) Insert(ctx context.Context, pkgs []model.Package) error {
	if len(pkgs) == 0 {
		return nil
	}
	docs, err := r.insertDocs(pkgs)
	if err != nil {
		return err
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert packages: %w", ErrDuplicateID)
		}
		return fmt.Errorf("insert packages: %w", err)
	}
	return nil
}

// ApplyDiff applies the diff in one transaction. An update or removal whose package
// is gone or has moved past the expected version aborts everything with ErrConcurrencyConflict.
func (r *PackagesRepository) ApplyDiff(ctx context.Context, diff model.Diff) error {
	if diff.IsEmpty() {
		return nil
	}
	if id, ok := diff.RepeatedTarget(); ok {
		return fmt.Errorf("package %s named twice in diff: %w", id, ErrDuplicateID)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.applyInSession(sc, diff)
	})
	if err != nil {
		if errors.Is(err, ErrConcurrencyConflict) {
			return err
		}
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("apply diff: %w", ErrDuplicateID)
		}
		return fmt.Errorf("apply diff: %w", err)
	}
	return nil
}

func (r *PackagesRepository) applyInSession(sc mongo.SessionContext, diff model.Diff) error {
	now := r.now()

	for _, u := range diff.Updates {
		total, err := toDecimal128(u.TotalQuantity)
		if err != nil {
			return fmt.Errorf("update %s: %w", u.ID, err)
		}
		res, err := r.collection.UpdateOne(sc,
			bson.M{"_id": u.ID, "version": u.ExpectedVersion},
			bson.M{
				"$set": bson.M{
					"total_quantity": total,
					"location_id":    u.LocationID,
					"is_private":     u.IsPrivate,
					"owner_id":       u.OwnerID,
					"updated_at":     now,
				},
				"$inc": bson.M{"version": 1},
			},
		)
		if err != nil {
			return fmt.Errorf("update %s: %w", u.ID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("package %s at version %d: %w", u.ID, u.ExpectedVersion, ErrConcurrencyConflict)
		}
	}

	for _, rm := range diff.Removals {
		res, err := r.collection.DeleteOne(sc, bson.M{"_id": rm.ID, "version": rm.ExpectedVersion})
		if err != nil {
			return fmt.Errorf("remove %s: %w", rm.ID, err)
		}
		if res.DeletedCount == 0 {
			return fmt.Errorf("package %s at version %d: %w", rm.ID, rm.ExpectedVersion, ErrConcurrencyConflict)
		}
	}

	if len(diff.Insertions) > 0 {
		docs, err := r.insertDocs(diff.Insertions)
		if err != nil {
			return err
		}
		if _, err := r.collection.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
	}
	return nil
}

func (r *PackagesRepository) insertDocs(pkgs []model.Package) ([]interface{}, error) {
	now := r.now()
	docs := make([]interface{}, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Version == 0 {
			p.Version = 1
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		doc, err := newPackageDocument(p)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", p.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
