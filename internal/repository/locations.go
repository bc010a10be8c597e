package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocationDocument is the stored form of a storage location.
type LocationDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Kind        string    `bson:"kind"`
	OwnerID     string    `bson:"owner_id"`
	HouseholdID string    `bson:"household_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d LocationDocument) toModel() model.Location {
	return model.Location{
		ID:          d.ID,
		Name:        d.Name,
		Kind:        model.StorageKind(d.Kind),
		OwnerID:     d.OwnerID,
		HouseholdID: d.HouseholdID,
		CreatedAt:   d.CreatedAt,
	}
}

// LocationsRepository stores fridges, freezers and pantries in MongoDB.
type LocationsRepository struct {
	collection *mongo.Collection
}

// NewLocationsRepository creates a new locations repository.
func NewLocationsRepository(db *MongoDB) *LocationsRepository {
	return &LocationsRepository{collection: db.Locations}
}

// List returns the caller's locations and those of their household, by name.
func (r *LocationsRepository) List(ctx context.Context, scope model.OwnerScope) ([]model.Location, error) {
	filter := bson.M{"owner_id": scope.UserID}
	if scope.HouseholdID != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"owner_id": scope.UserID},
			bson.M{"household_id": scope.HouseholdID},
		}}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []LocationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	out := make([]model.Location, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

// Get returns one location by id.
func (r *LocationsRepository) Get(ctx context.Context, id string) (*model.Location, error) {
	var doc LocationDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("location %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find location %s: %w", id, err)
	}
	loc := doc.toModel()
	return &loc, nil
}

// Create stores a new location.
func (r *LocationsRepository) Create(ctx context.Context, loc *model.Location) error {
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, LocationDocument{
		ID:          loc.ID,
		Name:        loc.Name,
		Kind:        string(loc.Kind),
		OwnerID:     loc.OwnerID,
		HouseholdID: loc.HouseholdID,
		CreatedAt:   loc.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("location %s: %w", loc.ID, ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}
