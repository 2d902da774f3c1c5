package mongo

import (
	"context"
	"errors"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const libraryCollectionName = "library_exercises"

// mongoLibraryRepository implements repository.LibraryRepository.
// The catalog is seeded out of band; this layer only reads it.
type mongoLibraryRepository struct {
	collection *mongo.Collection
}

// NewMongoLibraryRepository creates a new exercise library repository.
func NewMongoLibraryRepository(db *mongo.Database) repository.LibraryRepository {
	return &mongoLibraryRepository{
		collection: db.Collection(libraryCollectionName),
	}
}

// GetAll retrieves the whole catalog, sorted by name.
func (r *mongoLibraryRepository) GetAll(ctx context.Context) ([]domain.LibraryExercise, error) {
	var entries []domain.LibraryExercise
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID retrieves a single catalog entry.
func (r *mongoLibraryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.LibraryExercise, error) {
	var entry domain.LibraryExercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}
