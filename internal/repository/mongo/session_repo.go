// internal/repository/mongo/session_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new TrainingSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new training session.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	if session.ProgramID == primitive.NilObjectID || session.Name == "" {
		return primitive.NilObjectID, errors.New("session requires programId and name")
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// GetByID retrieves a session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	var session domain.TrainingSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByProgramID retrieves all sessions of a program, in schedule order.
func (r *mongoSessionRepository) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	filter := bson.M{"programId": programID}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "weekNumber", Value: 1},
		{Key: "dayNumber", Value: 1},
		{Key: "order", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update persists the mutable fields of a session. ProgramID never changes.
func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.TrainingSession) error {
	if session.ID == primitive.NilObjectID {
		return errors.New("session ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"name":       session.Name,
			"weekNumber": session.WeekNumber,
			"dayNumber":  session.DayNumber,
			"type":       session.Type,
			"targetRpe":  session.TargetRPE,
			"duration":   session.Duration,
			"order":      session.Order,
			"notes":      session.Notes,
			"updatedAt":  time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a session. Ownership is verified by the service through
// the parent program before this is called.
func (r *mongoSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByProgramID removes every session of a program. Used when the
// program itself is deleted.
func (r *mongoSessionRepository) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	return err
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys: bson.D{
				{Key: "programId", Value: 1},
				{Key: "weekNumber", Value: 1},
				{Key: "dayNumber", Value: 1},
			},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
