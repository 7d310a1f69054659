package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/repository"
)

const photoUploadCollectionName = "photo_uploads"

// mongoPhotoUploadRepository implements repository.PhotoUploadRepository
type mongoPhotoUploadRepository struct {
	collection *mongo.Collection
}

// NewMongoPhotoUploadRepository creates a new progress photo metadata
// repository backed by MongoDB.
func NewMongoPhotoUploadRepository(db *mongo.Database) repository.PhotoUploadRepository {
	return &mongoPhotoUploadRepository{
		collection: db.Collection(photoUploadCollectionName),
	}
}

// Create inserts new photo upload metadata into the database.
func (r *mongoPhotoUploadRepository) Create(ctx context.Context, upload *domain.PhotoUpload) (primitive.ObjectID, error) {
	if upload.UserID == primitive.NilObjectID || upload.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("photo upload requires userId and s3ObjectKey")
	}

	upload.ID = primitive.NewObjectID()
	upload.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, upload)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves photo upload metadata by its ID.
func (r *mongoPhotoUploadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PhotoUpload, error) {
	var upload domain.PhotoUpload
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&upload)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &upload, nil
}

// ListByUserID retrieves a user's photo uploads, newest first.
func (r *mongoPhotoUploadRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.PhotoUpload, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	uploads := []domain.PhotoUpload{}
	if err = cursor.All(ctx, &uploads); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return uploads, nil
}

// Delete removes photo metadata. The filter includes the userID so a user
// can only ever delete their own photos.
func (r *mongoPhotoUploadRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Not found OR owned by someone else; both map to not found.
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePhotoUploadIndexes creates necessary indexes for the photo uploads
// collection.
func EnsurePhotoUploadIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "uploadedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureUserIndexes.
	}
}
