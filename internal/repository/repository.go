package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) error
}

// ProgressRepository defines the interface for interacting with progress
// entries. Listings are always most-recent-first: the recommendation
// engine reads only the head of the sequence.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressEntry, error)
}

// PhotoUploadRepository defines the interface for progress photo metadata.
// The images themselves live in object storage.
type PhotoUploadRepository interface {
	Create(ctx context.Context, upload *domain.PhotoUpload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PhotoUpload, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.PhotoUpload, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
