package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/engine"
	"github.com/zoro-coderr/aihealthcoach/internal/repository"
	"github.com/zoro-coderr/aihealthcoach/internal/storage"
)

// --- Error Definitions ---
var (
	ErrUserNotFound             = errors.New("user not found")
	ErrProfileNotSet            = errors.New("profile has not been set up yet")
	ErrPhotoNotFound            = errors.New("progress photo not found")
	ErrUploadURLError           = errors.New("failed to generate upload URL")
	ErrDownloadURLError         = errors.New("failed to generate download URL")
	ErrUploadConfirmationFailed = errors.New("failed to confirm upload")
)

// PhotoUploadURLResponse carries the presigned URL and the object key the
// client must report back when confirming the upload.
type PhotoUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// PhotoDetails combines photo metadata with a temporary viewing URL.
type PhotoDetails struct {
	domain.PhotoUpload
	DownloadURL string `json:"downloadUrl"`
}

// ProfileService manages the user's profile, progress log and progress
// photos.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error)

	LogProgress(ctx context.Context, userID primitive.ObjectID, entry *domain.ProgressEntry) (*domain.ProgressEntry, error)
	GetProgress(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressEntry, error)

	// Progress photo upload flow: request a presigned PUT URL, upload
	// directly to storage, then confirm to persist the metadata.
	RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUploadURLResponse, error)
	ConfirmPhotoUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string, takenAt *time.Time) (*domain.PhotoUpload, error)
	ListPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoDetails, error)
	DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	photoRepo    repository.PhotoUploadRepository
	fileStorage  storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	photoRepo repository.PhotoUploadRepository,
	fileStorage storage.FileStorage,
) ProfileService {
	return &profileService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		photoRepo:    photoRepo,
		fileStorage:  fileStorage,
	}
}

// === Profile ===

// GetProfile returns the user's profile, or ErrProfileNotSet when the
// account exists but has never been filled in.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, ErrProfileNotSet
	}
	return user.Profile, nil
}

// UpdateProfile replaces the user's profile. Range validation happened at
// the API layer; here we only require the user to exist.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}

	err := s.userRepo.UpdateProfile(ctx, userID, profile)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

// === Progress ===

// LogProgress records one day's outcome. When the entry carries no target
// and the user has a profile, the target is filled in from the nutrition
// calculator so the calorie-control rule has something to compare against.
func (s *profileService) LogProgress(ctx context.Context, userID primitive.ObjectID, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if entry == nil {
		return nil, errors.New("progress entry is required")
	}
	entry.UserID = userID

	if entry.TargetCalories == 0 {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if user.Profile != nil {
			targets := engine.ComputeTargets(user.Profile)
			entry.TargetCalories = float64(targets.DailyCalories)
		}
	}

	entryID, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

// GetProgress returns the user's progress entries, most recent first.
func (s *profileService) GetProgress(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressEntry, error) {
	return s.progressRepo.ListByUserID(ctx, userID, limit)
}

// === Progress photos ===

// RequestPhotoUploadURL generates a presigned URL for uploading a progress
// photo directly to object storage.
func (s *profileService) RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUploadURLResponse, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, errors.New("invalid or missing image content type")
	}

	uniqueID := uuid.NewString()
	fileExtension := ""
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("progress-photos", userID.Hex(), fmt.Sprintf("%s.%s", uniqueID, fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &PhotoUploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// ConfirmPhotoUpload persists photo metadata AFTER the client has uploaded
// the file to storage via the presigned URL.
func (s *profileService) ConfirmPhotoUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string, takenAt *time.Time) (*domain.PhotoUpload, error) {
	if userID == primitive.NilObjectID || objectKey == "" {
		return nil, errors.New("user ID and object key are required")
	}
	// Reject keys outside the user's own prefix; the key was issued by
	// RequestPhotoUploadURL and must come back unchanged.
	expectedPrefix := path.Join("progress-photos", userID.Hex()) + "/"
	if !strings.HasPrefix(objectKey, expectedPrefix) {
		return nil, errors.New("object key does not belong to this user")
	}

	upload := &domain.PhotoUpload{
		UserID:      userID,
		S3ObjectKey: objectKey,
		FileName:    fileName,
		ContentType: contentType,
		Size:        fileSize,
		TakenAt:     takenAt,
		// ID, UploadedAt set by repository
	}

	uploadID, err := s.photoRepo.Create(ctx, upload)
	if err != nil {
		return nil, ErrUploadConfirmationFailed
	}
	upload.ID = uploadID
	return upload, nil
}

// ListPhotos returns the user's progress photos with temporary download
// URLs, newest first.
func (s *profileService) ListPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoDetails, error) {
	uploads, err := s.photoRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]PhotoDetails, 0, len(uploads))
	for _, upload := range uploads {
		downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, upload.S3ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, ErrDownloadURLError
		}
		details = append(details, PhotoDetails{
			PhotoUpload: upload,
			DownloadURL: downloadURL,
		})
	}
	return details, nil
}

// DeletePhoto removes both the stored object and its metadata. Ownership
// is enforced by the repository filter.
func (s *profileService) DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.UserID != userID {
		return ErrPhotoNotFound // don't leak other users' photo IDs
	}

	if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil {
		return err
	}

	err = s.photoRepo.Delete(ctx, photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}
