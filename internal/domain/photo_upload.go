package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoUpload stores metadata about a progress photo uploaded by a user.
// The actual image resides in S3; only the object key is kept here.
type PhotoUpload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"` // internal use only
	FileName    string             `bson:"fileName" json:"fileName"`
	ContentType string             `bson:"contentType" json:"contentType"` // e.g. "image/jpeg"
	Size        int64              `bson:"size" json:"size"`               // bytes
	TakenAt     *time.Time         `bson:"takenAt,omitempty" json:"takenAt,omitempty"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
