package datasources

import (
	"context"

	"github.com/platziflix/catalog/internal/domain"
)

// RatingRepository bundles access to course ratings.
type RatingRepository interface {
	RatingUpserter
	RatingUpdater
	RatingDeleter
	RatingReader
}

type RatingUpserter interface {
	// UpsertRating creates the caller's rating for a course, or mutates the
	// existing active one in place. A concurrent duplicate insert surfaces as
	// a ConflictError.
	UpsertRating(ctx context.Context, courseID, userID int64, score int) (domain.Rating, error)
}

type RatingUpdater interface {
	// UpdateRating mutates an existing active rating. It returns a
	// NotFoundError when the user has no active rating for the course.
	UpdateRating(ctx context.Context, courseID, userID int64, score int) (domain.Rating, error)
}

type RatingDeleter interface {
	// DeleteRating soft-deletes the user's active rating. It returns a
	// NotFoundError when there is none.
	DeleteRating(ctx context.Context, courseID, userID int64) error
}

type RatingReader interface {
	// GetRating returns nil with no error when the user has no active rating
	// for the course. Absence is an expected state, not a failure.
	GetRating(ctx context.Context, courseID, userID int64) (*domain.Rating, error)

	// ListRatings returns the course's active ratings in insertion order.
	ListRatings(ctx context.Context, courseID int64) ([]domain.Rating, error)

	// GetRatingStats aggregates the course's active ratings.
	GetRatingStats(ctx context.Context, courseID int64) (domain.RatingStats, error)
}
