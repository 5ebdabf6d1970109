package command

import (
	"context"
	"fmt"

	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

// DeleteRatingRequest is the request for the DeleteRating command.
type DeleteRatingRequest struct {
	CourseID int64
	UserID   int64
	CallerID int64
}

// DeleteRating soft-deletes the owner's active rating for a course.
type DeleteRating struct {
	Courses datasources.CourseFetcher
	Ratings datasources.RatingDeleter
}

// NewDeleteRating creates a properly initialized DeleteRating command.
func NewDeleteRating(
	courses datasources.CourseFetcher,
	ratings datasources.RatingDeleter,
) *DeleteRating {
	return &DeleteRating{
		Courses: courses,
		Ratings: ratings,
	}
}

func (c *DeleteRating) Execute(ctx context.Context, req DeleteRatingRequest) (Empty, error) {
	if req.CallerID != req.UserID {
		return Empty{}, domain.ForbiddenError{
			Message: "ratings may only be deleted by their owner",
		}
	}

	if _, err := c.Courses.FetchCourseByID(ctx, req.CourseID); err != nil {
		return Empty{}, fmt.Errorf("fetching course: %w", err)
	}

	if err := c.Ratings.DeleteRating(ctx, req.CourseID, req.UserID); err != nil {
		return Empty{}, fmt.Errorf("deleting rating: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "soft-deleted rating",
		"course_id", req.CourseID, "user_id", req.UserID)

	return Empty{}, nil
}
