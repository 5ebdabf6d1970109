package command

import (
	"context"
	"testing"

	"github.com/platziflix/catalog/internal/datasources/mocks"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteRating_Execute(t *testing.T) {
	cases := []struct {
		name       string
		req        DeleteRatingRequest
		courseErr  error
		deleteErr  error
		wantErrAs  interface{}
		skipCourse bool
		skipDelete bool
	}{
		{
			name: "owner_deletes_own_rating",
			req:  DeleteRatingRequest{CourseID: 1, UserID: 42, CallerID: 42},
		},
		{
			name:       "foreign_caller_forbidden",
			req:        DeleteRatingRequest{CourseID: 1, UserID: 42, CallerID: 7},
			wantErrAs:  &domain.ForbiddenError{},
			skipCourse: true,
			skipDelete: true,
		},
		{
			name:       "course_not_found",
			req:        DeleteRatingRequest{CourseID: 999, UserID: 42, CallerID: 42},
			courseErr:  domain.NotFoundError{Resource: "course", ID: "999"},
			wantErrAs:  &domain.NotFoundError{},
			skipDelete: true,
		},
		{
			name:      "no_active_rating",
			req:       DeleteRatingRequest{CourseID: 1, UserID: 42, CallerID: 42},
			deleteErr: domain.NotFoundError{Resource: "rating", ID: "course 1, user 42"},
			wantErrAs: &domain.NotFoundError{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			courses := mocks.NewMockCourseFetcher(t)
			ratings := mocks.NewMockRatingDeleter(t)

			if !tc.skipCourse {
				courses.EXPECT().
					FetchCourseByID(mock.Anything, tc.req.CourseID).
					Return(domain.Course{ID: tc.req.CourseID}, tc.courseErr)
			}
			if !tc.skipDelete {
				ratings.EXPECT().
					DeleteRating(mock.Anything, tc.req.CourseID, tc.req.UserID).
					Return(tc.deleteErr)
			}

			cmd := NewDeleteRating(courses, ratings)
			_, err := cmd.Execute(context.Background(), tc.req)

			if tc.wantErrAs != nil {
				require.Error(t, err)
				assert.ErrorAs(t, err, tc.wantErrAs)
				return
			}

			require.NoError(t, err)
		})
	}
}
