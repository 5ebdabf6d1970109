package command

import (
	"context"
	"testing"
	"time"

	"github.com/platziflix/catalog/internal/datasources/mocks"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRating_Execute(t *testing.T) {
	testTime := time.Date(2025, 10, 14, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		req        SubmitRatingRequest
		courseErr  error
		upserted   domain.Rating
		upsertErr  error
		wantErrAs  interface{}
		skipCourse bool
		skipUpsert bool
	}{
		{
			name: "create_new_rating",
			req:  SubmitRatingRequest{CourseID: 1, UserID: 42, Score: 5},
			upserted: domain.Rating{
				ID: 1, CourseID: 1, UserID: 42, Score: 5,
				CreatedAt: testTime, UpdatedAt: testTime,
			},
		},
		{
			name: "mutate_existing_rating",
			req:  SubmitRatingRequest{CourseID: 1, UserID: 42, Score: 3},
			upserted: domain.Rating{
				ID: 1, CourseID: 1, UserID: 42, Score: 3,
				CreatedAt: testTime, UpdatedAt: testTime.Add(time.Hour),
			},
		},
		{
			name:       "score_too_high",
			req:        SubmitRatingRequest{CourseID: 1, UserID: 42, Score: 6},
			wantErrAs:  &domain.ValidationError{},
			skipCourse: true,
			skipUpsert: true,
		},
		{
			name:       "score_too_low",
			req:        SubmitRatingRequest{CourseID: 1, UserID: 42, Score: 0},
			wantErrAs:  &domain.ValidationError{},
			skipCourse: true,
			skipUpsert: true,
		},
		{
			name:       "course_not_found",
			req:        SubmitRatingRequest{CourseID: 999, UserID: 42, Score: 5},
			courseErr:  domain.NotFoundError{Resource: "course", ID: "999"},
			wantErrAs:  &domain.NotFoundError{},
			skipUpsert: true,
		},
		{
			name:      "concurrent_insert_conflict",
			req:       SubmitRatingRequest{CourseID: 1, UserID: 42, Score: 5},
			upsertErr: domain.ConflictError{Message: "rating was submitted concurrently, retry the request"},
			wantErrAs: &domain.ConflictError{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			courses := mocks.NewMockCourseFetcher(t)
			ratings := mocks.NewMockRatingUpserter(t)

			if !tc.skipCourse {
				courses.EXPECT().
					FetchCourseByID(mock.Anything, tc.req.CourseID).
					Return(domain.Course{ID: tc.req.CourseID}, tc.courseErr)
			}
			if !tc.skipUpsert {
				ratings.EXPECT().
					UpsertRating(mock.Anything, tc.req.CourseID, tc.req.UserID, tc.req.Score).
					Return(tc.upserted, tc.upsertErr)
			}

			cmd := NewSubmitRating(courses, ratings)
			got, err := cmd.Execute(context.Background(), tc.req)

			if tc.wantErrAs != nil {
				require.Error(t, err)
				assert.ErrorAs(t, err, tc.wantErrAs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.upserted, got)
		})
	}
}
