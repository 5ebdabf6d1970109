package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/datasources/mocks"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID int64) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func TestRatingsList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		courseID   string
		fetchErr   error
		ratings    []domain.Rating
		listErr    error
		wantStatus int
		wantBody   string
		skipFetch  bool
		skipList   bool
	}{
		{
			name:     "success",
			courseID: "7",
			ratings: []domain.Rating{
				{ID: 1, CourseID: 7, UserID: 42, Score: 5, CreatedAt: testTime, UpdatedAt: testTime},
				{ID: 2, CourseID: 7, UserID: 43, Score: 3, CreatedAt: testTime, UpdatedAt: testTime},
			},
			wantStatus: http.StatusOK,
			wantBody: `[
				{"id":1,"course_id":7,"user_id":42,"rating":5,"created_at":"2026-03-14T12:00:00Z","updated_at":"2026-03-14T12:00:00Z"},
				{"id":2,"course_id":7,"user_id":43,"rating":3,"created_at":"2026-03-14T12:00:00Z","updated_at":"2026-03-14T12:00:00Z"}
			]`,
		},
		{
			name:       "no ratings yet",
			courseID:   "7",
			ratings:    []domain.Rating{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "course not found",
			courseID:   "99",
			fetchErr:   domain.NotFoundError{Resource: "course", ID: "99"},
			wantStatus: http.StatusNotFound,
			skipList:   true,
		},
		{
			name:       "invalid course id",
			courseID:   "abc",
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipList:   true,
		},
		{
			name:       "list error",
			courseID:   "7",
			listErr:    errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			courses := mocks.NewMockCourseFetcher(t)
			ratings := mocks.NewMockRatingReader(t)

			if !tc.skipFetch {
				courses.EXPECT().
					FetchCourseByID(mock.Anything, mock.AnythingOfType("int64")).
					Return(domain.Course{ID: 7}, tc.fetchErr)
			}
			if !tc.skipList && tc.fetchErr == nil {
				ratings.EXPECT().
					ListRatings(mock.Anything, int64(7)).
					Return(tc.ratings, tc.listErr)
			}

			ctrl := RatingsList{Courses: courses, Ratings: ratings}

			req := httptest.NewRequest(http.MethodGet, "/courses/"+tc.courseID+"/ratings", nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"course_id": tc.courseID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
