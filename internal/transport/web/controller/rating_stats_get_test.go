package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/datasources/mocks"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingStatsGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		courseID   string
		fetchErr   error
		stats      domain.RatingStats
		statsErr   error
		wantStatus int
		wantBody   string
		skipFetch  bool
		skipStats  bool
	}{
		{
			name:     "populated course",
			courseID: "7",
			stats: domain.NewRatingStats(map[int]int{
				3: 1,
				4: 2,
				5: 1,
			}),
			wantStatus: http.StatusOK,
			wantBody:   `{"average_rating":4,"total_ratings":4,"rating_distribution":{"1":0,"2":0,"3":1,"4":2,"5":1}}`,
		},
		{
			name:       "no ratings",
			courseID:   "7",
			stats:      domain.NewRatingStats(nil),
			wantStatus: http.StatusOK,
			wantBody:   `{"average_rating":0,"total_ratings":0,"rating_distribution":{"1":0,"2":0,"3":0,"4":0,"5":0}}`,
		},
		{
			name:       "course not found",
			courseID:   "99",
			fetchErr:   domain.NotFoundError{Resource: "course", ID: "99"},
			wantStatus: http.StatusNotFound,
			skipStats:  true,
		},
		{
			name:       "invalid course id",
			courseID:   "abc",
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipStats:  true,
		},
		{
			name:       "stats error",
			courseID:   "7",
			statsErr:   errors.New("database error"),
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
			if !tc.skipStats && tc.fetchErr == nil {
				ratings.EXPECT().
					GetRatingStats(mock.Anything, int64(7)).
					Return(tc.stats, tc.statsErr)
			}

			ctrl := RatingStatsGet{Courses: courses, Ratings: ratings}

			req := httptest.NewRequest(http.MethodGet, "/courses/"+tc.courseID+"/ratings/stats", nil)
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
