package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/command"
	cmdmocks "github.com/platziflix/catalog/internal/command/mocks"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRatingDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		callerID   int64
		deleteErr  error
		wantStatus int
		skipDelete bool
	}{
		{
			name:       "deleted",
			userID:     "42",
			callerID:   42,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "caller does not own the rating",
			userID:     "42",
			callerID:   99,
			deleteErr:  domain.ForbiddenError{Message: "rating belongs to another user"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no active rating",
			userID:     "42",
			callerID:   42,
			deleteErr:  domain.NotFoundError{Resource: "rating", ID: "course 7, user 42"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid user id",
			userID:     "abc",
			callerID:   42,
			wantStatus: http.StatusBadRequest,
			skipDelete: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteRatingRequest, command.Empty](t)

			if !tc.skipDelete {
				deleteCmd.EXPECT().
					Execute(mock.Anything, command.DeleteRatingRequest{
						CourseID: 7,
						UserID:   42,
						CallerID: tc.callerID,
					}).
					Return(command.Empty{}, tc.deleteErr)
			}

			ctrl := RatingDelete{DeleteCmd: deleteCmd}

			req := httptest.NewRequest(http.MethodDelete, "/courses/7/ratings/"+tc.userID, nil)
			req = testContextWithUserID(tc.callerID)(req)
			req = mux.SetURLVars(req, map[string]string{
				"course_id": "7",
				"user_id":   tc.userID,
			})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
