package client

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"
)

// State is the rating widget's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoadingInitial
	StateReady
	StateSubmitting
	StateError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingInitial:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

const (
	successClearDelay = 3 * time.Second
	errorClearDelay   = 5 * time.Second

	successMessage      = "Rating saved"
	genericErrorMessage = "Could not save your rating, please try again"
)

// ErrSubmissionInFlight is returned by Select while a previous submission is
// still being processed.
var ErrSubmissionInFlight = errors.New("rating submission already in flight")

// RatingAPI is the subset of the catalog API the rating controller uses.
type RatingAPI interface {
	GetUserRating(ctx context.Context, courseID, userID int64) (*Rating, error)
	GetRatingStats(ctx context.Context, courseID int64) (RatingStats, error)
	CreateRating(ctx context.Context, courseID int64, score int) (Rating, error)
	UpdateRating(ctx context.Context, courseID, userID int64, score int) (Rating, error)
}

var _ RatingAPI = (*Client)(nil)

// RatingView is a consistent read of the controller's display state.
type RatingView struct {
	State        State
	Score        int
	Average      float64
	TotalRatings int64
	Message      string
}

// ratingSnapshot captures the display state before an optimistic update so a
// failed submission can restore it wholesale.
type ratingSnapshot struct {
	score   int
	average float64
	count   int64
}

// RatingController owns the interactive state of one user's rating widget on
// one course. Score selections are applied optimistically: the local average
// and count are updated before the server responds, and restored from a
// snapshot if the submission fails.
type RatingController struct {
	api      RatingAPI
	courseID int64
	userID   int64

	mu      sync.Mutex
	state   State
	score   int
	average float64
	count   int64
	message string

	clearTimer *time.Timer
	afterFunc  func(time.Duration, func()) *time.Timer
}

// NewRatingController creates a controller for the given course and user. The
// controller starts in StateIdle; call Load before accepting selections.
func NewRatingController(api RatingAPI, courseID, userID int64) *RatingController {
	return &RatingController{
		api:       api,
		courseID:  courseID,
		userID:    userID,
		state:     StateIdle,
		afterFunc: time.AfterFunc,
	}
}

// Load fetches the caller's existing rating and the course aggregate. Fetch
// failures are not surfaced; the controller ends in StateReady with zero
// values so the widget still renders.
func (c *RatingController) Load(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoadingInitial
	c.mu.Unlock()

	var score int
	if rating, err := c.api.GetUserRating(ctx, c.courseID, c.userID); err == nil && rating != nil {
		score = rating.Score
	}

	var average float64
	var count int64
	if stats, err := c.api.GetRatingStats(ctx, c.courseID); err == nil {
		average = stats.AverageRating
		count = stats.TotalRatings
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.score = score
	c.average = roundAverage(average)
	c.count = count
	c.state = StateReady
}

// Select submits a new score for the course. The local average and count are
// updated optimistically before the call; on failure the pre-selection
// snapshot is restored and the server's message (when structured) is shown.
// Returns ErrSubmissionInFlight if called while a submission is in progress.
func (c *RatingController) Select(ctx context.Context, score int) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	snapshot := ratingSnapshot{score: c.score, average: c.average, count: c.count}
	firstRating := c.score == 0

	c.score = score
	c.average = optimisticAverage(snapshot, score)
	if firstRating || snapshot.count == 0 {
		c.count = snapshot.count + 1
	}
	c.state = StateSubmitting
	c.message = ""
	c.cancelClearLocked()
	c.mu.Unlock()

	var err error
	if firstRating {
		_, err = c.api.CreateRating(ctx, c.courseID, score)
	} else {
		_, err = c.api.UpdateRating(ctx, c.courseID, c.userID, score)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.score = snapshot.score
		c.average = snapshot.average
		c.count = snapshot.count
		c.state = StateError
		c.message = errorMessage(err)
		c.scheduleClearLocked(errorClearDelay)
		return err
	}

	c.state = StateSuccess
	c.message = successMessage
	c.scheduleClearLocked(successClearDelay)
	return nil
}

// View returns a consistent copy of the display state.
func (c *RatingController) View() RatingView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return RatingView{
		State:        c.state,
		Score:        c.score,
		Average:      c.average,
		TotalRatings: c.count,
		Message:      c.message,
	}
}

// scheduleClearLocked arms the message auto-clear. Must hold c.mu.
func (c *RatingController) scheduleClearLocked(delay time.Duration) {
	c.clearTimer = c.afterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == StateSuccess || c.state == StateError {
			c.state = StateReady
			c.message = ""
		}
	})
}

// cancelClearLocked stops a pending auto-clear. Must hold c.mu.
func (c *RatingController) cancelClearLocked() {
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}

// optimisticAverage predicts the course average after submitting score,
// given the pre-submission snapshot. The result is rounded for display.
// A zero snapshot count means the selected score is the whole aggregate,
// whether or not a prior score is known; the aggregate may be missing even
// when the user's own rating loaded.
func optimisticAverage(prev ratingSnapshot, score int) float64 {
	if prev.count == 0 {
		return float64(score)
	}
	if prev.score == 0 {
		return roundAverage((prev.average*float64(prev.count) + float64(score)) / float64(prev.count+1))
	}
	return roundAverage((prev.average*float64(prev.count) - float64(prev.score) + float64(score)) / float64(prev.count))
}

// roundAverage rounds to one decimal place for display.
func roundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// errorMessage derives the user-facing message for a failed submission: a
// structured API error's own message when available, else a generic fallback.
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericErrorMessage
}
