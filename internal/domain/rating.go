package domain

import (
	"math"
	"time"
)

const (
	// MinRatingScore and MaxRatingScore bound the accepted score range.
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is one user's score for one course. A soft-deleted rating keeps its
// row but is excluded from lookups and aggregates.
type Rating struct {
	ID        int64      `json:"id"`
	CourseID  int64      `json:"course_id"`
	UserID    int64      `json:"user_id"`
	Score     int        `json:"rating"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Active reports whether the rating still counts towards lookups and stats.
func (r Rating) Active() bool {
	return r.DeletedAt == nil
}

// ValidScore reports whether score is an integer in [MinRatingScore, MaxRatingScore].
func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}

// RatingStats is the aggregate over a course's active ratings. It is derived,
// never stored.
type RatingStats struct {
	AverageRating float64     `json:"average_rating"`
	TotalRatings  int64       `json:"total_ratings"`
	Distribution  map[int]int `json:"rating_distribution"`
}

// NewRatingStats builds the aggregate from per-score counts. Scores outside
// the valid range are ignored. The average is 0 when there are no ratings,
// and is rounded to two decimal places.
func NewRatingStats(countsByScore map[int]int) RatingStats {
	stats := RatingStats{
		Distribution: make(map[int]int, MaxRatingScore),
	}

	var sum int64
	for score := MinRatingScore; score <= MaxRatingScore; score++ {
		n := countsByScore[score]
		stats.Distribution[score] = n
		stats.TotalRatings += int64(n)
		sum += int64(score) * int64(n)
	}

	if stats.TotalRatings > 0 {
		avg := float64(sum) / float64(stats.TotalRatings)
		stats.AverageRating = math.Round(avg*100) / 100
	}

	return stats
}
