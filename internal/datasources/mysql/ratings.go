package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/platziflix/catalog/internal/domain"
)

const mysqlErrDuplicateEntry = 1062

const ratingColumns = "id, course_id, user_id, rating, created_at, updated_at, deleted_at"

// UpsertRating creates or mutates the user's rating for a course inside one
// transaction. The existing row, active or soft-deleted, is locked first so
// concurrent submissions for the same (course, user) pair serialize. A
// concurrent first insert losing the race on the unique key surfaces as a
// ConflictError.
func (r *Repository) UpsertRating(
	ctx context.Context, courseID, userID int64, score int,
) (domain.Rating, error) {
	if !domain.ValidScore(score) {
		return domain.Rating{}, domain.ValidationError{
			Message: fmt.Sprintf("rating must be an integer between %d and %d", domain.MinRatingScore, domain.MaxRatingScore),
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var ratingID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM course_ratings WHERE course_id = ? AND user_id = ? FOR UPDATE",
		courseID, userID,
	).Scan(&ratingID)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, insertErr := tx.ExecContext(ctx,
			"INSERT INTO course_ratings (course_id, user_id, rating, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			courseID, userID, score, now, now,
		)
		if insertErr != nil {
			var driverErr *mysqldriver.MySQLError
			if errors.As(insertErr, &driverErr) && driverErr.Number == mysqlErrDuplicateEntry {
				return domain.Rating{}, domain.ConflictError{
					Message: "rating was submitted concurrently, retry the request",
				}
			}
			return domain.Rating{}, fmt.Errorf("inserting rating: %w", insertErr)
		}
		ratingID, err = res.LastInsertId()
		if err != nil {
			return domain.Rating{}, fmt.Errorf("reading inserted rating ID: %w", err)
		}
	case err != nil:
		return domain.Rating{}, fmt.Errorf("locking existing rating: %w", err)
	default:
		// A soft-deleted row for the pair is revived rather than duplicated,
		// preserving at most one row per (course, user).
		if _, err := tx.ExecContext(ctx,
			"UPDATE course_ratings SET rating = ?, updated_at = ?, deleted_at = NULL WHERE id = ?",
			score, now, ratingID,
		); err != nil {
			return domain.Rating{}, fmt.Errorf("updating rating: %w", err)
		}
	}

	rating, err := fetchRatingByID(ctx, tx, ratingID)
	if err != nil {
		return domain.Rating{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Rating{}, fmt.Errorf("committing transaction: %w", err)
	}

	return rating, nil
}

// UpdateRating mutates an existing active rating in place. Unlike
// UpsertRating it never creates one.
func (r *Repository) UpdateRating(
	ctx context.Context, courseID, userID int64, score int,
) (domain.Rating, error) {
	if !domain.ValidScore(score) {
		return domain.Rating{}, domain.ValidationError{
			Message: fmt.Sprintf("rating must be an integer between %d and %d", domain.MinRatingScore, domain.MaxRatingScore),
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var ratingID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM course_ratings WHERE course_id = ? AND user_id = ? AND deleted_at IS NULL FOR UPDATE",
		courseID, userID,
	).Scan(&ratingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Rating{}, domain.NotFoundError{Resource: "rating", ID: ratingKey(courseID, userID)}
	}
	if err != nil {
		return domain.Rating{}, fmt.Errorf("locking existing rating: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE course_ratings SET rating = ?, updated_at = ? WHERE id = ?",
		score, time.Now().UTC(), ratingID,
	); err != nil {
		return domain.Rating{}, fmt.Errorf("updating rating: %w", err)
	}

	rating, err := fetchRatingByID(ctx, tx, ratingID)
	if err != nil {
		return domain.Rating{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Rating{}, fmt.Errorf("committing transaction: %w", err)
	}

	return rating, nil
}

// DeleteRating sets the soft-delete marker on the user's active rating.
func (r *Repository) DeleteRating(ctx context.Context, courseID, userID int64) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"UPDATE course_ratings SET deleted_at = ?, updated_at = ? WHERE course_id = ? AND user_id = ? AND deleted_at IS NULL",
		now, now, courseID, userID,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting rating: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "rating", ID: ratingKey(courseID, userID)}
	}

	return nil
}

func (r *Repository) GetRating(ctx context.Context, courseID, userID int64) (*domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns)
	sb.From("course_ratings")
	sb.Where(
		sb.Equal("course_id", courseID),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching rating: %w", err)
	}

	return &rating, nil
}

func (r *Repository) ListRatings(ctx context.Context, courseID int64) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns)
	sb.From("course_ratings")
	sb.Where(
		sb.Equal("course_id", courseID),
		sb.IsNull("deleted_at"),
	)
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running ratings query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ratings := []domain.Rating{}
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ratings: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ratings, nil
}

func (r *Repository) GetRatingStats(ctx context.Context, courseID int64) (domain.RatingStats, error) {
	sb := sqlbuilder.Select("rating", "COUNT(*)")
	sb.From("course_ratings")
	sb.Where(
		sb.Equal("course_id", courseID),
		sb.IsNull("deleted_at"),
	)
	sb.GroupBy("rating")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("running rating stats query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[int]int)
	for rows.Next() {
		var score, count int
		if err := rows.Scan(&score, &count); err != nil {
			return domain.RatingStats{}, fmt.Errorf("scanning rating stats: %w", err)
		}
		counts[score] = count
	}
	if err := rows.Err(); err != nil {
		return domain.RatingStats{}, fmt.Errorf("iterating rows: %w", err)
	}

	return domain.NewRatingStats(counts), nil
}

func fetchRatingByID(ctx context.Context, tx *sql.Tx, ratingID int64) (domain.Rating, error) {
	rating, err := scanRating(tx.QueryRowContext(ctx,
		"SELECT "+ratingColumns+" FROM course_ratings WHERE id = ?", ratingID,
	))
	if err != nil {
		return domain.Rating{}, fmt.Errorf("fetching rating by ID: %w", err)
	}
	return rating, nil
}

func scanRating(row rowScanner) (domain.Rating, error) {
	var rating domain.Rating
	var deletedAt sql.NullTime
	err := row.Scan(
		&rating.ID,
		&rating.CourseID,
		&rating.UserID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return domain.Rating{}, err
	}
	rating.DeletedAt = nullTimePtr(deletedAt)
	return rating, nil
}

func ratingKey(courseID, userID int64) string {
	return "course " + strconv.FormatInt(courseID, 10) + ", user " + strconv.FormatInt(userID, 10)
}
