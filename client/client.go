// Package client provides an HTTP client for the course catalog API, along
// with the rating widget controller used by the thin native clients.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Rating mirrors a rating record returned by the API.
type Rating struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingStats mirrors the aggregate returned by the stats endpoint.
type RatingStats struct {
	AverageRating float64     `json:"average_rating"`
	TotalRatings  int64       `json:"total_ratings"`
	Distribution  map[int]int `json:"rating_distribution"`
}

// APIError is a structured error response from the API. Anything else the
// transport produces is returned as-is and treated as a generic failure.
type APIError struct {
	StatusCode int
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d, kind %s): %s", e.StatusCode, e.Kind, e.Message)
}

// TokenSource supplies the bearer token attached to authenticated requests.
// It is passed in explicitly; there is no process-wide token state.
type TokenSource func() string

// StaticToken returns a TokenSource that always yields the given token.
func StaticToken(token string) TokenSource {
	return func() string { return token }
}

// Client is an HTTP client for the course catalog API.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// NewClient creates a new API client. token may be nil for read-only use.
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Kind != "" {
			return apiErr
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func coursePath(courseID int64) string {
	return "/courses/" + strconv.FormatInt(courseID, 10)
}

// GetUserRating fetches the user's active rating for a course. It returns
// nil with no error when the user has not rated the course.
func (c *Client) GetUserRating(ctx context.Context, courseID, userID int64) (*Rating, error) {
	path := coursePath(courseID) + "/ratings/user/" + strconv.FormatInt(userID, 10)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		_ = resp.Body.Close()
		return nil, nil
	}

	var rating Rating
	if err := c.handleResponse(resp, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetRatingStats fetches the aggregate over a course's active ratings.
func (c *Client) GetRatingStats(ctx context.Context, courseID int64) (RatingStats, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, coursePath(courseID)+"/ratings/stats", nil)
	if err != nil {
		return RatingStats{}, err
	}

	var stats RatingStats
	if err := c.handleResponse(resp, &stats); err != nil {
		return RatingStats{}, err
	}
	return stats, nil
}

// ListRatings fetches a course's active ratings.
func (c *Client) ListRatings(ctx context.Context, courseID int64) ([]Rating, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, coursePath(courseID)+"/ratings", nil)
	if err != nil {
		return nil, err
	}

	var ratings []Rating
	if err := c.handleResponse(resp, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

type ratingPayload struct {
	Rating int `json:"rating"`
}

// CreateRating submits the caller's rating for a course, creating it or
// mutating an existing one.
func (c *Client) CreateRating(ctx context.Context, courseID int64, score int) (Rating, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, coursePath(courseID)+"/ratings", ratingPayload{Rating: score})
	if err != nil {
		return Rating{}, err
	}

	var rating Rating
	if err := c.handleResponse(resp, &rating); err != nil {
		return Rating{}, err
	}
	return rating, nil
}

// UpdateRating mutates the caller's existing rating for a course.
func (c *Client) UpdateRating(ctx context.Context, courseID, userID int64, score int) (Rating, error) {
	path := coursePath(courseID) + "/ratings/" + strconv.FormatInt(userID, 10)
	resp, err := c.doRequest(ctx, http.MethodPut, path, ratingPayload{Rating: score})
	if err != nil {
		return Rating{}, err
	}

	var rating Rating
	if err := c.handleResponse(resp, &rating); err != nil {
		return Rating{}, err
	}
	return rating, nil
}

// DeleteRating soft-deletes the caller's rating for a course.
func (c *Client) DeleteRating(ctx context.Context, courseID, userID int64) error {
	path := coursePath(courseID) + "/ratings/" + strconv.FormatInt(userID, 10)
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}
