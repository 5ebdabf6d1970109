package domain

import (
	"time"
)

// Course is a published course in the catalog.
type Course struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	Teachers    []Teacher  `json:"teachers,omitempty"`
	Classes     []Class    `json:"classes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// Teacher teaches one or more courses.
type Teacher struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Class is a single lesson within a course.
type Class struct {
	ID          int64      `json:"id"`
	CourseID    int64      `json:"course_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	VideoURL    string     `json:"video_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
