package datasources

import (
	"context"

	"github.com/platziflix/catalog/internal/domain"
)

// CatalogRepository bundles read access to the course catalog.
type CatalogRepository interface {
	CourseLister
	CourseFetcher
	ClassFetcher
	TeacherLister
	TeacherFetcher
}

type CourseLister interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
}

type CourseFetcher interface {
	// FetchCourseByID returns a NotFoundError when no active course has the ID.
	FetchCourseByID(ctx context.Context, courseID int64) (domain.Course, error)

	// FetchCourseBySlug returns the course with its teachers and classes
	// attached, or a NotFoundError.
	FetchCourseBySlug(ctx context.Context, slug string) (domain.Course, error)
}

type ClassFetcher interface {
	FetchClass(ctx context.Context, courseSlug string, classID int64) (domain.Class, error)
}

type TeacherLister interface {
	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
}

type TeacherFetcher interface {
	FetchTeacherByID(ctx context.Context, teacherID int64) (domain.Teacher, error)
}
