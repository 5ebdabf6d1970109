package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/huandu/go-sqlbuilder"
	"github.com/platziflix/catalog/internal/domain"
)

const courseColumns = "id, name, slug, description, thumbnail, created_at, updated_at"

func (r *Repository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	sb := sqlbuilder.Select(courseColumns)
	sb.From("courses")
	sb.Where(sb.IsNull("deleted_at"))
	sb.OrderBy("created_at").Desc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running courses query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning courses: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return courses, nil
}

func (r *Repository) FetchCourseByID(ctx context.Context, courseID int64) (domain.Course, error) {
	sb := sqlbuilder.Select(courseColumns)
	sb.From("courses")
	sb.Where(
		sb.Equal("id", courseID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Course{}, domain.NotFoundError{Resource: "course", ID: strconv.FormatInt(courseID, 10)}
	}
	if err != nil {
		return domain.Course{}, fmt.Errorf("fetching course by ID: %w", err)
	}

	return course, nil
}

func (r *Repository) FetchCourseBySlug(ctx context.Context, slug string) (domain.Course, error) {
	sb := sqlbuilder.Select(courseColumns)
	sb.From("courses")
	sb.Where(
		sb.Equal("slug", slug),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Course{}, domain.NotFoundError{Resource: "course", ID: slug}
	}
	if err != nil {
		return domain.Course{}, fmt.Errorf("fetching course by slug: %w", err)
	}

	course.Teachers, err = r.listCourseTeachers(ctx, course.ID)
	if err != nil {
		return domain.Course{}, err
	}

	course.Classes, err = r.listCourseClasses(ctx, course.ID)
	if err != nil {
		return domain.Course{}, err
	}

	return course, nil
}

func (r *Repository) FetchClass(ctx context.Context, courseSlug string, classID int64) (domain.Class, error) {
	sb := sqlbuilder.Select("c.id, c.course_id, c.name, c.slug, c.description, c.video_url, c.created_at, c.updated_at")
	sb.From("classes c")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "courses co", "co.id = c.course_id")
	sb.Where(
		sb.Equal("c.id", classID),
		sb.Equal("co.slug", courseSlug),
		sb.IsNull("c.deleted_at"),
		sb.IsNull("co.deleted_at"),
	)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var class domain.Class
	err := row.Scan(
		&class.ID,
		&class.CourseID,
		&class.Name,
		&class.Slug,
		&class.Description,
		&class.VideoURL,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Class{}, domain.NotFoundError{Resource: "class", ID: strconv.FormatInt(classID, 10)}
	}
	if err != nil {
		return domain.Class{}, fmt.Errorf("fetching class: %w", err)
	}

	return class, nil
}

func (r *Repository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	sb := sqlbuilder.Select("id, name, email, created_at, updated_at")
	sb.From("teachers")
	sb.Where(sb.IsNull("deleted_at"))
	sb.OrderBy("id")

	query, args := sb.Build()
	return r.queryTeachers(ctx, query, args...)
}

func (r *Repository) FetchTeacherByID(ctx context.Context, teacherID int64) (domain.Teacher, error) {
	sb := sqlbuilder.Select("id, name, email, created_at, updated_at")
	sb.From("teachers")
	sb.Where(
		sb.Equal("id", teacherID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var teacher domain.Teacher
	err := row.Scan(&teacher.ID, &teacher.Name, &teacher.Email, &teacher.CreatedAt, &teacher.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Teacher{}, domain.NotFoundError{Resource: "teacher", ID: strconv.FormatInt(teacherID, 10)}
	}
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("fetching teacher by ID: %w", err)
	}

	return teacher, nil
}

func (r *Repository) listCourseTeachers(ctx context.Context, courseID int64) ([]domain.Teacher, error) {
	sb := sqlbuilder.Select("t.id, t.name, t.email, t.created_at, t.updated_at")
	sb.From("teachers t")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "course_teachers ct", "ct.teacher_id = t.id")
	sb.Where(
		sb.Equal("ct.course_id", courseID),
		sb.IsNull("t.deleted_at"),
	)
	sb.OrderBy("t.id")

	query, args := sb.Build()
	return r.queryTeachers(ctx, query, args...)
}

func (r *Repository) listCourseClasses(ctx context.Context, courseID int64) ([]domain.Class, error) {
	sb := sqlbuilder.Select("id, course_id, name, slug, description, video_url, created_at, updated_at")
	sb.From("classes")
	sb.Where(
		sb.Equal("course_id", courseID),
		sb.IsNull("deleted_at"),
	)
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running classes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	classes := []domain.Class{}
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.CourseID,
			&class.Name,
			&class.Slug,
			&class.Description,
			&class.VideoURL,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning classes: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return classes, nil
}

func (r *Repository) queryTeachers(ctx context.Context, query string, args ...interface{}) ([]domain.Teacher, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running teachers query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	teachers := []domain.Teacher{}
	for rows.Next() {
		var teacher domain.Teacher
		if err := rows.Scan(&teacher.ID, &teacher.Name, &teacher.Email, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning teachers: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return teachers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row rowScanner) (domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Slug,
		&course.Description,
		&course.Thumbnail,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	return course, err
}
