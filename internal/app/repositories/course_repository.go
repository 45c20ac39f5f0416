package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
)

// CourseRepository handles course catalog and teacher-assignment operations.
// Teacher assignments live in the course_teachers join table; the rows for
// a course determine exactly which teacher dashboards can see it.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, slug, title, summary, course_type, price_cents, currency, total_hours, published, created_at, updated_at`

const courseColumnsPrefixed = `c.id, c.slug, c.title, c.summary, c.course_type, c.price_cents, c.currency, c.total_hours, c.published, c.created_at, c.updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Slug, &course.Title, &course.Summary, &course.Type,
		&course.PriceCents, &course.Currency, &course.TotalHours, &course.Published,
		&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return course, nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	defer rows.Close()
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// GetPublished returns all published catalog entries
func (r *CourseRepository) GetPublished(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+` FROM courses WHERE published ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return collectCourses(rows)
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	row := r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	return scanCourse(row)
}

// GetBySlug retrieves a course by slug
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	row := r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE slug = $1`, slug)
	return scanCourse(row)
}

// Create inserts a new catalog entry and returns its id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (slug, title, summary, course_type, price_cents, currency, total_hours, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id`,
		course.Slug, course.Title, course.Summary, course.Type,
		course.PriceCents, course.Currency, course.TotalHours, course.Published).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// GetAssignedCourseIDs returns the ids of the courses currently assigned to a teacher
func (r *CourseRepository) GetAssignedCourseIDs(ctx context.Context, teacherID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT course_id FROM course_teachers WHERE teacher_id = $1 ORDER BY course_id`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error listing assigned courses: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning course id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetCoursesByTeacherID returns the full course records assigned to a teacher
func (r *CourseRepository) GetCoursesByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumnsPrefixed+`
		FROM courses c
		JOIN course_teachers ct ON ct.course_id = c.id
		WHERE ct.teacher_id = $1
		ORDER BY c.title`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error listing teacher courses: %w", err)
	}
	return collectCourses(rows)
}

// ReconcileTeacherCourses applies an add/remove set difference against the
// course_teachers join table in a single transaction. Removals only touch
// this teacher's rows, so other teachers' assignments on the same courses
// are never clobbered. A failure anywhere rolls back the whole change.
func (r *CourseRepository) ReconcileTeacherCourses(ctx context.Context, teacherID int64, add, remove []int64) error {
	if len(add) == 0 && len(remove) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, courseID := range add {
		_, err := tx.Exec(ctx, `
			INSERT INTO course_teachers (course_id, teacher_id)
			VALUES ($1, $2)
			ON CONFLICT (course_id, teacher_id) DO NOTHING`, courseID, teacherID)
		if err != nil {
			return fmt.Errorf("error assigning course %d: %w", courseID, err)
		}
	}

	if len(remove) > 0 {
		_, err := tx.Exec(ctx, `
			DELETE FROM course_teachers
			WHERE teacher_id = $1 AND course_id = ANY($2)`, teacherID, remove)
		if err != nil {
			return fmt.Errorf("error unassigning courses: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RemoveStaleTeacherAssignments deletes join rows whose user no longer
// holds the teacher role. Returns the number of rows removed.
func (r *CourseRepository) RemoveStaleTeacherAssignments(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM course_teachers ct
		USING users u
		WHERE u.id = ct.teacher_id AND u.role <> 'teacher'`)
	if err != nil {
		return 0, fmt.Errorf("error removing stale course assignments: %w", err)
	}
	return tag.RowsAffected(), nil
}
