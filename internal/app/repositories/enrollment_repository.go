package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = `e.id, e.student_id, e.guest_name, e.guest_email, e.guest_phone,
	e.course_id, e.course_type, e.payment_status, e.monthly_amount_cents, e.total_hours,
	e.schedule_preference, e.teacher_id, e.renewal_count, e.last_renewed_at,
	e.created_at, e.updated_at`

func scanEnrollmentDetail(row pgx.Row) (*models.EnrollmentDetail, error) {
	d := &models.EnrollmentDetail{}
	err := row.Scan(
		&d.ID, &d.StudentID, &d.GuestName, &d.GuestEmail, &d.GuestPhone,
		&d.CourseID, &d.CourseType, &d.PaymentStatus, &d.MonthlyAmount, &d.TotalHours,
		&d.SchedulePref, &d.TeacherID, &d.RenewalCount, &d.LastRenewedAt,
		&d.CreatedAt, &d.UpdatedAt,
		&d.CourseTitle, &d.StudentName, &d.TeacherName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return d, nil
}

const enrollmentDetailQuery = `
	SELECT ` + enrollmentColumns + `,
		c.title AS course_title,
		s.display_name AS student_name,
		t.display_name AS teacher_name
	FROM enrollments e
	JOIN courses c ON c.id = e.course_id
	LEFT JOIN users s ON s.id = e.student_id
	LEFT JOIN users t ON t.id = e.teacher_id`

func collectEnrollmentDetails(rows pgx.Rows) ([]*models.EnrollmentDetail, error) {
	defer rows.Close()
	var out []*models.EnrollmentDetail
	for rows.Next() {
		d, err := scanEnrollmentDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create inserts a new enrollment and returns its id. The course type is
// denormalized onto the row at creation time.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, guest_name, guest_email, guest_phone,
			course_id, course_type, payment_status, monthly_amount_cents, total_hours, schedule_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		e.StudentID, e.GuestName, e.GuestEmail, e.GuestPhone,
		e.CourseID, e.CourseType, e.PaymentStatus, e.MonthlyAmount, e.TotalHours, e.SchedulePref).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}
	return id, nil
}

// GetByID retrieves a bare enrollment by id
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := r.db.QueryRow(ctx, `
		SELECT `+enrollmentColumns+`
		FROM enrollments e
		WHERE e.id = $1`, id).Scan(
		&e.ID, &e.StudentID, &e.GuestName, &e.GuestEmail, &e.GuestPhone,
		&e.CourseID, &e.CourseType, &e.PaymentStatus, &e.MonthlyAmount, &e.TotalHours,
		&e.SchedulePref, &e.TeacherID, &e.RenewalCount, &e.LastRenewedAt,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error fetching enrollment: %w", err)
	}
	return e, nil
}

// buildFilter assembles WHERE clauses and args for an enrollment filter.
func buildFilter(filter models.EnrollmentFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	appendClause := func(column string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.CourseID > 0 {
		appendClause("e.course_id", filter.CourseID)
	}
	if filter.TeacherID > 0 {
		appendClause("e.teacher_id", filter.TeacherID)
	}
	if filter.PaymentStatus != "" {
		appendClause("e.payment_status", filter.PaymentStatus)
	}
	if filter.CourseType != "" {
		appendClause("e.course_type", filter.CourseType)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns a filtered page of enrollments with descriptive fields
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.EnrollmentDetail, error) {
	where, args := buildFilter(filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.Size
	if size <= 0 {
		size = 20
	}

	args = append(args, (page-1)*size, size)
	query := fmt.Sprintf("%s%s ORDER BY e.created_at DESC OFFSET $%d LIMIT $%d",
		enrollmentDetailQuery, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	return collectEnrollmentDetails(rows)
}

// Count returns the number of enrollments matching a filter
func (r *EnrollmentRepository) Count(ctx context.Context, filter models.EnrollmentFilter) (int64, error) {
	where, args := buildFilter(filter)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments e`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// AssignTeacher sets the teacher reference on an enrollment. Re-assigning
// the same teacher rewrites the same value.
func (r *EnrollmentRepository) AssignTeacher(ctx context.Context, enrollmentID, teacherID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments SET teacher_id = $1, updated_at = NOW() WHERE id = $2`,
		teacherID, enrollmentID)
	if err != nil {
		return fmt.Errorf("error assigning teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// ListByTeacher returns the roster visible to a teacher: enrollments on
// courses assigned to them, plus enrollments referencing them directly.
func (r *EnrollmentRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.EnrollmentDetail, error) {
	rows, err := r.db.Query(ctx, enrollmentDetailQuery+`
		WHERE e.teacher_id = $1
		   OR e.course_id IN (SELECT course_id FROM course_teachers WHERE teacher_id = $1)
		ORDER BY e.created_at DESC`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error listing teacher roster: %w", err)
	}
	return collectEnrollmentDetails(rows)
}

// ListByStudent returns a student's own enrollments
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	rows, err := r.db.Query(ctx, enrollmentDetailQuery+`
		WHERE e.student_id = $1
		ORDER BY e.created_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student enrollments: %w", err)
	}
	return collectEnrollmentDetails(rows)
}

// MarkRenewed re-opens payment on an enrollment and bumps its renewal counter
func (r *EnrollmentRepository) MarkRenewed(ctx context.Context, enrollmentID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments
		SET payment_status = 'pending', renewal_count = renewal_count + 1,
		    last_renewed_at = NOW(), updated_at = NOW()
		WHERE id = $1`, enrollmentID)
	if err != nil {
		return fmt.Errorf("error renewing enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// ClearStaleTeacherRefs nulls teacher references whose user no longer
// holds the teacher role. Returns the number of rows touched.
func (r *EnrollmentRepository) ClearStaleTeacherRefs(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments e
		SET teacher_id = NULL, updated_at = NOW()
		FROM users u
		WHERE u.id = e.teacher_id AND u.role <> 'teacher'`)
	if err != nil {
		return 0, fmt.Errorf("error clearing stale teacher refs: %w", err)
	}
	return tag.RowsAffected(), nil
}
