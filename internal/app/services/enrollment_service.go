package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/helpers"
)

// EnrollmentService handles enrollment lifecycle operations
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	userRepo       repositories.IUserRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Create records a new enrollment for a registered student or a guest
// contact, denormalizing the course type and defaults onto the row.
func (s *EnrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	if req.StudentID == nil && (req.GuestName == nil || req.GuestEmail == nil) {
		return nil, apperrors.NewBadRequestError("enrollment requires a student ID or guest name and email")
	}

	if req.StudentID != nil {
		student, err := s.userRepo.GetByID(ctx, *req.StudentID)
		if err != nil {
			return nil, err
		}
		if student.Role != models.RoleStudent {
			return nil, apperrors.NewBadRequestError("referenced user is not a student")
		}
	}

	totalHours := req.TotalHours
	if totalHours == 0 {
		totalHours = course.TotalHours
	}

	enrollment := &models.Enrollment{
		StudentID:     req.StudentID,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		CourseID:      course.ID,
		CourseType:    course.Type,
		PaymentStatus: models.PaymentPending,
		MonthlyAmount: req.MonthlyAmount,
		TotalHours:    totalHours,
		SchedulePref:  req.SchedulePref,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	enrollment.ID = id

	s.logger.Info().Int64("enrollmentID", id).Int64("courseID", course.ID).Msg("Enrollment created")
	return enrollment, nil
}

// List returns a filtered page of enrollments with pagination metadata
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.EnrollmentDetail, dto.PaginationInfo, error) {
	items, err := s.enrollmentRepo.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.enrollmentRepo.Count(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return items, helpers.NewPaginationInfo(total, filter.Page, filter.Size), nil
}

// AssignTeacher sets the teacher reference on a live-course enrollment.
// The teacher id is resolved against the directory at assignment time; a
// user without the teacher role is rejected before any mutation.
func (s *EnrollmentService) AssignTeacher(ctx context.Context, enrollmentID, teacherID int64) error {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidTeacherID
		}
		return err
	}
	if teacher.Role != models.RoleTeacher {
		return apperrors.ErrInvalidTeacherID
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.CourseType != models.CourseLive {
		return apperrors.ErrNotLiveEnrollment
	}

	if err := s.enrollmentRepo.AssignTeacher(ctx, enrollmentID, teacherID); err != nil {
		return err
	}

	s.logger.Info().Int64("enrollmentID", enrollmentID).Int64("teacherID", teacherID).Msg("Teacher assigned to enrollment")
	return nil
}

// ListByTeacher returns the roster visible to a teacher
func (s *EnrollmentService) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.EnrollmentDetail, error) {
	return s.enrollmentRepo.ListByTeacher(ctx, teacherID)
}

// ListByStudent returns a student's own enrollments
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	return s.enrollmentRepo.ListByStudent(ctx, studentID)
}

// Renew re-opens payment for one of the caller's own live enrollments.
// Enrollments belonging to other students are reported as not found
// rather than forbidden, so ids cannot be probed.
func (s *EnrollmentService) Renew(ctx context.Context, studentID, enrollmentID int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if enrollment.StudentID == nil || *enrollment.StudentID != studentID {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	if enrollment.CourseType != models.CourseLive {
		return nil, apperrors.ErrEnrollmentNotRenewable
	}

	if err := s.enrollmentRepo.MarkRenewed(ctx, enrollmentID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("enrollmentID", enrollmentID).Int64("studentID", studentID).Msg("Enrollment renewal requested")
	return s.enrollmentRepo.GetByID(ctx, enrollmentID)
}
