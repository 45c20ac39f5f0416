package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
)

// CourseAssignmentService reconciles the set of courses assigned to a
// teacher. Changes are computed as a set difference and applied in one
// transaction, so a partial write can never survive a failure.
type CourseAssignmentService struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewCourseAssignmentService creates a new CourseAssignmentService
func NewCourseAssignmentService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) *CourseAssignmentService {
	return &CourseAssignmentService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// GetAssignedCourses returns the ids currently assigned to a teacher
func (s *CourseAssignmentService) GetAssignedCourses(ctx context.Context, teacherID int64) ([]int64, error) {
	if err := s.verifyTeacher(ctx, teacherID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetAssignedCourseIDs(ctx, teacherID)
}

// AssignCourses reconciles a teacher's assignments toward the desired set.
// Courses in the desired set are verified to exist before any mutation.
func (s *CourseAssignmentService) AssignCourses(ctx context.Context, teacherID int64, desired []int64) (added, removed []int64, err error) {
	if err := s.verifyTeacher(ctx, teacherID); err != nil {
		return nil, nil, err
	}

	for _, courseID := range desired {
		if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
			return nil, nil, err
		}
	}

	current, err := s.courseRepo.GetAssignedCourseIDs(ctx, teacherID)
	if err != nil {
		return nil, nil, err
	}

	added, removed = diffCourseSets(current, desired)
	if len(added) == 0 && len(removed) == 0 {
		return added, removed, nil
	}

	if err := s.courseRepo.ReconcileTeacherCourses(ctx, teacherID, added, removed); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Int64("teacherID", teacherID).
		Ints64("added", added).
		Ints64("removed", removed).
		Msg("Teacher course assignments reconciled")

	return added, removed, nil
}

// verifyTeacher confirms the id resolves to a live teacher-role user
func (s *CourseAssignmentService) verifyTeacher(ctx context.Context, teacherID int64) error {
	user, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidTeacherID
		}
		return err
	}
	if user.Role != models.RoleTeacher {
		return apperrors.ErrInvalidTeacherID
	}
	return nil
}

// diffCourseSets computes which ids to add and which to remove to move
// from the current set to the desired set. Ids in both are untouched.
func diffCourseSets(current, desired []int64) (added, removed []int64) {
	currentSet := make(map[int64]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[int64]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	added = make([]int64, 0)
	removed = make([]int64, 0)

	for _, id := range desired {
		if !currentSet[id] {
			added = append(added, id)
			currentSet[id] = true // dedupe repeated ids in the request
		}
	}
	for _, id := range current {
		if !desiredSet[id] {
			removed = append(removed, id)
		}
	}

	return added, removed
}
