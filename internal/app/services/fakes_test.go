package services

import (
	"context"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
)

// Repository fakes with overridable behavior per test. Unset functions
// fall back to not-found or empty results.

type fakeUserRepo struct {
	createFn          func(ctx context.Context, user *models.User) (int64, error)
	getByIDFn         func(ctx context.Context, id int64) (*models.User, error)
	getByUsernameFn   func(ctx context.Context, username string) (*models.User, error)
	listFn            func(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	countFn           func(ctx context.Context) (int64, error)
	updateFn          func(ctx context.Context, user *models.User) error
	updateLastLoginFn func(ctx context.Context, userID int64) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if f.createFn == nil {
		return 1, nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getByUsernameFn == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) List(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, offset, limit)
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error {
	if f.updateLastLoginFn == nil {
		return nil
	}
	return f.updateLastLoginFn(ctx, userID)
}

type fakeCourseRepo struct {
	getPublishedFn            func(ctx context.Context) ([]*models.Course, error)
	getByIDFn                 func(ctx context.Context, id int64) (*models.Course, error)
	getBySlugFn               func(ctx context.Context, slug string) (*models.Course, error)
	createFn                  func(ctx context.Context, course *models.Course) (int64, error)
	getAssignedCourseIDsFn    func(ctx context.Context, teacherID int64) ([]int64, error)
	getCoursesByTeacherIDFn   func(ctx context.Context, teacherID int64) ([]*models.Course, error)
	reconcileTeacherCoursesFn func(ctx context.Context, teacherID int64, add, remove []int64) error
	removeStaleFn             func(ctx context.Context) (int64, error)
}

func (f *fakeCourseRepo) GetPublished(ctx context.Context) ([]*models.Course, error) {
	if f.getPublishedFn == nil {
		return nil, nil
	}
	return f.getPublishedFn(ctx)
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCourseRepo) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if f.getBySlugFn == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return f.getBySlugFn(ctx, slug)
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	if f.createFn == nil {
		return 1, nil
	}
	return f.createFn(ctx, course)
}

func (f *fakeCourseRepo) GetAssignedCourseIDs(ctx context.Context, teacherID int64) ([]int64, error) {
	if f.getAssignedCourseIDsFn == nil {
		return nil, nil
	}
	return f.getAssignedCourseIDsFn(ctx, teacherID)
}

func (f *fakeCourseRepo) GetCoursesByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	if f.getCoursesByTeacherIDFn == nil {
		return nil, nil
	}
	return f.getCoursesByTeacherIDFn(ctx, teacherID)
}

func (f *fakeCourseRepo) ReconcileTeacherCourses(ctx context.Context, teacherID int64, add, remove []int64) error {
	if f.reconcileTeacherCoursesFn == nil {
		return nil
	}
	return f.reconcileTeacherCoursesFn(ctx, teacherID, add, remove)
}

func (f *fakeCourseRepo) RemoveStaleTeacherAssignments(ctx context.Context) (int64, error) {
	if f.removeStaleFn == nil {
		return 0, nil
	}
	return f.removeStaleFn(ctx)
}

type fakeEnrollmentRepo struct {
	createFn        func(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	getByIDFn       func(ctx context.Context, id int64) (*models.Enrollment, error)
	listFn          func(ctx context.Context, filter models.EnrollmentFilter) ([]*models.EnrollmentDetail, error)
	countFn         func(ctx context.Context, filter models.EnrollmentFilter) (int64, error)
	assignTeacherFn func(ctx context.Context, enrollmentID, teacherID int64) error
	listByTeacherFn func(ctx context.Context, teacherID int64) ([]*models.EnrollmentDetail, error)
	listByStudentFn func(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error)
	markRenewedFn   func(ctx context.Context, enrollmentID int64) error
	clearStaleFn    func(ctx context.Context) (int64, error)
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	if f.createFn == nil {
		return 1, nil
	}
	return f.createFn(ctx, enrollment)
}

func (f *fakeEnrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeEnrollmentRepo) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.EnrollmentDetail, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, filter)
}

func (f *fakeEnrollmentRepo) Count(ctx context.Context, filter models.EnrollmentFilter) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, filter)
}

func (f *fakeEnrollmentRepo) AssignTeacher(ctx context.Context, enrollmentID, teacherID int64) error {
	if f.assignTeacherFn == nil {
		return nil
	}
	return f.assignTeacherFn(ctx, enrollmentID, teacherID)
}

func (f *fakeEnrollmentRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.EnrollmentDetail, error) {
	if f.listByTeacherFn == nil {
		return nil, nil
	}
	return f.listByTeacherFn(ctx, teacherID)
}

func (f *fakeEnrollmentRepo) ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	if f.listByStudentFn == nil {
		return nil, nil
	}
	return f.listByStudentFn(ctx, studentID)
}

func (f *fakeEnrollmentRepo) MarkRenewed(ctx context.Context, enrollmentID int64) error {
	if f.markRenewedFn == nil {
		return nil
	}
	return f.markRenewedFn(ctx, enrollmentID)
}

func (f *fakeEnrollmentRepo) ClearStaleTeacherRefs(ctx context.Context) (int64, error) {
	if f.clearStaleFn == nil {
		return 0, nil
	}
	return f.clearStaleFn(ctx)
}
