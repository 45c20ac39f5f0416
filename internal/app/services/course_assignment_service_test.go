package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
)

func teacherUser(id int64) *models.User {
	return &models.User{ID: id, Username: "teacher1", Role: models.RoleTeacher, Status: models.StatusActive}
}

func TestDiffCourseSets(t *testing.T) {
	cases := []struct {
		name        string
		current     []int64
		desired     []int64
		wantAdded   []int64
		wantRemoved []int64
	}{
		{"replace one", []int64{1, 2}, []int64{2, 3}, []int64{3}, []int64{1}},
		{"no change", []int64{1, 2}, []int64{1, 2}, []int64{}, []int64{}},
		{"clear all", []int64{1, 2}, []int64{}, []int64{}, []int64{1, 2}},
		{"from empty", []int64{}, []int64{4, 5}, []int64{4, 5}, []int64{}},
		{"both empty", nil, nil, []int64{}, []int64{}},
		{"duplicate desired ids", []int64{1}, []int64{2, 2, 1}, []int64{2}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			added, removed := diffCourseSets(tc.current, tc.desired)
			assert.Equal(t, tc.wantAdded, added)
			assert.Equal(t, tc.wantRemoved, removed)
		})
	}
}

func TestAssignCourses_Reconciles(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return teacherUser(id), nil
		},
	}

	var gotAdd, gotRemove []int64
	courseRepo := &fakeCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Type: models.CourseLive}, nil
		},
		getAssignedCourseIDsFn: func(ctx context.Context, teacherID int64) ([]int64, error) {
			return []int64{1, 2}, nil
		},
		reconcileTeacherCoursesFn: func(ctx context.Context, teacherID int64, add, remove []int64) error {
			gotAdd, gotRemove = add, remove
			return nil
		},
	}
	svc := NewCourseAssignmentService(courseRepo, userRepo, zerolog.Nop())

	added, removed, err := svc.AssignCourses(context.Background(), 9, []int64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, added)
	assert.Equal(t, []int64{1}, removed)
	assert.Equal(t, []int64{3}, gotAdd)
	assert.Equal(t, []int64{1}, gotRemove)
}

func TestAssignCourses_NoChangeSkipsReconcile(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return teacherUser(id), nil
		},
	}
	reconcileCalled := false
	courseRepo := &fakeCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id}, nil
		},
		getAssignedCourseIDsFn: func(ctx context.Context, teacherID int64) ([]int64, error) {
			return []int64{1, 2}, nil
		},
		reconcileTeacherCoursesFn: func(ctx context.Context, teacherID int64, add, remove []int64) error {
			reconcileCalled = true
			return nil
		},
	}
	svc := NewCourseAssignmentService(courseRepo, userRepo, zerolog.Nop())

	added, removed, err := svc.AssignCourses(context.Background(), 9, []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Empty(t, removed)
	assert.False(t, reconcileCalled)
}

func TestAssignCourses_RejectsNonTeacher(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleStudent}, nil
		},
	}
	reconcileCalled := false
	courseRepo := &fakeCourseRepo{
		reconcileTeacherCoursesFn: func(ctx context.Context, teacherID int64, add, remove []int64) error {
			reconcileCalled = true
			return nil
		},
	}
	svc := NewCourseAssignmentService(courseRepo, userRepo, zerolog.Nop())

	_, _, err := svc.AssignCourses(context.Background(), 9, []int64{1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTeacherID)
	assert.False(t, reconcileCalled, "no mutation should happen for an invalid teacher")
}

func TestAssignCourses_RejectsUnknownTeacher(t *testing.T) {
	svc := NewCourseAssignmentService(&fakeCourseRepo{}, &fakeUserRepo{}, zerolog.Nop())

	_, _, err := svc.AssignCourses(context.Background(), 404, []int64{1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTeacherID)
}

func TestAssignCourses_RejectsUnknownCourse(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return teacherUser(id), nil
		},
	}
	reconcileCalled := false
	courseRepo := &fakeCourseRepo{
		reconcileTeacherCoursesFn: func(ctx context.Context, teacherID int64, add, remove []int64) error {
			reconcileCalled = true
			return nil
		},
	}
	svc := NewCourseAssignmentService(courseRepo, userRepo, zerolog.Nop())

	_, _, err := svc.AssignCourses(context.Background(), 9, []int64{77})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.False(t, reconcileCalled)
}

func TestGetAssignedCourses_RequiresTeacher(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		},
	}
	svc := NewCourseAssignmentService(&fakeCourseRepo{}, userRepo, zerolog.Nop())

	_, err := svc.GetAssignedCourses(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTeacherID)
}
