package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexadigitall/platform/internal/app/models"
)

// IUserRepository defines user directory operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// ICourseRepository defines course catalog and teacher-assignment operations
type ICourseRepository interface {
	GetPublished(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetAssignedCourseIDs(ctx context.Context, teacherID int64) ([]int64, error)
	GetCoursesByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error)
	ReconcileTeacherCourses(ctx context.Context, teacherID int64, add, remove []int64) error
	RemoveStaleTeacherAssignments(ctx context.Context) (int64, error)
}

// IEnrollmentRepository defines enrollment operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.EnrollmentDetail, error)
	Count(ctx context.Context, filter models.EnrollmentFilter) (int64, error)
	AssignTeacher(ctx context.Context, enrollmentID, teacherID int64) error
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.EnrollmentDetail, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error)
	MarkRenewed(ctx context.Context, enrollmentID int64) error
	ClearStaleTeacherRefs(ctx context.Context) (int64, error)
}

// IAnalyticsRepository defines analytics event persistence
type IAnalyticsRepository interface {
	Insert(ctx context.Context, event *models.Event) error
}

// Repositories is the container for all repository implementations
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	AnalyticsRepository  *AnalyticsRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AnalyticsRepository:  NewAnalyticsRepository(db),
	}
}
