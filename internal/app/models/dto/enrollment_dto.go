package dto

// AssignTeacherRequest assigns a teacher to a live-course enrollment.
// The teacher's role is verified against the directory at assignment
// time, never trusted from the caller.
type AssignTeacherRequest struct {
	TeacherID int64 `json:"teacherId" binding:"required"`
}

// AssignCoursesRequest replaces a teacher's desired course set. The
// server reconciles against the current set rather than rewriting it.
type AssignCoursesRequest struct {
	CourseIDs []int64 `json:"courseIds" binding:"required"`
}

// RenewEnrollmentRequest re-opens payment for a student's own enrollment
type RenewEnrollmentRequest struct {
	EnrollmentID int64 `json:"enrollmentId" binding:"required"`
}

// CreateEnrollmentRequest represents an admin-created enrollment,
// either for a registered student or a guest contact.
type CreateEnrollmentRequest struct {
	StudentID     *int64  `json:"studentId,omitempty"`
	GuestName     *string `json:"guestName,omitempty"`
	GuestEmail    *string `json:"guestEmail,omitempty" binding:"omitempty,email"`
	GuestPhone    *string `json:"guestPhone,omitempty"`
	CourseID      int64   `json:"courseId" binding:"required"`
	MonthlyAmount int64   `json:"monthlyAmountCents" binding:"omitempty,min=0"`
	TotalHours    int     `json:"totalHours" binding:"omitempty,min=0"`
	SchedulePref  *string `json:"schedulePreference,omitempty"`
}
