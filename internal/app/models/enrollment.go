package models

import "time"

// PaymentStatus tracks the payment lifecycle of an enrollment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Enrollment links a student (or a guest contact) to a course, based on
// the 'enrollments' table. Only live-course enrollments may carry a
// teacher assignment.
type Enrollment struct {
	ID         int64      `json:"id" db:"id"`
	StudentID  *int64     `json:"studentId,omitempty" db:"student_id"`
	GuestName  *string    `json:"guestName,omitempty" db:"guest_name"`
	GuestEmail *string    `json:"guestEmail,omitempty" db:"guest_email"`
	GuestPhone *string    `json:"guestPhone,omitempty" db:"guest_phone"`
	CourseID   int64      `json:"courseId" db:"course_id"`
	CourseType CourseType `json:"courseType" db:"course_type"`

	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	MonthlyAmount int64         `json:"monthlyAmountCents" db:"monthly_amount_cents"`
	TotalHours    int           `json:"totalHours" db:"total_hours"`
	SchedulePref  *string       `json:"schedulePreference,omitempty" db:"schedule_preference"`

	TeacherID *int64 `json:"teacherId,omitempty" db:"teacher_id"`

	RenewalCount  int        `json:"renewalCount" db:"renewal_count"`
	LastRenewedAt *time.Time `json:"lastRenewedAt,omitempty" db:"last_renewed_at"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// EnrollmentDetail enriches an enrollment with descriptive fields for listings.
type EnrollmentDetail struct {
	Enrollment
	CourseTitle string  `json:"courseTitle" db:"course_title"`
	StudentName *string `json:"studentName,omitempty" db:"student_name"`
	TeacherName *string `json:"teacherName,omitempty" db:"teacher_name"`
}

// EnrollmentFilter provides filters for admin enrollment listings.
type EnrollmentFilter struct {
	CourseID      int64
	TeacherID     int64
	PaymentStatus PaymentStatus
	CourseType    CourseType
	Page          int
	Size          int
}
