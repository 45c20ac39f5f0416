package models

import "time"

// CourseType distinguishes self-paced content from live tutored courses.
type CourseType string

const (
	CourseSelfPaced CourseType = "self-paced"
	CourseLive      CourseType = "live"
)

// Course defines a catalog entry based on the 'courses' table.
// The set of assigned teachers determines exactly which teacher
// dashboards return this course and its roster.
type Course struct {
	ID         int64      `json:"id" db:"id"`
	Slug       string     `json:"slug" db:"slug"`
	Title      string     `json:"title" db:"title"`
	Summary    string     `json:"summary" db:"summary"`
	Type       CourseType `json:"type" db:"course_type"`
	PriceCents int64      `json:"priceCents" db:"price_cents"`
	Currency   string     `json:"currency" db:"currency"`
	TotalHours int        `json:"totalHours" db:"total_hours"`
	Published  bool       `json:"published" db:"published"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}
