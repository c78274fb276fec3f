package models

import (
	"time"

	"gorm.io/gorm"
)

// Attendance records one student's presence for one course session.
// Re-recording the same (course, student, date) overwrites the old value.
type Attendance struct {
	gorm.Model
	CourseID    uint      `json:"course_id" gorm:"uniqueIndex:idx_attendance;not null"`
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_attendance;not null"`
	SessionDate time.Time `json:"session_date" gorm:"uniqueIndex:idx_attendance;not null"`
	Present     bool      `json:"present" gorm:"default:false"`
	RecordedBy  uint      `json:"recorded_by" gorm:"not null"`
}
