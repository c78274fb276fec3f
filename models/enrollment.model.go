package models

import (
	"strings"

	"gorm.io/gorm"
)

// Enrollment statuses. Stored lowercase; input is accepted case-insensitively
// and normalized before it reaches the database.
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// Enrollment links a user to a course, pending admin review of the
// submitted payment proof. At most one row may exist per (user, course).
type Enrollment struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID     uint   `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Status       string `json:"status" gorm:"default:'pending'"`
	PaymentProof string `json:"payment_proof" gorm:"not null"`
	BankAccount  string `json:"bank_account" gorm:"default:''"`
	Grade        string `json:"grade" gorm:"size:5;default:''"`
	Completed    bool   `json:"completed" gorm:"default:false"`
	AdminNotes   string `json:"admin_notes" gorm:"default:''"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}

// NormalizeEnrollmentStatus lowercases a status value and reports whether
// it is one of the three valid states.
func NormalizeEnrollmentStatus(status string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case EnrollmentPending, EnrollmentApproved, EnrollmentRejected:
		return s, true
	}
	return "", false
}

// ValidGrades is the closed set accepted by the grade endpoint.
var ValidGrades = []string{"A", "B", "C", "D", "F"}

// passingGrades is the subset that counts toward certificate eligibility.
var passingGrades = map[string]bool{"A": true, "B": true, "C": true}

// NormalizeGrade uppercases a grade and reports whether it is accepted.
func NormalizeGrade(grade string) (string, bool) {
	g := strings.ToUpper(strings.TrimSpace(grade))
	for _, v := range ValidGrades {
		if g == v {
			return g, true
		}
	}
	return "", false
}

// AttendancePercent computes present/total as a percentage, defined as 0
// when no sessions were recorded.
func AttendancePercent(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// IsCertificateEligible is the single authoritative certificate rule:
// the course is completed, the grade passes, and attendance is at least 50%.
func IsCertificateEligible(e *Enrollment, present, total int64) bool {
	if !e.Completed {
		return false
	}
	if !passingGrades[strings.ToUpper(e.Grade)] {
		return false
	}
	return AttendancePercent(present, total) >= 50
}
