package models

import "gorm.io/gorm"

// CourseAssignment links an instructor or teaching assistant to a course
// they are responsible for. Unique per (user, course, role).
type CourseAssignment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_assignment;not null"`
	CourseID uint   `json:"course_id" gorm:"uniqueIndex:idx_assignment;not null"`
	Role     string `json:"role" gorm:"uniqueIndex:idx_assignment;not null"` // instructor, teaching_assistant

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}
