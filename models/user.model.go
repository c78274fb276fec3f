package models

import (
	"time"

	"gorm.io/gorm"
)

// RoleAdmin and friends are the role tags a user may carry.
const (
	RoleAdmin             = "admin"
	RoleUser              = "user"
	RoleStudent           = "student"
	RoleInstructor        = "instructor"
	RoleTeachingAssistant = "teaching_assistant"
)

type User struct {
	gorm.Model
	Username       string     `json:"username" gorm:"uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Password       string     `json:"-" gorm:"not null"`
	FullName       string     `json:"full_name" gorm:"not null"`
	ProfilePicture string     `json:"profile_picture" gorm:"default:''"`
	Gender         string     `json:"gender" gorm:"default:''"`
	Phone          string     `json:"phone" gorm:"default:''"`
	DOB            *time.Time `json:"dob"`
	Country        string     `json:"country" gorm:"default:''"`
	City           string     `json:"city" gorm:"default:''"`
	Street         string     `json:"street" gorm:"default:''"`
	PostalCode     string     `json:"postal_code" gorm:"default:''"`

	// Roles is the single source of truth for authorization. The primary
	// role is derived (first row), never stored on the user itself.
	Roles []UserRole `json:"roles" gorm:"foreignKey:UserID"`
}

// UserRole attaches one role tag to a user. A user owns a non-empty set of
// these; ordering by ID keeps the derived primary role stable.
type UserRole struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex:idx_user_role;not null"`
	Role   string `json:"role" gorm:"uniqueIndex:idx_user_role;not null"`
}

// RoleNames returns the user's role tags in insertion order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}

// PrimaryRole derives the user's default role from the role set.
func (u *User) PrimaryRole() string {
	if len(u.Roles) > 0 {
		return u.Roles[0].Role
	}
	return RoleUser
}

// HasRole reports whether the role set includes the given tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}
