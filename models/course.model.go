package models

import "gorm.io/gorm"

// Course represents a purchasable course offering
type Course struct {
	gorm.Model
	Title           string  `json:"title" gorm:"uniqueIndex;not null"`
	Description     string  `json:"description" gorm:"not null"`
	Price           float64 `json:"price" gorm:"not null"`
	Duration        string  `json:"duration" gorm:"default:''"`
	Level           string  `json:"level" gorm:"default:''"`
	ImageURL        string  `json:"image_url" gorm:"default:''"`
	EnrollmentLimit int     `json:"enrollment_limit" gorm:"default:0"` // 0 = unlimited
	IsVisible       bool    `json:"is_visible" gorm:"not null"`
}
