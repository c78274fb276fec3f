package models

import (
	"time"

	"gorm.io/gorm"
)

// FAQ is a public question/answer pair managed by admins.
type FAQ struct {
	gorm.Model
	Question string `json:"question" gorm:"not null"`
	Answer   string `json:"answer" gorm:"not null"`
}

// Slider is one homepage carousel entry.
type Slider struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Subtitle    string `json:"subtitle" gorm:"default:''"`
	Description string `json:"description" gorm:"default:''"`
	ImageURL    string `json:"image_url" gorm:"default:''"`
	ButtonText  string `json:"button_text" gorm:"default:''"`
	ButtonLink  string `json:"button_link" gorm:"default:''"`
	IsActive    bool   `json:"is_active" gorm:"not null"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Message string `json:"message" gorm:"not null"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}

// About holds the single rich-text about page. Row id is always 1.
type About struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Content string `json:"content" gorm:"type:text;not null"`
}
