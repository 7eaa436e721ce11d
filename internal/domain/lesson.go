package domain

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Content   string    `gorm:"type:text;column:content" json:"content"`
	MediaType string    `gorm:"column:media_type" json:"mediaType"`
	MediaURL  string    `gorm:"column:media_url" json:"mediaUrl"`

	// Difficulty is an integer tier; recommendation filters on it.
	Difficulty int `gorm:"not null;default:1;index;column:difficulty" json:"difficulty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Lesson) TableName() string { return "lessons" }
