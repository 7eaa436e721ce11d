package domain

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`

	// ContentType is "lesson" or "scenario"; ContentID points into the
	// matching table.
	ContentType string    `gorm:"not null;column:content_type" json:"contentType"`
	ContentID   uuid.UUID `gorm:"type:uuid;not null;column:content_id" json:"contentId"`

	Rating    int       `gorm:"not null;column:rating" json:"rating"`
	Comment   string    `gorm:"type:text;column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }
