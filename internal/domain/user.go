package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password         string    `gorm:"not null;column:password" json:"-"`
	SecurityQuestion string    `gorm:"column:security_question" json:"security_question"`
	SecurityAnswer   string    `gorm:"column:security_answer" json:"-"`
	IsAdmin          bool      `gorm:"not null;default:false;column:is_admin" json:"is_admin"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "users" }

// PublicUser is the identity shape embedded in login responses and token
// claims. Never includes the password or security answer.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
