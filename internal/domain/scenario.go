package domain

import (
	"time"

	"github.com/google/uuid"
)

type Scenario struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	MediaType   string    `gorm:"column:media_type" json:"mediaType"`
	MediaURL    string    `gorm:"column:media_url" json:"mediaUrl"`
	Difficulty  int       `gorm:"not null;default:1;index;column:difficulty" json:"difficulty"`

	Choices []ScenarioChoice `gorm:"foreignKey:ScenarioID" json:"choices,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Scenario) TableName() string { return "scenarios" }

type ScenarioChoice struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ScenarioID uuid.UUID `gorm:"type:uuid;not null;index;column:scenario_id" json:"scenario_id"`
	ChoiceText string    `gorm:"not null;column:choice_text" json:"text"`
	Outcome    string    `gorm:"type:text;column:outcome" json:"outcome"`

	// Survivability scores how likely this choice is to keep the learner
	// alive in the field, 0-100.
	Survivability int `gorm:"not null;default:0;column:survivability" json:"survivability"`
}

func (ScenarioChoice) TableName() string { return "scenario_choices" }
