package domain

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress marks a lesson as completed by a user. Rows are append-only:
// created when the user finishes a lesson, never mutated or deleted by users.
type LessonProgress struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_id" json:"lessonId"`
	Completed bool      `gorm:"not null;default:false;column:completed" json:"completed"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (LessonProgress) TableName() string { return "user_lesson_progress" }

// ScenarioProgress records one scenario attempt and the choice taken.
type ScenarioProgress struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	ScenarioID uuid.UUID `gorm:"type:uuid;not null;index;column:scenario_id" json:"scenarioId"`
	ChoiceID   uuid.UUID `gorm:"type:uuid;column:choice_id" json:"choiceId"`
	Outcome    string    `gorm:"type:text;column:outcome" json:"outcome"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ScenarioProgress) TableName() string { return "user_progress" }

type QuizScore struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	Score     float64   `gorm:"not null;column:score" json:"score"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (QuizScore) TableName() string { return "user_quiz_scores" }

// ProgressStats is derived per request from the progress tables and never
// persisted, so it always reflects current stored state.
type ProgressStats struct {
	AvgQuizScore       float64 `json:"averageQuizScore"`
	CompletedLessons   int64   `json:"completedLessons"`
	CompletedScenarios int64   `json:"completedScenarios"`
}

type LeaderboardEntry struct {
	Username           string  `json:"username"`
	CompletedLessons   int64   `json:"completed_lessons"`
	CompletedScenarios int64   `json:"completed_scenarios"`
	AverageQuizScore   float64 `json:"average_quiz_score"`
}
