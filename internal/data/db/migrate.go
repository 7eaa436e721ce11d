package db

import (
	types "github.com/torvund/wildskills-backend/internal/domain"
)

func (s *PostgresService) AutoMigrateAll() error {
	return s.db.AutoMigrate(

		// =========================
		// Identity
		// =========================
		&types.User{},

		// =========================
		// Content
		// =========================
		&types.Lesson{},
		&types.Scenario{},
		&types.ScenarioChoice{},

		// =========================
		// Progress + feedback
		// =========================
		&types.LessonProgress{},
		&types.ScenarioProgress{},
		&types.QuizScore{},
		&types.Feedback{},
	)
}
