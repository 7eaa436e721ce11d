package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: username,
		Password: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, difficulty int) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		ID:         uuid.New(),
		Title:      title,
		Content:    "content",
		Difficulty: difficulty,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedScenario(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, difficulty int) *types.Scenario {
	tb.Helper()
	s := &types.Scenario{
		ID:          uuid.New(),
		Title:       title,
		Description: "description",
		Difficulty:  difficulty,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed scenario: %v", err)
	}
	return s
}

func SeedLessonCompletion(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, lessonID uuid.UUID) *types.LessonProgress {
	tb.Helper()
	p := &types.LessonProgress{
		ID:        uuid.New(),
		UserID:    userID,
		LessonID:  lessonID,
		Completed: true,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed lesson progress: %v", err)
	}
	return p
}

func SeedScenarioAttempt(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, scenarioID uuid.UUID) *types.ScenarioProgress {
	tb.Helper()
	p := &types.ScenarioProgress{
		ID:         uuid.New(),
		UserID:     userID,
		ScenarioID: scenarioID,
		Outcome:    "survived",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed scenario progress: %v", err)
	}
	return p
}

func SeedQuizScore(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, score float64) *types.QuizScore {
	tb.Helper()
	q := &types.QuizScore{
		ID:     uuid.New(),
		UserID: userID,
		Score:  score,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz score: %v", err)
	}
	return q
}
