package progress

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// StatsRepo computes derived per-user statistics. Read-only; every call hits
// the progress tables so results always reflect current stored state.
type StatsRepo interface {
	AggregateForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ProgressStats, error)
	TopUsers(ctx context.Context, tx *gorm.DB, limit int) ([]*types.LeaderboardEntry, error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	repoLog := baseLog.With("repo", "StatsRepo")
	return &statsRepo{db: db, log: repoLog}
}

// AggregateForUser returns zeroed stats for a user with no rows (including an
// unknown user id); it never errors on an empty history.
func (sr *statsRepo) AggregateForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ProgressStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	stats := &types.ProgressStats{}

	if err := transaction.WithContext(ctx).
		Model(&types.QuizScore{}).
		Select("COALESCE(AVG(score), 0)").
		Where("user_id = ?", userID).
		Scan(&stats.AvgQuizScore).Error; err != nil {
		return nil, err
	}

	if err := transaction.WithContext(ctx).
		Model(&types.LessonProgress{}).
		Select("COUNT(DISTINCT lesson_id)").
		Where("user_id = ? AND completed = true", userID).
		Scan(&stats.CompletedLessons).Error; err != nil {
		return nil, err
	}

	if err := transaction.WithContext(ctx).
		Model(&types.ScenarioProgress{}).
		Select("COUNT(DISTINCT scenario_id)").
		Where("user_id = ?", userID).
		Scan(&stats.CompletedScenarios).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (sr *statsRepo) TopUsers(ctx context.Context, tx *gorm.DB, limit int) ([]*types.LeaderboardEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.LeaderboardEntry
	err := transaction.WithContext(ctx).Raw(`
		SELECT u.username,
		       COUNT(DISTINCT ulp.lesson_id)   AS completed_lessons,
		       COUNT(DISTINCT up.scenario_id)  AS completed_scenarios,
		       COALESCE(AVG(uqs.score), 0)     AS average_quiz_score
		FROM users u
		LEFT JOIN user_lesson_progress ulp ON u.id = ulp.user_id AND ulp.completed = true
		LEFT JOIN user_progress up ON u.id = up.user_id
		LEFT JOIN user_quiz_scores uqs ON u.id = uqs.user_id
		WHERE u.deleted_at IS NULL
		GROUP BY u.id, u.username
		ORDER BY completed_lessons DESC, completed_scenarios DESC, average_quiz_score DESC
		LIMIT ?`, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
