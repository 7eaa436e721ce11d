package progress

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type QuizScoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, scores []*types.QuizScore) ([]*types.QuizScore, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.QuizScore, error)
}

type quizScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizScoreRepo(db *gorm.DB, baseLog *logger.Logger) QuizScoreRepo {
	repoLog := baseLog.With("repo", "QuizScoreRepo")
	return &quizScoreRepo{db: db, log: repoLog}
}

func (qr *quizScoreRepo) Create(ctx context.Context, tx *gorm.DB, scores []*types.QuizScore) ([]*types.QuizScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(scores) == 0 {
		return []*types.QuizScore{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (qr *quizScoreRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.QuizScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.QuizScore
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
