package progress

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type LessonProgressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.LessonProgress) ([]*types.LessonProgress, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.LessonProgress, error)
}

type lessonProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonProgressRepo(db *gorm.DB, baseLog *logger.Logger) LessonProgressRepo {
	repoLog := baseLog.With("repo", "LessonProgressRepo")
	return &lessonProgressRepo{db: db, log: repoLog}
}

func (pr *lessonProgressRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.LessonProgress) ([]*types.LessonProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(records) == 0 {
		return []*types.LessonProgress{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (pr *lessonProgressRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.LessonProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.LessonProgress
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
