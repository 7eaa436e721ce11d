package feedback

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type FeedbackRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.Feedback) ([]*types.Feedback, error)
	GetByContent(ctx context.Context, tx *gorm.DB, contentType string, contentID uuid.UUID) ([]*types.Feedback, error)
}

type feedbackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) FeedbackRepo {
	repoLog := baseLog.With("repo", "FeedbackRepo")
	return &feedbackRepo{db: db, log: repoLog}
}

func (fr *feedbackRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.Feedback) ([]*types.Feedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(records) == 0 {
		return []*types.Feedback{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (fr *feedbackRepo) GetByContent(ctx context.Context, tx *gorm.DB, contentType string, contentID uuid.UUID) ([]*types.Feedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.Feedback
	if err := transaction.WithContext(ctx).
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
