package progress

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ScenarioProgressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.ScenarioProgress) ([]*types.ScenarioProgress, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.ScenarioProgress, error)
}

type scenarioProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScenarioProgressRepo(db *gorm.DB, baseLog *logger.Logger) ScenarioProgressRepo {
	repoLog := baseLog.With("repo", "ScenarioProgressRepo")
	return &scenarioProgressRepo{db: db, log: repoLog}
}

func (pr *scenarioProgressRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.ScenarioProgress) ([]*types.ScenarioProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(records) == 0 {
		return []*types.ScenarioProgress{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (pr *scenarioProgressRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.ScenarioProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.ScenarioProgress
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
