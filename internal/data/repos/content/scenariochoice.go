package content

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ScenarioChoiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, choices []*types.ScenarioChoice) ([]*types.ScenarioChoice, error)
	GetByScenarioIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) ([]*types.ScenarioChoice, error)
	DeleteByScenarioIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) error
}

type scenarioChoiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScenarioChoiceRepo(db *gorm.DB, baseLog *logger.Logger) ScenarioChoiceRepo {
	repoLog := baseLog.With("repo", "ScenarioChoiceRepo")
	return &scenarioChoiceRepo{db: db, log: repoLog}
}

func (cr *scenarioChoiceRepo) Create(ctx context.Context, tx *gorm.DB, choices []*types.ScenarioChoice) ([]*types.ScenarioChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(choices) == 0 {
		return []*types.ScenarioChoice{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (cr *scenarioChoiceRepo) GetByScenarioIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) ([]*types.ScenarioChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.ScenarioChoice
	if len(scenarioIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("scenario_id IN ?", scenarioIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *scenarioChoiceRepo) DeleteByScenarioIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(scenarioIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("scenario_id IN ?", scenarioIDs).
		Delete(&types.ScenarioChoice{}).Error
}
