package content

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ScenarioRepo interface {
	Create(ctx context.Context, tx *gorm.DB, scenarios []*types.Scenario) ([]*types.Scenario, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) ([]*types.Scenario, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Scenario, error)
	Update(ctx context.Context, tx *gorm.DB, scenario *types.Scenario) error
	Delete(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) error
	ListUnattemptedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Scenario, error)
}

type scenarioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScenarioRepo(db *gorm.DB, baseLog *logger.Logger) ScenarioRepo {
	repoLog := baseLog.With("repo", "ScenarioRepo")
	return &scenarioRepo{db: db, log: repoLog}
}

func (sr *scenarioRepo) Create(ctx context.Context, tx *gorm.DB, scenarios []*types.Scenario) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(scenarios) == 0 {
		return []*types.Scenario{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (sr *scenarioRepo) GetByIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Scenario
	if len(scenarioIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Choices").
		Where("id IN ?", scenarioIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *scenarioRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Scenario
	if err := transaction.WithContext(ctx).
		Preload("Choices").
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update rewrites the scenario row only; choices are managed separately by
// ScenarioChoiceRepo so the service can replace them in the same transaction.
func (sr *scenarioRepo) Update(ctx context.Context, tx *gorm.DB, scenario *types.Scenario) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Scenario{}).
		Where("id = ?", scenario.ID).
		Updates(map[string]any{
			"title":       scenario.Title,
			"description": scenario.Description,
			"media_type":  scenario.MediaType,
			"media_url":   scenario.MediaURL,
			"difficulty":  scenario.Difficulty,
		}).Error
}

func (sr *scenarioRepo) Delete(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", scenarioID).
		Delete(&types.Scenario{}).Error
}

// ListUnattemptedBelowDifficulty mirrors the lesson query: hardest scenarios
// at or below maxDifficulty with no attempt row for this user.
func (sr *scenarioRepo) ListUnattemptedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Scenario
	err := transaction.WithContext(ctx).
		Model(&types.Scenario{}).
		Joins("LEFT JOIN user_progress up ON up.scenario_id = scenarios.id AND up.user_id = ?", userID).
		Where("up.id IS NULL").
		Where("scenarios.difficulty <= ?", maxDifficulty).
		Order("scenarios.difficulty DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
