package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contentrepo "github.com/torvund/wildskills-backend/internal/data/repos/content"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type ScenarioService interface {
	ListScenarios(ctx context.Context) ([]*types.Scenario, error)
	GetScenario(ctx context.Context, scenarioID uuid.UUID) (*types.Scenario, error)
	CreateScenario(ctx context.Context, scenario *types.Scenario) (*types.Scenario, error)
	UpdateScenario(ctx context.Context, scenario *types.Scenario) (*types.Scenario, error)
	DeleteScenario(ctx context.Context, scenarioID uuid.UUID) error
}

type scenarioService struct {
	db           *gorm.DB
	log          *logger.Logger
	scenarioRepo contentrepo.ScenarioRepo
	choiceRepo   contentrepo.ScenarioChoiceRepo
}

func NewScenarioService(
	db *gorm.DB,
	log *logger.Logger,
	scenarioRepo contentrepo.ScenarioRepo,
	choiceRepo contentrepo.ScenarioChoiceRepo,
) ScenarioService {
	serviceLog := log.With("service", "ScenarioService")
	return &scenarioService{
		db:           db,
		log:          serviceLog,
		scenarioRepo: scenarioRepo,
		choiceRepo:   choiceRepo,
	}
}

func (ss *scenarioService) ListScenarios(ctx context.Context) ([]*types.Scenario, error) {
	return ss.scenarioRepo.List(ctx, nil)
}

func (ss *scenarioService) GetScenario(ctx context.Context, scenarioID uuid.UUID) (*types.Scenario, error) {
	scenarios, err := ss.scenarioRepo.GetByIDs(ctx, nil, []uuid.UUID{scenarioID})
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("scenario not found"))
	}
	return scenarios[0], nil
}

// CreateScenario inserts the scenario row and all of its choices in one
// transaction: either everything lands or nothing does.
func (ss *scenarioService) CreateScenario(ctx context.Context, scenario *types.Scenario) (*types.Scenario, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}
	scenario.ID = uuid.New()
	choices := detachChoices(scenario)

	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.scenarioRepo.Create(ctx, tx, []*types.Scenario{scenario}); err != nil {
			return fmt.Errorf("failed to create scenario: %w", err)
		}
		if _, err := ss.choiceRepo.Create(ctx, tx, choices); err != nil {
			return fmt.Errorf("failed to create scenario choices: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	scenario.Choices = reattachChoices(choices)
	return scenario, nil
}

// UpdateScenario replaces the scenario row and its full choice set in one
// transaction.
func (ss *scenarioService) UpdateScenario(ctx context.Context, scenario *types.Scenario) (*types.Scenario, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}
	choices := detachChoices(scenario)

	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ss.scenarioRepo.Update(ctx, tx, scenario); err != nil {
			return fmt.Errorf("failed to update scenario: %w", err)
		}
		if err := ss.choiceRepo.DeleteByScenarioIDs(ctx, tx, []uuid.UUID{scenario.ID}); err != nil {
			return fmt.Errorf("failed to clear scenario choices: %w", err)
		}
		if _, err := ss.choiceRepo.Create(ctx, tx, choices); err != nil {
			return fmt.Errorf("failed to recreate scenario choices: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	scenario.Choices = reattachChoices(choices)
	return scenario, nil
}

func (ss *scenarioService) DeleteScenario(ctx context.Context, scenarioID uuid.UUID) error {
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ss.choiceRepo.DeleteByScenarioIDs(ctx, tx, []uuid.UUID{scenarioID}); err != nil {
			return fmt.Errorf("failed to delete scenario choices: %w", err)
		}
		if err := ss.scenarioRepo.Delete(ctx, tx, scenarioID); err != nil {
			return fmt.Errorf("failed to delete scenario: %w", err)
		}
		return nil
	})
}

func validateScenario(scenario *types.Scenario) error {
	if scenario.Title == "" {
		return apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("a scenario title is required"))
	}
	if scenario.Difficulty < 1 {
		return apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("difficulty must be at least 1"))
	}
	return nil
}

// detachChoices pulls the choice set off the scenario so gorm does not also
// cascade-create it through the association, and stamps ids + parentage.
func detachChoices(scenario *types.Scenario) []*types.ScenarioChoice {
	choices := make([]*types.ScenarioChoice, 0, len(scenario.Choices))
	for i := range scenario.Choices {
		c := scenario.Choices[i]
		c.ID = uuid.New()
		c.ScenarioID = scenario.ID
		choices = append(choices, &c)
	}
	scenario.Choices = nil
	return choices
}

func reattachChoices(choices []*types.ScenarioChoice) []types.ScenarioChoice {
	out := make([]types.ScenarioChoice, 0, len(choices))
	for _, c := range choices {
		out = append(out, *c)
	}
	return out
}
