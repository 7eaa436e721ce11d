package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contentrepo "github.com/torvund/wildskills-backend/internal/data/repos/content"
	progressrepo "github.com/torvund/wildskills-backend/internal/data/repos/progress"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

// recommendationLimit caps each recommendation list.
const recommendationLimit = 3

// RecommendationService picks the hardest content a user can currently
// handle: aggregate stats -> level -> per-type queries with a difficulty
// ceiling of level+1, excluding anything already completed or attempted.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]*types.Lesson, []*types.Scenario, error)
}

type recommendationService struct {
	db           *gorm.DB
	log          *logger.Logger
	statsRepo    progressrepo.StatsRepo
	lessonRepo   contentrepo.LessonRepo
	scenarioRepo contentrepo.ScenarioRepo
}

func NewRecommendationService(
	db *gorm.DB,
	log *logger.Logger,
	statsRepo progressrepo.StatsRepo,
	lessonRepo contentrepo.LessonRepo,
	scenarioRepo contentrepo.ScenarioRepo,
) RecommendationService {
	serviceLog := log.With("service", "RecommendationService")
	return &recommendationService{
		db:           db,
		log:          serviceLog,
		statsRepo:    statsRepo,
		lessonRepo:   lessonRepo,
		scenarioRepo: scenarioRepo,
	}
}

// GetRecommendations is all-or-nothing: if either content query fails, the
// caller gets an error and no partial lists.
func (rs *recommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]*types.Lesson, []*types.Scenario, error) {
	stats, err := rs.statsRepo.AggregateForUser(ctx, nil, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate progress: %w", err)
	}

	level := LevelFromStats(stats)
	maxDifficulty := level + 1

	lessons, err := rs.lessonRepo.ListUncompletedBelowDifficulty(ctx, nil, userID, maxDifficulty, recommendationLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch recommended lessons: %w", err)
	}

	scenarios, err := rs.scenarioRepo.ListUnattemptedBelowDifficulty(ctx, nil, userID, maxDifficulty, recommendationLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch recommended scenarios: %w", err)
	}

	rs.log.Debug("Recommendations computed",
		"user_id", userID.String(),
		"level", level,
		"lessons", len(lessons),
		"scenarios", len(scenarios),
	)
	return lessons, scenarios, nil
}
