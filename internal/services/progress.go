package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	progressrepo "github.com/torvund/wildskills-backend/internal/data/repos/progress"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

// ProgressService records completion events and exposes raw progress rows.
// Records are append-only; nothing here mutates or deletes history.
type ProgressService interface {
	RecordScenarioAttempt(ctx context.Context, attempt *types.ScenarioProgress) (*types.ScenarioProgress, error)
	RecordLessonCompletion(ctx context.Context, record *types.LessonProgress) (*types.LessonProgress, error)
	RecordQuizScore(ctx context.Context, score *types.QuizScore) (*types.QuizScore, error)
	GetScenarioProgress(ctx context.Context, userID uuid.UUID) ([]*types.ScenarioProgress, error)
}

type progressService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	lessonProgressRepo   progressrepo.LessonProgressRepo
	scenarioProgressRepo progressrepo.ScenarioProgressRepo
	quizScoreRepo        progressrepo.QuizScoreRepo
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	lessonProgressRepo progressrepo.LessonProgressRepo,
	scenarioProgressRepo progressrepo.ScenarioProgressRepo,
	quizScoreRepo progressrepo.QuizScoreRepo,
) ProgressService {
	serviceLog := log.With("service", "ProgressService")
	return &progressService{
		db:                   db,
		log:                  serviceLog,
		lessonProgressRepo:   lessonProgressRepo,
		scenarioProgressRepo: scenarioProgressRepo,
		quizScoreRepo:        quizScoreRepo,
	}
}

func (ps *progressService) RecordScenarioAttempt(ctx context.Context, attempt *types.ScenarioProgress) (*types.ScenarioProgress, error) {
	if attempt.UserID == uuid.Nil || attempt.ScenarioID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("user id and scenario id are required"))
	}
	attempt.ID = uuid.New()
	created, err := ps.scenarioProgressRepo.Create(ctx, nil, []*types.ScenarioProgress{attempt})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ps *progressService) RecordLessonCompletion(ctx context.Context, record *types.LessonProgress) (*types.LessonProgress, error) {
	if record.UserID == uuid.Nil || record.LessonID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("user id and lesson id are required"))
	}
	record.ID = uuid.New()
	record.Completed = true
	created, err := ps.lessonProgressRepo.Create(ctx, nil, []*types.LessonProgress{record})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ps *progressService) RecordQuizScore(ctx context.Context, score *types.QuizScore) (*types.QuizScore, error) {
	if score.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("user id is required"))
	}
	if score.Score < 0 || score.Score > 100 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("score must be between 0 and 100"))
	}
	score.ID = uuid.New()
	created, err := ps.quizScoreRepo.Create(ctx, nil, []*types.QuizScore{score})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ps *progressService) GetScenarioProgress(ctx context.Context, userID uuid.UUID) ([]*types.ScenarioProgress, error) {
	return ps.scenarioProgressRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
}
