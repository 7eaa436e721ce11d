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

type LessonService interface {
	ListLessons(ctx context.Context) ([]*types.Lesson, error)
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*types.Lesson, error)
	CreateLesson(ctx context.Context, lesson *types.Lesson) (*types.Lesson, error)
	UpdateLesson(ctx context.Context, lesson *types.Lesson) (*types.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error
}

type lessonService struct {
	db         *gorm.DB
	log        *logger.Logger
	lessonRepo contentrepo.LessonRepo
}

func NewLessonService(db *gorm.DB, log *logger.Logger, lessonRepo contentrepo.LessonRepo) LessonService {
	serviceLog := log.With("service", "LessonService")
	return &lessonService{db: db, log: serviceLog, lessonRepo: lessonRepo}
}

func (ls *lessonService) ListLessons(ctx context.Context) ([]*types.Lesson, error) {
	return ls.lessonRepo.List(ctx, nil)
}

func (ls *lessonService) GetLesson(ctx context.Context, lessonID uuid.UUID) (*types.Lesson, error) {
	lessons, err := ls.lessonRepo.GetByIDs(ctx, nil, []uuid.UUID{lessonID})
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("lesson not found"))
	}
	return lessons[0], nil
}

func (ls *lessonService) CreateLesson(ctx context.Context, lesson *types.Lesson) (*types.Lesson, error) {
	if err := validateLesson(lesson); err != nil {
		return nil, err
	}
	lesson.ID = uuid.New()
	created, err := ls.lessonRepo.Create(ctx, nil, []*types.Lesson{lesson})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ls *lessonService) UpdateLesson(ctx context.Context, lesson *types.Lesson) (*types.Lesson, error) {
	if err := validateLesson(lesson); err != nil {
		return nil, err
	}
	if err := ls.lessonRepo.Update(ctx, nil, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (ls *lessonService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	return ls.lessonRepo.Delete(ctx, nil, lessonID)
}

func validateLesson(lesson *types.Lesson) error {
	if lesson.Title == "" {
		return apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("a lesson title is required"))
	}
	if lesson.Difficulty < 1 {
		return apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("difficulty must be at least 1"))
	}
	return nil
}
