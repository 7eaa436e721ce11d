package content

import (
	"context"

	"github.com/google/uuid"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uuid.UUID) ([]*types.Lesson, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Lesson, error)
	Update(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error
	Delete(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error
	ListUncompletedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Lesson, error)
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	repoLog := baseLog.With("repo", "LessonRepo")
	return &lessonRepo{db: db, log: repoLog}
}

func (lr *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(lessons) == 0 {
		return []*types.Lesson{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (lr *lessonRepo) GetByIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uuid.UUID) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.Lesson
	if len(lessonIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", lessonIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *lessonRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.Lesson
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *lessonRepo) Update(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("id = ?", lesson.ID).
		Updates(map[string]any{
			"title":      lesson.Title,
			"content":    lesson.Content,
			"media_type": lesson.MediaType,
			"media_url":  lesson.MediaURL,
			"difficulty": lesson.Difficulty,
		}).Error
}

func (lr *lessonRepo) Delete(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", lessonID).
		Delete(&types.Lesson{}).Error
}

// ListUncompletedBelowDifficulty returns the hardest lessons at or below
// maxDifficulty that the user has no completed-progress row for, hardest
// first, capped at limit.
func (lr *lessonRepo) ListUncompletedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.Lesson
	err := transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Joins("LEFT JOIN user_lesson_progress ulp ON ulp.lesson_id = lessons.id AND ulp.user_id = ? AND ulp.completed = true", userID).
		Where("ulp.id IS NULL").
		Where("lessons.difficulty <= ?", maxDifficulty).
		Order("lessons.difficulty DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
