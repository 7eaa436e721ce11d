package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feedbackrepo "github.com/torvund/wildskills-backend/internal/data/repos/feedback"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error)
}

type feedbackService struct {
	db           *gorm.DB
	log          *logger.Logger
	feedbackRepo feedbackrepo.FeedbackRepo
}

func NewFeedbackService(db *gorm.DB, log *logger.Logger, feedbackRepo feedbackrepo.FeedbackRepo) FeedbackService {
	serviceLog := log.With("service", "FeedbackService")
	return &feedbackService{db: db, log: serviceLog, feedbackRepo: feedbackRepo}
}

func (fs *feedbackService) SubmitFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error) {
	if fb.ContentType != "lesson" && fb.ContentType != "scenario" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("content type must be lesson or scenario"))
	}
	if fb.ContentID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("a content id is required"))
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", fmt.Errorf("rating must be between 1 and 5"))
	}
	fb.ID = uuid.New()
	created, err := fs.feedbackRepo.Create(ctx, nil, []*types.Feedback{fb})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}
