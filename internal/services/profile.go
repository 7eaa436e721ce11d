package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	progressrepo "github.com/torvund/wildskills-backend/internal/data/repos/progress"
	userrepo "github.com/torvund/wildskills-backend/internal/data/repos/user"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/apierr"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

// ProfileService assembles a user's profile view: the user row plus stats
// aggregated fresh from the progress tables on every call.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, *types.ProgressStats, error)
}

type profileService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  userrepo.UserRepo
	statsRepo progressrepo.StatsRepo
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	statsRepo progressrepo.StatsRepo,
) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{db: db, log: serviceLog, userRepo: userRepo, statsRepo: statsRepo}
}

func (ps *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, *types.ProgressStats, error) {
	users, err := ps.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if len(users) == 0 {
		return nil, nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("user not found"))
	}

	stats, err := ps.statsRepo.AggregateForUser(ctx, nil, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate progress: %w", err)
	}
	return users[0], stats, nil
}
