package services

import (
	"context"

	"gorm.io/gorm"

	progressrepo "github.com/torvund/wildskills-backend/internal/data/repos/progress"
	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

const leaderboardSize = 10

type LeaderboardService interface {
	TopUsers(ctx context.Context) ([]*types.LeaderboardEntry, error)
}

type leaderboardService struct {
	db        *gorm.DB
	log       *logger.Logger
	statsRepo progressrepo.StatsRepo
}

func NewLeaderboardService(db *gorm.DB, log *logger.Logger, statsRepo progressrepo.StatsRepo) LeaderboardService {
	serviceLog := log.With("service", "LeaderboardService")
	return &leaderboardService{db: db, log: serviceLog, statsRepo: statsRepo}
}

func (ls *leaderboardService) TopUsers(ctx context.Context) ([]*types.LeaderboardEntry, error) {
	return ls.statsRepo.TopUsers(ctx, nil, leaderboardSize)
}
