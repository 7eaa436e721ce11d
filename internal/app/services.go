package app

import (
	"gorm.io/gorm"

	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"github.com/torvund/wildskills-backend/internal/services"
)

type Services struct {
	Auth           services.AuthService
	Lesson         services.LessonService
	Scenario       services.ScenarioService
	Progress       services.ProgressService
	Profile        services.ProfileService
	Recommendation services.RecommendationService
	Leaderboard    services.LeaderboardService
	Feedback       services.FeedbackService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:           services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Lesson:         services.NewLessonService(db, log, repos.Lesson),
		Scenario:       services.NewScenarioService(db, log, repos.Scenario, repos.ScenarioChoice),
		Progress:       services.NewProgressService(db, log, repos.LessonProgress, repos.ScenarioProgress, repos.QuizScore),
		Profile:        services.NewProfileService(db, log, repos.User, repos.Stats),
		Recommendation: services.NewRecommendationService(db, log, repos.Stats, repos.Lesson, repos.Scenario),
		Leaderboard:    services.NewLeaderboardService(db, log, repos.Stats),
		Feedback:       services.NewFeedbackService(db, log, repos.Feedback),
	}
}
