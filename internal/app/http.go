package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/torvund/wildskills-backend/internal/http"
	httpH "github.com/torvund/wildskills-backend/internal/http/handlers"
	httpMW "github.com/torvund/wildskills-backend/internal/http/middleware"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Auth           *httpH.AuthHandler
	Lesson         *httpH.LessonHandler
	Scenario       *httpH.ScenarioHandler
	Progress       *httpH.ProgressHandler
	Profile        *httpH.ProfileHandler
	Leaderboard    *httpH.LeaderboardHandler
	Feedback       *httpH.FeedbackHandler
	Recommendation *httpH.RecommendationHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(),
		Auth:           httpH.NewAuthHandler(svcs.Auth),
		Lesson:         httpH.NewLessonHandler(svcs.Lesson),
		Scenario:       httpH.NewScenarioHandler(svcs.Scenario),
		Progress:       httpH.NewProgressHandler(svcs.Progress),
		Profile:        httpH.NewProfileHandler(svcs.Profile),
		Leaderboard:    httpH.NewLeaderboardHandler(svcs.Leaderboard),
		Feedback:       httpH.NewFeedbackHandler(svcs.Feedback),
		Recommendation: httpH.NewRecommendationHandler(svcs.Recommendation),
	}
}

func wireRouter(log *logger.Logger, cfg Config, svcs Services, h Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:            log,
		RequestTimeout: cfg.RequestTimeout,

		AuthMiddleware: httpMW.NewAuthMiddleware(log, svcs.Auth),

		HealthHandler:         h.Health,
		AuthHandler:           h.Auth,
		LessonHandler:         h.Lesson,
		ScenarioHandler:       h.Scenario,
		ProgressHandler:       h.Progress,
		ProfileHandler:        h.Profile,
		LeaderboardHandler:    h.Leaderboard,
		FeedbackHandler:       h.Feedback,
		RecommendationHandler: h.Recommendation,
	})
}
