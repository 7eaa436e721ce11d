package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/torvund/wildskills-backend/internal/http/handlers"
	httpMW "github.com/torvund/wildskills-backend/internal/http/middleware"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	RequestTimeout time.Duration

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler         *httpH.HealthHandler
	AuthHandler           *httpH.AuthHandler
	LessonHandler         *httpH.LessonHandler
	ScenarioHandler       *httpH.ScenarioHandler
	ProgressHandler       *httpH.ProgressHandler
	ProfileHandler        *httpH.ProfileHandler
	LeaderboardHandler    *httpH.LeaderboardHandler
	FeedbackHandler       *httpH.FeedbackHandler
	RecommendationHandler *httpH.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("wildskills-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.RequestTimeout(cfg.RequestTimeout))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Public
	if cfg.AuthHandler != nil {
		r.POST("/register", cfg.AuthHandler.Register)
		r.POST("/login", cfg.AuthHandler.Login)
	}
	if cfg.LessonHandler != nil {
		r.GET("/lessons", cfg.LessonHandler.ListLessons)
	}
	if cfg.ScenarioHandler != nil {
		r.GET("/scenarios", cfg.ScenarioHandler.ListScenarios)
	}
	if cfg.LeaderboardHandler != nil {
		r.GET("/leaderboard", cfg.LeaderboardHandler.GetLeaderboard)
	}

	protected := r.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Content authoring
		if cfg.LessonHandler != nil {
			protected.POST("/lessons", cfg.LessonHandler.CreateLesson)
			protected.PUT("/lessons/:id", cfg.LessonHandler.UpdateLesson)
			protected.DELETE("/lessons/:id", cfg.LessonHandler.DeleteLesson)
		}
		if cfg.ScenarioHandler != nil {
			protected.POST("/scenarios", cfg.ScenarioHandler.CreateScenario)
			protected.PUT("/scenarios/:id", cfg.ScenarioHandler.UpdateScenario)
			protected.DELETE("/scenarios/:id", cfg.ScenarioHandler.DeleteScenario)
		}

		// Progress
		if cfg.ProgressHandler != nil {
			protected.GET("/user-progress/:userId", cfg.ProgressHandler.GetUserProgress)
			protected.POST("/user-progress", cfg.ProgressHandler.RecordScenarioAttempt)
			protected.POST("/lesson-progress", cfg.ProgressHandler.RecordLessonCompletion)
			protected.POST("/quiz-scores", cfg.ProgressHandler.RecordQuizScore)
		}

		// Profile + personalization
		if cfg.ProfileHandler != nil {
			protected.GET("/user-profile", cfg.ProfileHandler.GetProfile)
		}
		if cfg.RecommendationHandler != nil {
			protected.GET("/recommendations", cfg.RecommendationHandler.GetRecommendations)
		}
		if cfg.FeedbackHandler != nil {
			protected.POST("/feedback", cfg.FeedbackHandler.SubmitFeedback)
		}
	}

	return r
}
