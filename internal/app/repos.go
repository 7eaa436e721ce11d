package app

import (
	"gorm.io/gorm"

	contentrepo "github.com/torvund/wildskills-backend/internal/data/repos/content"
	feedbackrepo "github.com/torvund/wildskills-backend/internal/data/repos/feedback"
	progressrepo "github.com/torvund/wildskills-backend/internal/data/repos/progress"
	userrepo "github.com/torvund/wildskills-backend/internal/data/repos/user"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type Repos struct {
	User             userrepo.UserRepo
	Lesson           contentrepo.LessonRepo
	Scenario         contentrepo.ScenarioRepo
	ScenarioChoice   contentrepo.ScenarioChoiceRepo
	LessonProgress   progressrepo.LessonProgressRepo
	ScenarioProgress progressrepo.ScenarioProgressRepo
	QuizScore        progressrepo.QuizScoreRepo
	Stats            progressrepo.StatsRepo
	Feedback         feedbackrepo.FeedbackRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             userrepo.NewUserRepo(db, log),
		Lesson:           contentrepo.NewLessonRepo(db, log),
		Scenario:         contentrepo.NewScenarioRepo(db, log),
		ScenarioChoice:   contentrepo.NewScenarioChoiceRepo(db, log),
		LessonProgress:   progressrepo.NewLessonProgressRepo(db, log),
		ScenarioProgress: progressrepo.NewScenarioProgressRepo(db, log),
		QuizScore:        progressrepo.NewQuizScoreRepo(db, log),
		Stats:            progressrepo.NewStatsRepo(db, log),
		Feedback:         feedbackrepo.NewFeedbackRepo(db, log),
	}
}
