package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type stubStatsRepo struct {
	stats    *types.ProgressStats
	statsErr error
}

func (s *stubStatsRepo) AggregateForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ProgressStats, error) {
	return s.stats, s.statsErr
}

func (s *stubStatsRepo) TopUsers(ctx context.Context, tx *gorm.DB, limit int) ([]*types.LeaderboardEntry, error) {
	return nil, nil
}

type stubLessonRepo struct {
	lessons       []*types.Lesson
	listErr       error
	gotDifficulty int
	gotLimit      int
}

func (s *stubLessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	return lessons, nil
}
func (s *stubLessonRepo) GetByIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uuid.UUID) ([]*types.Lesson, error) {
	return nil, nil
}
func (s *stubLessonRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Lesson, error) {
	return s.lessons, nil
}
func (s *stubLessonRepo) Update(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error {
	return nil
}
func (s *stubLessonRepo) Delete(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error {
	return nil
}
func (s *stubLessonRepo) ListUncompletedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Lesson, error) {
	s.gotDifficulty = maxDifficulty
	s.gotLimit = limit
	return s.lessons, s.listErr
}

type stubScenarioRepo struct {
	scenarios     []*types.Scenario
	listErr       error
	gotDifficulty int
	gotLimit      int
}

func (s *stubScenarioRepo) Create(ctx context.Context, tx *gorm.DB, scenarios []*types.Scenario) ([]*types.Scenario, error) {
	return scenarios, nil
}
func (s *stubScenarioRepo) GetByIDs(ctx context.Context, tx *gorm.DB, scenarioIDs []uuid.UUID) ([]*types.Scenario, error) {
	return nil, nil
}
func (s *stubScenarioRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Scenario, error) {
	return s.scenarios, nil
}
func (s *stubScenarioRepo) Update(ctx context.Context, tx *gorm.DB, scenario *types.Scenario) error {
	return nil
}
func (s *stubScenarioRepo) Delete(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) error {
	return nil
}
func (s *stubScenarioRepo) ListUnattemptedBelowDifficulty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, maxDifficulty, limit int) ([]*types.Scenario, error) {
	s.gotDifficulty = maxDifficulty
	s.gotLimit = limit
	return s.scenarios, s.listErr
}

func testLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestGetRecommendations_CeilingIsLevelPlusOne(t *testing.T) {
	// avg 100, 5 lessons, 5 scenarios -> level 43, ceiling 44.
	stats := &stubStatsRepo{stats: &types.ProgressStats{
		AvgQuizScore:       100,
		CompletedLessons:   5,
		CompletedScenarios: 5,
	}}
	lessons := &stubLessonRepo{lessons: []*types.Lesson{{ID: uuid.New()}}}
	scenarios := &stubScenarioRepo{}
	svc := NewRecommendationService(nil, testLog(t), stats, lessons, scenarios)

	gotLessons, gotScenarios, err := svc.GetRecommendations(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if lessons.gotDifficulty != 44 || scenarios.gotDifficulty != 44 {
		t.Fatalf("expected difficulty ceiling 44, got lessons=%d scenarios=%d", lessons.gotDifficulty, scenarios.gotDifficulty)
	}
	if lessons.gotLimit != 3 || scenarios.gotLimit != 3 {
		t.Fatalf("expected limit 3, got lessons=%d scenarios=%d", lessons.gotLimit, scenarios.gotLimit)
	}
	if len(gotLessons) != 1 || len(gotScenarios) != 0 {
		t.Fatalf("unexpected recommendation counts: %d lessons, %d scenarios", len(gotLessons), len(gotScenarios))
	}
}

func TestGetRecommendations_FreshUserGetsDifficultyOne(t *testing.T) {
	stats := &stubStatsRepo{stats: &types.ProgressStats{}}
	lessons := &stubLessonRepo{}
	scenarios := &stubScenarioRepo{}
	svc := NewRecommendationService(nil, testLog(t), stats, lessons, scenarios)

	if _, _, err := svc.GetRecommendations(context.Background(), uuid.New()); err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if lessons.gotDifficulty != 1 {
		t.Fatalf("expected ceiling 1 for a fresh user, got %d", lessons.gotDifficulty)
	}
}

func TestGetRecommendations_StatsErrorAborts(t *testing.T) {
	stats := &stubStatsRepo{statsErr: errors.New("aggregate blew up")}
	svc := NewRecommendationService(nil, testLog(t), stats, &stubLessonRepo{}, &stubScenarioRepo{})

	_, _, err := svc.GetRecommendations(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected stats error to propagate")
	}
}

func TestGetRecommendations_NoPartialResultsOnScenarioError(t *testing.T) {
	stats := &stubStatsRepo{stats: &types.ProgressStats{}}
	lessons := &stubLessonRepo{lessons: []*types.Lesson{{ID: uuid.New()}}}
	scenarios := &stubScenarioRepo{listErr: errors.New("scenario query failed")}
	svc := NewRecommendationService(nil, testLog(t), stats, lessons, scenarios)

	gotLessons, gotScenarios, err := svc.GetRecommendations(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected error when the scenario query fails")
	}
	if gotLessons != nil || gotScenarios != nil {
		t.Fatalf("expected no partial results, got %v / %v", gotLessons, gotScenarios)
	}
}
