package progress

import (
	"context"
	"testing"

	"github.com/torvund/wildskills-backend/internal/data/repos/testutil"
)

func TestAggregateForUser_ZeroHistory(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "rookie")

	stats, err := repo.AggregateForUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("AggregateForUser: %v", err)
	}
	if stats.AvgQuizScore != 0 || stats.CompletedLessons != 0 || stats.CompletedScenarios != 0 {
		t.Fatalf("expected all-zero stats for a fresh user, got %+v", stats)
	}
}

func TestAggregateForUser_CountsAndAverages(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "ranger")
	l1 := testutil.SeedLesson(t, ctx, tx, "knots", 1)
	l2 := testutil.SeedLesson(t, ctx, tx, "navigation", 2)
	s1 := testutil.SeedScenario(t, ctx, tx, "lost at night", 1)

	testutil.SeedLessonCompletion(t, ctx, tx, user.ID, l1.ID)
	testutil.SeedLessonCompletion(t, ctx, tx, user.ID, l2.ID)
	testutil.SeedScenarioAttempt(t, ctx, tx, user.ID, s1.ID)
	testutil.SeedQuizScore(t, ctx, tx, user.ID, 80)
	testutil.SeedQuizScore(t, ctx, tx, user.ID, 90)

	stats, err := repo.AggregateForUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("AggregateForUser: %v", err)
	}
	if stats.CompletedLessons != 2 {
		t.Fatalf("expected 2 completed lessons, got %d", stats.CompletedLessons)
	}
	if stats.CompletedScenarios != 1 {
		t.Fatalf("expected 1 completed scenario, got %d", stats.CompletedScenarios)
	}
	if stats.AvgQuizScore != 85 {
		t.Fatalf("expected average quiz score 85, got %f", stats.AvgQuizScore)
	}
}

func TestAggregateForUser_DuplicateCompletionsCountOnce(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "repeater")
	lesson := testutil.SeedLesson(t, ctx, tx, "fire", 1)

	testutil.SeedLessonCompletion(t, ctx, tx, user.ID, lesson.ID)
	testutil.SeedLessonCompletion(t, ctx, tx, user.ID, lesson.ID)

	stats, err := repo.AggregateForUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("AggregateForUser: %v", err)
	}
	if stats.CompletedLessons != 1 {
		t.Fatalf("expected duplicate completions of one lesson to count once, got %d", stats.CompletedLessons)
	}
}

func TestTopUsers_OrderingAndLimit(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	leader := testutil.SeedUser(t, ctx, tx, "leader")
	runnerUp := testutil.SeedUser(t, ctx, tx, "runnerup")
	testutil.SeedUser(t, ctx, tx, "idle")

	l1 := testutil.SeedLesson(t, ctx, tx, "a", 1)
	l2 := testutil.SeedLesson(t, ctx, tx, "b", 1)
	s1 := testutil.SeedScenario(t, ctx, tx, "s", 1)

	testutil.SeedLessonCompletion(t, ctx, tx, leader.ID, l1.ID)
	testutil.SeedLessonCompletion(t, ctx, tx, leader.ID, l2.ID)
	testutil.SeedScenarioAttempt(t, ctx, tx, leader.ID, s1.ID)
	testutil.SeedQuizScore(t, ctx, tx, leader.ID, 95)

	testutil.SeedLessonCompletion(t, ctx, tx, runnerUp.ID, l1.ID)
	testutil.SeedQuizScore(t, ctx, tx, runnerUp.ID, 99)

	entries, err := repo.TopUsers(ctx, tx, 10)
	if err != nil {
		t.Fatalf("TopUsers: %v", err)
	}
	if len(entries) < 3 {
		t.Fatalf("expected at least 3 entries, got %d", len(entries))
	}
	if entries[0].Username != "leader" {
		t.Fatalf("expected leader first, got %q", entries[0].Username)
	}
	if entries[1].Username != "runnerup" {
		t.Fatalf("expected runnerup second, got %q", entries[1].Username)
	}

	limited, err := repo.TopUsers(ctx, tx, 1)
	if err != nil {
		t.Fatalf("TopUsers: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit 1 to return a single entry, got %d", len(limited))
	}
}

func TestTopUsers_IdleUserHasZeroStats(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, ctx, tx, "idle")

	entries, err := repo.TopUsers(ctx, tx, 10)
	if err != nil {
		t.Fatalf("TopUsers: %v", err)
	}
	for _, e := range entries {
		if e.Username != "idle" {
			continue
		}
		if e.CompletedLessons != 0 || e.CompletedScenarios != 0 || e.AverageQuizScore != 0 {
			t.Fatalf("expected zero stats for idle user, got %+v", e)
		}
		return
	}
	t.Fatalf("idle user missing from leaderboard")
}
