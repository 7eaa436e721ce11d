package content

import (
	"context"
	"testing"

	"github.com/torvund/wildskills-backend/internal/data/repos/testutil"
)

func TestListUncompletedBelowDifficulty_ExcludesCompleted(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLessonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "hiker")
	done := testutil.SeedLesson(t, ctx, tx, "fire basics", 1)
	open := testutil.SeedLesson(t, ctx, tx, "water purification", 1)
	testutil.SeedLessonCompletion(t, ctx, tx, user.ID, done.ID)

	got, err := repo.ListUncompletedBelowDifficulty(ctx, tx, user.ID, 5, 10)
	if err != nil {
		t.Fatalf("ListUncompletedBelowDifficulty: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(got))
	}
	if got[0].ID != open.ID {
		t.Fatalf("expected the open lesson, got %q", got[0].Title)
	}
}

func TestListUncompletedBelowDifficulty_RespectsCeiling(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLessonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "hiker")
	testutil.SeedLesson(t, ctx, tx, "easy", 1)
	testutil.SeedLesson(t, ctx, tx, "medium", 2)
	testutil.SeedLesson(t, ctx, tx, "too hard", 3)

	got, err := repo.ListUncompletedBelowDifficulty(ctx, tx, user.ID, 2, 10)
	if err != nil {
		t.Fatalf("ListUncompletedBelowDifficulty: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lessons at or below difficulty 2, got %d", len(got))
	}
	for _, l := range got {
		if l.Difficulty > 2 {
			t.Fatalf("lesson %q exceeds ceiling: difficulty %d", l.Title, l.Difficulty)
		}
	}
}

func TestListUncompletedBelowDifficulty_HardestFirstAndLimited(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLessonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "hiker")
	testutil.SeedLesson(t, ctx, tx, "d1", 1)
	testutil.SeedLesson(t, ctx, tx, "d2", 2)
	testutil.SeedLesson(t, ctx, tx, "d3", 3)
	testutil.SeedLesson(t, ctx, tx, "d4", 4)

	got, err := repo.ListUncompletedBelowDifficulty(ctx, tx, user.ID, 10, 3)
	if err != nil {
		t.Fatalf("ListUncompletedBelowDifficulty: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Difficulty < got[i].Difficulty {
			t.Fatalf("expected hardest first, got difficulties %d then %d", got[i-1].Difficulty, got[i].Difficulty)
		}
	}
	if got[0].Difficulty != 4 {
		t.Fatalf("expected the hardest lesson first, got difficulty %d", got[0].Difficulty)
	}
}

func TestListUncompletedBelowDifficulty_OtherUsersProgressIgnored(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLessonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice")
	bob := testutil.SeedUser(t, ctx, tx, "bob")
	lesson := testutil.SeedLesson(t, ctx, tx, "shelter", 1)
	testutil.SeedLessonCompletion(t, ctx, tx, bob.ID, lesson.ID)

	got, err := repo.ListUncompletedBelowDifficulty(ctx, tx, alice.ID, 5, 10)
	if err != nil {
		t.Fatalf("ListUncompletedBelowDifficulty: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected bob's completion not to hide the lesson from alice, got %d lessons", len(got))
	}
}
