package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/torvund/wildskills-backend/internal/data/repos/testutil"
	types "github.com/torvund/wildskills-backend/internal/domain"
)

func TestUserRepo_CreateAndFetch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.User{{
		ID:       uuid.New(),
		Username: "bear",
		Password: "hashed",
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 created user, got %d", len(created))
	}

	byID, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(byID) != 1 || byID[0].Username != "bear" {
		t.Fatalf("unexpected GetByIDs result: %+v", byID)
	}

	byName, err := repo.GetByUsernames(ctx, tx, []string{"bear"})
	if err != nil {
		t.Fatalf("GetByUsernames: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != created[0].ID {
		t.Fatalf("unexpected GetByUsernames result: %+v", byName)
	}
}

func TestUserRepo_UsernameExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, ctx, tx, "taken")

	exists, err := repo.UsernameExists(ctx, tx, "taken")
	if err != nil {
		t.Fatalf("UsernameExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected username to exist")
	}

	exists, err = repo.UsernameExists(ctx, tx, "free")
	if err != nil {
		t.Fatalf("UsernameExists: %v", err)
	}
	if exists {
		t.Fatalf("expected username to be free")
	}
}

func TestUserRepo_EmptyInputsReturnEmpty(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	got, err := repo.GetByIDs(ctx, nil, nil)
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for empty id list, got %d", len(got))
	}
}
