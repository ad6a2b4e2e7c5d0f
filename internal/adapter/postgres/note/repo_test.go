package note_test

import (
	"context"
	"errors"
	"testing"

	"github.com/studyhub/backend/internal/adapter/postgres/note"
	"github.com/studyhub/backend/internal/adapter/postgres/testhelper"
	"github.com/studyhub/backend/internal/domain"
)

func TestRepo_CRUD(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := note.New(pool)
	ctx := context.Background()

	accountID := testhelper.SeedAccount(t, pool)

	created, err := repo.Create(ctx, accountID, note.CreateParams{
		Title:   "derivatives",
		Body:    "d/dx",
		Subject: "math",
		Tags:    []string{"calculus"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Favorite {
		t.Error("new note should not be a favorite by default")
	}

	got, err := repo.GetByID(ctx, accountID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "derivatives" || len(got.Tags) != 1 {
		t.Errorf("GetByID = %+v", got)
	}

	fav := true
	updated, err := repo.Update(ctx, accountID, created.ID, note.Patch{Favorite: &fav})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Favorite {
		t.Error("Favorite not set")
	}
	if updated.Body != "d/dx" {
		t.Errorf("unrelated field changed: %q", updated.Body)
	}

	deleted, err := repo.Delete(ctx, accountID, created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}
	if _, err := repo.GetByID(ctx, accountID, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("after delete: got %v, want ErrNotFound", err)
	}
}

func TestRepo_ListFavorites(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := note.New(pool)
	ctx := context.Background()

	accountID := testhelper.SeedAccount(t, pool)

	if _, err := repo.Create(ctx, accountID, note.CreateParams{Title: "plain"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	starred, err := repo.Create(ctx, accountID, note.CreateParams{Title: "starred", Favorite: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	favs, err := repo.ListFavorites(ctx, accountID)
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != starred.ID {
		t.Errorf("ListFavorites = %v", favs)
	}
}

func TestRepo_List_SubjectFilter(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := note.New(pool)
	ctx := context.Background()

	accountID := testhelper.SeedAccount(t, pool)

	for _, subject := range []string{"math", "math", "history"} {
		if _, err := repo.Create(ctx, accountID, note.CreateParams{
			Title:   "n",
			Subject: subject,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	subject := "history"
	list, err := repo.List(ctx, accountID, domain.ListFilter{Subject: &subject})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("filtered length = %d, want 1", len(list))
	}
}
