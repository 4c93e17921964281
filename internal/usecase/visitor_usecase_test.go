package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"towdispatch/internal/adapter/persistence/repository"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func TestVisitorUseCase_Track(t *testing.T) {
	t.Run("creates then updates a session", func(t *testing.T) {
		repo := repository.NewVisitorKVRepository(kvstore.NewMemoryStore())
		uc := NewVisitorUseCase(repo, time.Hour)
		ctx := context.Background()

		id := uc.Track(ctx, VisitInput{Page: "/", Source: "google", UserAgent: "test"})
		if id == "" {
			t.Fatalf("expected a visitor id")
		}
		if again := uc.Track(ctx, VisitInput{VisitorID: id, Page: "/book", Source: "facebook"}); again != id {
			t.Fatalf("expected same id, got %s", again)
		}

		s, err := repo.Get(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.PageViews != 2 || s.LandingPage != "/" || s.Source != "google" {
			t.Fatalf("unexpected session: %+v", s)
		}
		if len(s.Pages) != 2 || s.Pages[1] != "/book" {
			t.Fatalf("unexpected pages: %v", s.Pages)
		}
	})

	t.Run("page trail is bounded", func(t *testing.T) {
		repo := repository.NewVisitorKVRepository(kvstore.NewMemoryStore())
		uc := NewVisitorUseCase(repo, time.Hour)
		ctx := context.Background()

		id := uc.Track(ctx, VisitInput{Page: "/page-0"})
		for i := 1; i < 25; i++ {
			uc.Track(ctx, VisitInput{VisitorID: id, Page: fmt.Sprintf("/page-%d", i)})
		}
		s, err := repo.Get(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Pages) != entities.MaxVisitorPages || s.Pages[len(s.Pages)-1] != "/page-24" || s.PageViews != 25 {
			t.Fatalf("unexpected session: views=%d pages=%v", s.PageViews, s.Pages)
		}
	})

	t.Run("storage errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVisitorRepository(ctrl)
		uc := NewVisitorUseCase(repo, time.Hour)

		repo.EXPECT().Get(gomock.Any(), "v-1").Return(entities.VisitorSession{}, errors.New("kv down"))
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), time.Hour).Return(errors.New("kv down"))

		if id := uc.Track(context.Background(), VisitInput{VisitorID: "v-1"}); id != "v-1" {
			t.Fatalf("expected v-1, got %s", id)
		}
	})
}

func TestVisitorUseCase_Stats(t *testing.T) {
	repo := repository.NewVisitorKVRepository(kvstore.NewMemoryStore())
	uc := NewVisitorUseCase(repo, time.Hour)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	uc.now = fixedClock(t0)
	uc.Track(ctx, VisitInput{VisitorID: "old"})
	uc.now = fixedClock(t0.Add(90 * time.Minute))
	uc.Track(ctx, VisitInput{VisitorID: "mid"})
	uc.now = fixedClock(t0.Add(2 * time.Hour))
	uc.Track(ctx, VisitInput{VisitorID: "new"})

	stats, err := uc.Stats(ctx, 15*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Pruned != 1 || stats.Tracked != 2 || stats.Active != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
