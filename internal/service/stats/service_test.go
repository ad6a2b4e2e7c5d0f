package stats

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/pkg/ctxutil"
)

type counterMock struct {
	CountByAccountFunc func(ctx context.Context, accountID uuid.UUID) (int, error)
}

func (m *counterMock) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	if m.CountByAccountFunc == nil {
		panic("counterMock.CountByAccountFunc: method is nil but counter.CountByAccount was just called")
	}
	return m.CountByAccountFunc(ctx, accountID)
}

type txManagerMock struct {
	RunInRepeatableReadFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInRepeatableReadFunc == nil {
		panic("txManagerMock.RunInRepeatableReadFunc: method is nil but txManager.RunInRepeatableRead was just called")
	}
	return m.RunInRepeatableReadFunc(ctx, fn)
}

func fixedCounter(n int) *counterMock {
	return &counterMock{
		CountByAccountFunc: func(ctx context.Context, accountID uuid.UUID) (int, error) {
			return n, nil
		},
	}
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInRepeatableReadFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetUsageStats_Arithmetic(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		fixedCounter(3), // documents
		fixedCounter(4), // summaries
		fixedCounter(5), // notes
		fixedCounter(2), // flashcards
		passthroughTx(),
	)

	ctx := ctxutil.WithTenantID(context.Background(), uuid.New())

	stats, err := svc.GetUsageStats(ctx)
	if err != nil {
		t.Fatalf("GetUsageStats: %v", err)
	}

	if stats.DocumentCount != 3 || stats.SummaryCount != 4 ||
		stats.NoteCount != 5 || stats.FlashcardCount != 2 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.TotalItems != 14 {
		t.Errorf("TotalItems = %d, want 14", stats.TotalItems)
	}
	if stats.EstimatedMinutesSaved != 60 {
		t.Errorf("EstimatedMinutesSaved = %d, want 60", stats.EstimatedMinutesSaved)
	}
	if stats.UtilizationPercent != 70 {
		t.Errorf("UtilizationPercent = %d, want 70", stats.UtilizationPercent)
	}
}

func TestGetUsageStats_UtilizationCapped(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		fixedCounter(50), fixedCounter(50), fixedCounter(50), fixedCounter(50),
		passthroughTx(),
	)

	ctx := ctxutil.WithTenantID(context.Background(), uuid.New())

	stats, err := svc.GetUsageStats(ctx)
	if err != nil {
		t.Fatalf("GetUsageStats: %v", err)
	}
	if stats.UtilizationPercent != 100 {
		t.Errorf("UtilizationPercent = %d, want 100", stats.UtilizationPercent)
	}
}

func TestGetUsageStats_Empty(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		fixedCounter(0), fixedCounter(0), fixedCounter(0), fixedCounter(0),
		passthroughTx(),
	)

	ctx := ctxutil.WithTenantID(context.Background(), uuid.New())

	stats, err := svc.GetUsageStats(ctx)
	if err != nil {
		t.Fatalf("GetUsageStats: %v", err)
	}
	if stats != (domain.UsageStats{}) {
		t.Errorf("empty account stats = %+v, want zero value", stats)
	}
}

func TestGetUsageStats_MissingTenant(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(),
		fixedCounter(1), fixedCounter(1), fixedCounter(1), fixedCounter(1),
		passthroughTx(),
	)

	_, err := svc.GetUsageStats(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestGetUsageStats_AllCountsInsideSnapshot(t *testing.T) {
	t.Parallel()

	inTx := false
	calls := 0

	tx := &txManagerMock{
		RunInRepeatableReadFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx)
		},
	}
	counting := &counterMock{
		CountByAccountFunc: func(ctx context.Context, accountID uuid.UUID) (int, error) {
			if !inTx {
				t.Error("count executed outside the snapshot transaction")
			}
			calls++
			return 1, nil
		},
	}

	svc := NewService(testLogger(), counting, counting, counting, counting, tx)

	ctx := ctxutil.WithTenantID(context.Background(), uuid.New())
	if _, err := svc.GetUsageStats(ctx); err != nil {
		t.Fatalf("GetUsageStats: %v", err)
	}
	if calls != 4 {
		t.Errorf("CountByAccount called %d times, want 4", calls)
	}
}

func TestGetUsageStats_CountFailure(t *testing.T) {
	t.Parallel()

	failing := &counterMock{
		CountByAccountFunc: func(ctx context.Context, accountID uuid.UUID) (int, error) {
			return 0, domain.ErrUnavailable
		},
	}

	svc := NewService(testLogger(),
		failing, fixedCounter(1), fixedCounter(1), fixedCounter(1),
		passthroughTx(),
	)

	ctx := ctxutil.WithTenantID(context.Background(), uuid.New())
	_, err := svc.GetUsageStats(ctx)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}
