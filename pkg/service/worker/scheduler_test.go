package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/repository/memory"
	"github.com/baysgaia/cashmax/pkg/service/bank"
	"github.com/baysgaia/cashmax/pkg/service/worker"
	"github.com/baysgaia/cashmax/pkg/usecase"
)

// midday keeps the daily sync timer far in the future so only the
// balance check fires during tests
func midday() func() time.Time {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestSchedulerBalanceCheck(t *testing.T) {
	ctx := context.Background()

	uc := usecase.New(memory.New(),
		usecase.WithClock(midday()),
		usecase.WithBank(bank.NewSunabar(bank.WithSeed(42), bank.WithBalance(4000000), bank.WithLatency(0))),
	)

	s := worker.NewScheduler(uc,
		worker.WithClock(midday()),
		worker.WithCheckInterval(20*time.Millisecond),
	)
	gt.NoError(t, s.Start(ctx)).Required()
	defer s.Stop()

	// Wait for at least one balance check to fire
	time.Sleep(100 * time.Millisecond)

	alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
	gt.NoError(t, err).Required()
	gt.True(t, len(alerts) >= 1)
	gt.Value(t, alerts[0].Title).Equal("現金残高が危険水準に達しました")
}

func TestSchedulerHealthyBalanceStaysQuiet(t *testing.T) {
	ctx := context.Background()

	uc := usecase.New(memory.New(),
		usecase.WithClock(midday()),
		usecase.WithBank(bank.NewSunabar(bank.WithSeed(42), bank.WithLatency(0))),
	)

	s := worker.NewScheduler(uc,
		worker.WithClock(midday()),
		worker.WithCheckInterval(20*time.Millisecond),
	)
	gt.NoError(t, s.Start(ctx)).Required()
	defer s.Stop()

	time.Sleep(100 * time.Millisecond)

	alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
	gt.NoError(t, err).Required()
	gt.Array(t, alerts).Length(0)
}

func TestSchedulerStopsCleanly(t *testing.T) {
	ctx := context.Background()

	uc := usecase.New(memory.New(), usecase.WithClock(midday()))
	s := worker.NewScheduler(uc,
		worker.WithClock(midday()),
		worker.WithCheckInterval(10*time.Millisecond),
	)
	gt.NoError(t, s.Start(ctx)).Required()

	time.Sleep(30 * time.Millisecond)

	stopStart := time.Now()
	s.Stop()
	gt.True(t, time.Since(stopStart) < time.Second)
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	uc := usecase.New(memory.New(), usecase.WithClock(midday()))
	s := worker.NewScheduler(uc,
		worker.WithClock(midday()),
		worker.WithCheckInterval(10*time.Millisecond),
	)
	gt.NoError(t, s.Start(ctx)).Required()

	cancel()
	time.Sleep(30 * time.Millisecond)

	// Stop after cancellation must not block on the finished loop
	stopStart := time.Now()
	s.Stop()
	gt.True(t, time.Since(stopStart) < time.Second)
}
