package worker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/service/bank"
	"github.com/baysgaia/cashmax/pkg/usecase"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

const (
	// daily sync wall-clock hours
	morningSyncHour = 9
	eveningSyncHour = 18

	// defaultCheckInterval is the balance check cadence
	defaultCheckInterval = 5 * time.Minute

	// criticalBalanceFloor escalates the balance check log to error level
	criticalBalanceFloor = 3000000

	// syncTransactionLimit caps the transaction fetch per sync
	syncTransactionLimit = 100
)

// Scheduler runs the periodic jobs of the dashboard: bank data sync
// twice a day and a balance check every few minutes.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type Scheduler struct {
	uc            *usecase.UseCases
	checkInterval time.Duration
	now           func() time.Time

	prevBalance float64

	stopCh chan struct{}
	doneCh chan struct{}
}

// SchedulerOption configures the scheduler
type SchedulerOption func(*Scheduler)

// WithCheckInterval overrides the balance check cadence
func WithCheckInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.checkInterval = d
	}
}

// WithClock overrides the time source, mainly for tests
func WithClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.now = now
	}
}

// NewScheduler creates a scheduler over the given use cases
func NewScheduler(uc *usecase.UseCases, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		uc:            uc,
		checkInterval: defaultCheckInterval,
		now:           time.Now,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background job loop. Does not block server startup.
func (s *Scheduler) Start(ctx context.Context) error {
	logging.Default().Info("scheduler starting",
		"checkInterval", s.checkInterval.String())

	go s.run(ctx)

	return nil
}

// Stop signals the scheduler to stop and waits for completion
func (s *Scheduler) Stop() {
	logging.Default().Info("scheduler stopping")
	close(s.stopCh)
	<-s.doneCh
	logging.Default().Info("scheduler stopped")
}

// run is the main job loop (runs in goroutine)
func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)

	syncTimer := time.NewTimer(time.Until(s.nextSyncTime()))
	defer syncTimer.Stop()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-syncTimer.C:
			if err := s.syncBankData(ctx); err != nil {
				// Log error but continue; next sync will retry
				logging.Default().Error("daily data sync failed",
					"error", err.Error())
				if alertErr := s.uc.Alert.TriggerSystemAlert(ctx, err, "daily data sync"); alertErr != nil {
					logging.Default().Error("failed to record system alert",
						"error", alertErr.Error())
				}
			}
			syncTimer.Reset(time.Until(s.nextSyncTime()))

		case <-ticker.C:
			if err := s.checkBalance(ctx); err != nil {
				logging.Default().Error("balance check failed",
					"error", err.Error())
			}

		case <-s.stopCh:
			logging.Default().Info("scheduler received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("scheduler context cancelled")
			return
		}
	}
}

// nextSyncTime returns the next 09:00 or 18:00 after now
func (s *Scheduler) nextSyncTime() time.Time {
	now := s.now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), morningSyncHour, 0, 0, 0, now.Location())
	evening := time.Date(now.Year(), now.Month(), now.Day(), eveningSyncHour, 0, 0, 0, now.Location())

	switch {
	case now.Before(morning):
		return morning
	case now.Before(evening):
		return evening
	default:
		return morning.AddDate(0, 0, 1)
	}
}

// syncBankData fetches the latest balance and transactions, then runs the
// KPI and risk alert checks against fresh data.
func (s *Scheduler) syncBankData(ctx context.Context) error {
	logging.Default().Info("running daily data sync")

	var balance *model.AccountBalance
	var transactions []*model.Transaction

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		balance, err = s.uc.Bank.GetBalance(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		transactions, err = s.uc.Bank.GetTransactions(egCtx, bank.TransactionQuery{
			Limit: syncTransactionLimit,
		})
		return err
	})
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to sync bank data")
	}

	logging.Default().Info("bank data synced",
		"balance", balance.Balance,
		"transactions", len(transactions),
	)

	kpi, err := s.uc.KPI.GetCurrent(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get current KPIs")
	}
	reading := usecase.KPIReading{
		CashBalanceGrowth: kpi.MonthlyGrowth / 100,
		AutomationRate:    kpi.AutomationRate / 100,
		ForecastAccuracy:  kpi.ForecastAccuracy / 100,
	}
	if err := s.uc.Alert.CheckKPIAlerts(ctx, reading); err != nil {
		return goerr.Wrap(err, "failed to check KPI alerts")
	}

	riskAlerts, err := s.uc.Risk.GetActiveAlerts(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get active risk alerts")
	}
	if err := s.uc.Alert.CheckRiskAlerts(ctx, riskAlerts); err != nil {
		return goerr.Wrap(err, "failed to check risk alerts")
	}

	logging.Default().Info("daily data sync completed")
	return nil
}

// checkBalance fetches the current balance and evaluates the cash flow
// alert conditions against the previous observation.
func (s *Scheduler) checkBalance(ctx context.Context) error {
	balance, err := s.uc.Bank.GetBalance(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get account balance")
	}

	switch {
	case balance.Balance < criticalBalanceFloor:
		logging.Default().Error("critical balance level",
			"balance", balance.Balance)
	case balance.Balance < s.uc.Constants().Alerts.BalanceFloor:
		logging.Default().Warn("low balance level",
			"balance", balance.Balance)
	}

	if err := s.uc.Alert.CheckCashFlowAlerts(ctx, balance.Balance, s.prevBalance); err != nil {
		return goerr.Wrap(err, "failed to check cash flow alerts")
	}
	s.prevBalance = balance.Balance

	return nil
}
