package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// CashflowPeriod selects the observation granularity
type CashflowPeriod string

const (
	CashflowDaily  CashflowPeriod = "daily"
	CashflowWeekly CashflowPeriod = "weekly"
)

// DefaultForecastDays is the forecast window when none is requested
const DefaultForecastDays = 7

// CashflowUseCase synthesizes observed and projected cash movement around
// the baseline balance of 12M JPY.
type CashflowUseCase struct {
	rng *rand.Rand
	now func() time.Time
}

// GetCashflow returns observed cash movement, oldest first. Daily yields
// 30 days, weekly yields 12 weeks.
func (uc *CashflowUseCase) GetCashflow(ctx context.Context, period CashflowPeriod) ([]model.CashflowEntry, error) {
	var periods int
	switch period {
	case CashflowDaily:
		periods = 30
	case CashflowWeekly:
		periods = 12
	default:
		return nil, goerr.New("period must be daily or weekly",
			goerr.V("period", string(period)), goerr.T(types.ErrTagValidation))
	}

	now := uc.now()
	entries := make([]model.CashflowEntry, 0, periods)
	for i := periods - 1; i >= 0; i-- {
		date := now
		if period == CashflowDaily {
			date = now.AddDate(0, 0, -i)
		} else {
			date = now.AddDate(0, 0, -i*7)
		}

		inflow := uc.rng.Float64()*2000000 + 1000000
		outflow := uc.rng.Float64()*1500000 + 800000

		entries = append(entries, model.CashflowEntry{
			Date:    date.Format("2006-01-02"),
			Inflow:  inflow,
			Outflow: outflow,
			NetFlow: model.NetCashflow(inflow, outflow),
			Balance: 12000000 + (uc.rng.Float64()-0.5)*2000000,
		})
	}

	return entries, nil
}

// GetForecast projects cash movement for the coming days, starting today
func (uc *CashflowUseCase) GetForecast(ctx context.Context, days int) ([]model.ForecastEntry, error) {
	if days <= 0 {
		return nil, goerr.New("days must be positive",
			goerr.V("days", days), goerr.T(types.ErrTagValidation))
	}

	now := uc.now()
	forecast := make([]model.ForecastEntry, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, model.ForecastEntry{
			Date:    now.AddDate(0, 0, i).Format("2006-01-02"),
			Inflow:  uc.rng.Float64()*2000000 + 1000000,
			Outflow: uc.rng.Float64()*1500000 + 800000,
			Balance: 12000000 + (uc.rng.Float64()-0.5)*1000000,
		})
	}

	return forecast, nil
}
