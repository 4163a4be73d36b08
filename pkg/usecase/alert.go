package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/model/config"
	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/service/notify"
	"github.com/baysgaia/cashmax/pkg/utils/async"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

// KPIReading is the measured KPI state fed into the alert evaluator.
// Rates are fractions, not percentages.
type KPIReading struct {
	CashBalanceGrowth float64
	AutomationRate    float64
	ForecastAccuracy  float64
}

// AlertUseCase evaluates alert conditions, keeps the live alert set and
// pushes notifications for critical alerts.
type AlertUseCase struct {
	repo      interfaces.Repository
	notifier  notify.Notifier
	constants *config.Constants
	now       func() time.Time
}

// Trigger records a new alert and notifies asynchronously when it is
// critical or needs CEO approval.
func (uc *AlertUseCase) Trigger(ctx context.Context, alert *model.Alert) (*model.Alert, error) {
	alert.ID = "ALERT_" + uuid.NewString()
	alert.TriggeredAt = uc.now()

	if err := uc.repo.Alert().Append(ctx, alert); err != nil {
		return nil, err
	}

	logging.From(ctx).Warn("alert triggered",
		"type", alert.Type,
		"category", alert.Category,
		"title", alert.Title,
	)

	if alert.Type == types.AlertTypeCritical || alert.RequiresCEOApproval {
		notified := *alert
		uc.notify(ctx, &notified)
	}

	return alert, nil
}

func (uc *AlertUseCase) notify(ctx context.Context, alert *model.Alert) {
	notifier := uc.notifier
	async.Dispatch(ctx, func(ctx context.Context) error {
		return notifier.NotifyAlert(ctx, alert)
	})
}

// List returns live alerts, newest first. Only the Type filter is
// applied; see model.AlertFilter.
func (uc *AlertUseCase) List(ctx context.Context, filter model.AlertFilter) ([]*model.Alert, error) {
	alerts, err := uc.repo.Alert().List(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Type != "" {
		filtered := alerts[:0:0]
		for _, a := range alerts {
			if a.Type == filter.Type {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].TriggeredAt.After(alerts[j].TriggeredAt)
	})
	return alerts, nil
}

// Resolve removes an alert from the live set. Unknown IDs are a no-op.
func (uc *AlertUseCase) Resolve(ctx context.Context, id string) error {
	return uc.repo.Alert().Remove(ctx, id)
}

// CheckKPIAlerts evaluates the KPI thresholds against a reading
func (uc *AlertUseCase) CheckKPIAlerts(ctx context.Context, reading KPIReading) error {
	t := uc.constants.Alerts

	if reading.CashBalanceGrowth < t.GrowthWarn {
		if _, err := uc.Trigger(ctx, &model.Alert{
			Type:     types.AlertTypeWarning,
			Category: types.AlertCategoryKPI,
			Title:    "現金残高改善率が目標を下回っています",
			Message: fmt.Sprintf("現在の改善率: %.1f%% (目標: %.0f%%)",
				reading.CashBalanceGrowth*100, t.GrowthTarget*100),
			Details: map[string]any{"current": reading.CashBalanceGrowth, "target": t.GrowthTarget},
		}); err != nil {
			return err
		}
	}

	if reading.AutomationRate < t.AutomationWarn {
		if _, err := uc.Trigger(ctx, &model.Alert{
			Type:     types.AlertTypeWarning,
			Category: types.AlertCategoryKPI,
			Title:    "プロセス自動化率が目標を下回っています",
			Message: fmt.Sprintf("現在の自動化率: %.1f%% (目標: %.0f%%)",
				reading.AutomationRate*100, t.AutomationTarget*100),
			Details: map[string]any{"current": reading.AutomationRate, "target": t.AutomationTarget},
		}); err != nil {
			return err
		}
	}

	if reading.ForecastAccuracy < t.AccuracyCritical {
		if _, err := uc.Trigger(ctx, &model.Alert{
			Type:     types.AlertTypeCritical,
			Category: types.AlertCategoryKPI,
			Title:    "資金予測精度が危険水準です",
			Message: fmt.Sprintf("現在の精度: %.1f%% (目標: %.0f%%以上)",
				reading.ForecastAccuracy*100, t.AccuracyTarget*100),
			Details:             map[string]any{"current": reading.ForecastAccuracy, "target": t.AccuracyTarget},
			RequiresCEOApproval: true,
		}); err != nil {
			return err
		}
	}

	return nil
}

// CheckCashFlowAlerts evaluates balance drop and floor conditions
func (uc *AlertUseCase) CheckCashFlowAlerts(ctx context.Context, balance, previousBalance float64) error {
	t := uc.constants.Alerts

	if previousBalance > 0 {
		changeRate := (balance - previousBalance) / previousBalance
		if changeRate < -t.DropRate {
			if _, err := uc.Trigger(ctx, &model.Alert{
				Type:     types.AlertTypeCritical,
				Category: types.AlertCategoryCashFlow,
				Title:    "現金残高が急激に減少しています",
				Message:  fmt.Sprintf("前日比 %.1f%% 減少", changeRate*100),
				Details: map[string]any{
					"currentBalance":  balance,
					"previousBalance": previousBalance,
					"changeRate":      changeRate,
				},
				RequiresCEOApproval: true,
			}); err != nil {
				return err
			}
		}
	}

	if balance < t.BalanceFloor {
		if _, err := uc.Trigger(ctx, &model.Alert{
			Type:                types.AlertTypeCritical,
			Category:            types.AlertCategoryCashFlow,
			Title:               "現金残高が危険水準に達しました",
			Message:             fmt.Sprintf("現在の残高: %.0f円 (閾値: %.0f円)", balance, t.BalanceFloor),
			Details:             map[string]any{"balance": balance, "threshold": t.BalanceFloor},
			RequiresCEOApproval: true,
		}); err != nil {
			return err
		}
	}

	return nil
}

// CheckRiskAlerts aggregates critical derived risk alerts into one
// dashboard alert
func (uc *AlertUseCase) CheckRiskAlerts(ctx context.Context, riskAlerts []model.RiskAlert) error {
	critical := []model.RiskAlert{}
	for _, ra := range riskAlerts {
		if ra.Severity == types.SeverityCritical {
			critical = append(critical, ra)
		}
	}
	if len(critical) == 0 {
		return nil
	}

	messages := make([]string, 0, len(critical))
	for _, ra := range critical {
		messages = append(messages, ra.Message)
	}

	_, err := uc.Trigger(ctx, &model.Alert{
		Type:                types.AlertTypeCritical,
		Category:            types.AlertCategoryRisk,
		Title:               fmt.Sprintf("%d件の重大リスクが検出されました", len(critical)),
		Message:             strings.Join(messages, ", "),
		Details:             map[string]any{"risks": critical},
		RequiresCEOApproval: true,
	})
	return err
}

// TriggerSystemAlert records an operational failure as a warning alert.
// The scope names the component or job the failure came from.
func (uc *AlertUseCase) TriggerSystemAlert(ctx context.Context, cause error, scope string) error {
	_, err := uc.Trigger(ctx, &model.Alert{
		Type:     types.AlertTypeWarning,
		Category: types.AlertCategorySystem,
		Title:    "システムエラーが発生しました",
		Message:  cause.Error(),
		Details:  map[string]any{"context": scope},
	})
	return err
}
