package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/usecase"
)

func TestTriggerAlert(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	alert, err := uc.Alert.Trigger(ctx, &model.Alert{
		Type:     types.AlertTypeWarning,
		Category: types.AlertCategorySystem,
		Title:    "テストアラート",
		Message:  "これはテスト用のアラートです",
	})
	gt.NoError(t, err).Required()
	gt.True(t, strings.HasPrefix(alert.ID, "ALERT_"))
	gt.Value(t, alert.TriggeredAt).Equal(fixedClock(t)())

	alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
	gt.NoError(t, err).Required()
	gt.Array(t, alerts).Length(1)
	gt.Value(t, alerts[0].Title).Equal("テストアラート")
}

func TestListAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("filter by type", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Alert.Trigger(ctx, &model.Alert{
			Type: types.AlertTypeWarning, Category: types.AlertCategoryKPI,
		})
		gt.NoError(t, err).Required()
		_, err = uc.Alert.Trigger(ctx, &model.Alert{
			Type: types.AlertTypeInfo, Category: types.AlertCategorySystem,
		})
		gt.NoError(t, err).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{Type: types.AlertTypeWarning})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Type).Equal(types.AlertTypeWarning)
	})

	t.Run("newest first", func(t *testing.T) {
		now := fixedClock(t)()
		uc, repo := newUseCasesWithRepo(t)

		gt.NoError(t, repo.Alert().Append(ctx, &model.Alert{
			ID: "a-old", TriggeredAt: now.Add(-time.Hour),
		})).Required()
		gt.NoError(t, repo.Alert().Append(ctx, &model.Alert{
			ID: "a-new", TriggeredAt: now,
		})).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(2)
		gt.Value(t, alerts[0].ID).Equal("a-new")
		gt.Value(t, alerts[1].ID).Equal("a-old")
	})
}

func TestResolveAlert(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	alert, err := uc.Alert.Trigger(ctx, &model.Alert{
		Type: types.AlertTypeWarning, Category: types.AlertCategorySystem,
	})
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Alert.Resolve(ctx, alert.ID)).Required()
	gt.NoError(t, uc.Alert.Resolve(ctx, "unknown")).Required()

	alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
	gt.NoError(t, err).Required()
	gt.Array(t, alerts).Length(0)
}

func TestCheckKPIAlerts(t *testing.T) {
	ctx := context.Background()

	healthy := usecase.KPIReading{
		CashBalanceGrowth: 0.15,
		AutomationRate:    0.6,
		ForecastAccuracy:  0.95,
	}

	t.Run("healthy reading triggers nothing", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckKPIAlerts(ctx, healthy)).Required()
		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(0)
	})

	t.Run("low growth warns", func(t *testing.T) {
		uc := newUseCases(t)

		reading := healthy
		reading.CashBalanceGrowth = 0.05
		gt.NoError(t, uc.Alert.CheckKPIAlerts(ctx, reading)).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Type).Equal(types.AlertTypeWarning)
		gt.Value(t, alerts[0].Title).Equal("現金残高改善率が目標を下回っています")
		gt.Value(t, alerts[0].Message).Equal("現在の改善率: 5.0% (目標: 20%)")
	})

	t.Run("low automation warns", func(t *testing.T) {
		uc := newUseCases(t)

		reading := healthy
		reading.AutomationRate = 0.4
		gt.NoError(t, uc.Alert.CheckKPIAlerts(ctx, reading)).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Title).Equal("プロセス自動化率が目標を下回っています")
	})

	t.Run("low forecast accuracy is critical", func(t *testing.T) {
		uc := newUseCases(t)

		reading := healthy
		reading.ForecastAccuracy = 0.85
		gt.NoError(t, uc.Alert.CheckKPIAlerts(ctx, reading)).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Type).Equal(types.AlertTypeCritical)
		gt.Value(t, alerts[0].Title).Equal("資金予測精度が危険水準です")
		gt.True(t, alerts[0].RequiresCEOApproval)
	})

	t.Run("every breach triggers its own alert", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckKPIAlerts(ctx, usecase.KPIReading{
			CashBalanceGrowth: 0.01,
			AutomationRate:    0.1,
			ForecastAccuracy:  0.5,
		})).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(3)
	})
}

func TestCheckCashFlowAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("sharp drop is critical", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckCashFlowAlerts(ctx, 8500000, 10000000)).Required()
		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Title).Equal("現金残高が急激に減少しています")
		gt.Value(t, alerts[0].Message).Equal("前日比 -15.0% 減少")
		gt.True(t, alerts[0].RequiresCEOApproval)
	})

	t.Run("drop within tolerance is quiet", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckCashFlowAlerts(ctx, 9500000, 10000000)).Required()
		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(0)
	})

	t.Run("no previous balance skips the drop check", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckCashFlowAlerts(ctx, 8000000, 0)).Required()
		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(0)
	})

	t.Run("balance below the floor is critical", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckCashFlowAlerts(ctx, 4000000, 4100000)).Required()
		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Title).Equal("現金残高が危険水準に達しました")
		gt.Value(t, alerts[0].Message).Equal("現在の残高: 4000000円 (閾値: 5000000円)")
	})
}

func TestCheckRiskAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("criticals aggregate into one alert", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckRiskAlerts(ctx, []model.RiskAlert{
			{ID: "ra-1", Severity: types.SeverityCritical, Message: "資金ショートの危険"},
			{ID: "ra-2", Severity: types.SeverityMedium, Message: "レビュー期限超過"},
			{ID: "ra-3", Severity: types.SeverityCritical, Message: "回収率の悪化"},
		})).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)
		gt.Value(t, alerts[0].Title).Equal("2件の重大リスクが検出されました")
		gt.Value(t, alerts[0].Message).Equal("資金ショートの危険, 回収率の悪化")
		gt.Value(t, alerts[0].Category).Equal(types.AlertCategoryRisk)
	})

	t.Run("no criticals means no alert", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.Alert.CheckRiskAlerts(ctx, []model.RiskAlert{
			{ID: "ra-1", Severity: types.SeverityHigh},
		})).Required()

		alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(0)
	})
}

func TestTriggerSystemAlert(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	gt.NoError(t, uc.Alert.TriggerSystemAlert(ctx, errors.New("bank API timeout"), "daily data sync")).Required()

	alerts, err := uc.Alert.List(ctx, model.AlertFilter{})
	gt.NoError(t, err).Required()
	gt.Array(t, alerts).Length(1)
	gt.Value(t, alerts[0].Title).Equal("システムエラーが発生しました")
	gt.Value(t, alerts[0].Message).Equal("bank API timeout")
	gt.Value(t, alerts[0].Category).Equal(types.AlertCategorySystem)
}
