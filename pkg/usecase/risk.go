package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// reviewCycle is the assessment review interval
const reviewCycle = 30 * 24 * time.Hour

// financialExposureUnit converts an impact level into a JPY exposure figure
const financialExposureUnit = 10000000

// RiskUseCase implements risk register queries, assessment updates and
// the derived governance views.
type RiskUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func (uc *RiskUseCase) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	return uc.repo.Risk().List(ctx)
}

func (uc *RiskUseCase) GetRisk(ctx context.Context, id string) (*model.Risk, error) {
	return uc.repo.Risk().Get(ctx, id)
}

// GetMatrix buckets every risk into the 3x3 impact/probability matrix
func (uc *RiskUseCase) GetMatrix(ctx context.Context) (*model.RiskMatrix, error) {
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, err
	}

	matrix := &model.RiskMatrix{}
	for _, risk := range risks {
		cell := matrix.Cell(risk.Impact.Band(), risk.Probability.Band())
		*cell = append(*cell, *risk)
	}
	return matrix, nil
}

// GetActiveAlerts derives alerts from KRI threshold breaches and overdue
// reviews. Alerts are computed on every call and never persisted.
func (uc *RiskUseCase) GetActiveAlerts(ctx context.Context) ([]model.RiskAlert, error) {
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	alerts := []model.RiskAlert{}

	for _, risk := range risks {
		for _, kri := range risk.KRI {
			if kri.CurrentValue >= kri.Threshold {
				continue
			}
			severity := types.SeverityMedium
			switch {
			case risk.RiskScore >= 7:
				severity = types.SeverityCritical
			case risk.RiskScore >= 4:
				severity = types.SeverityHigh
			}
			alerts = append(alerts, model.RiskAlert{
				ID:     fmt.Sprintf("alert-%d-%s", now.UnixMilli(), kri.ID),
				RiskID: risk.ID,
				Type:   types.RiskAlertThresholdBreach,
				Message: fmt.Sprintf("%s: %sが閾値を下回っています（現在値: %v%%, 閾値: %v%%）",
					risk.Name, kri.Metric, kri.CurrentValue, kri.Threshold),
				Severity:  severity,
				CreatedAt: now,
			})
		}

		if risk.NextReview.Before(now) {
			alerts = append(alerts, model.RiskAlert{
				ID:        fmt.Sprintf("alert-%d-review-%s", now.UnixMilli(), risk.ID),
				RiskID:    risk.ID,
				Type:      types.RiskAlertReviewDue,
				Message:   fmt.Sprintf("%sのリスクレビューが期限を過ぎています", risk.Name),
				Severity:  types.SeverityMedium,
				CreatedAt: now,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
	return alerts, nil
}

// UpdateAssessment rescores a risk and schedules the next review
func (uc *RiskUseCase) UpdateAssessment(ctx context.Context, id string, impact, probability types.Level) (*model.Risk, error) {
	if err := impact.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid impact", goerr.V("riskID", id))
	}
	if err := probability.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid probability", goerr.V("riskID", id))
	}

	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	risk.Impact = impact
	risk.Probability = probability
	risk.RiskScore = risk.Score()
	risk.LastAssessment = now
	risk.NextReview = now.Add(reviewCycle)

	return uc.repo.Risk().Update(ctx, risk)
}

func (uc *RiskUseCase) GetGovernancePolicies(ctx context.Context) ([]*model.GovernancePolicy, error) {
	return uc.repo.Risk().ListPolicies(ctx)
}

// GetComplianceStatus summarizes checkpoint states. Upcoming checks are
// those due within 30 days, soonest first.
func (uc *RiskUseCase) GetComplianceStatus(ctx context.Context) (*model.ComplianceSummary, error) {
	checkpoints, err := uc.repo.Risk().ListCheckpoints(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.ComplianceSummary{
		TotalCheckpoints: len(checkpoints),
		UpcomingChecks:   []model.ComplianceCheckpoint{},
	}

	horizon := uc.now().Add(reviewCycle)
	for _, cp := range checkpoints {
		switch cp.Status {
		case types.ComplianceStatusCompliant:
			summary.Compliant++
		case types.ComplianceStatusNonCompliant:
			summary.NonCompliant++
		default:
			summary.Pending++
		}

		if !cp.NextCheck.After(horizon) {
			summary.UpcomingChecks = append(summary.UpcomingChecks, *cp)
		}
	}

	if summary.TotalCheckpoints > 0 {
		summary.ComplianceRate = float64(summary.Compliant) / float64(summary.TotalCheckpoints) * 100
	}

	sort.SliceStable(summary.UpcomingChecks, func(i, j int) bool {
		return summary.UpcomingChecks[i].NextCheck.Before(summary.UpcomingChecks[j].NextCheck)
	})
	return summary, nil
}

// GenerateReport builds the aggregate risk report. Financial exposure is
// the sum of impact x 10M JPY over financial risks.
func (uc *RiskUseCase) GenerateReport(ctx context.Context) (*model.RiskReport, error) {
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.RiskReport{
		Summary:  model.RiskReportSummary{TotalRisks: len(risks)},
		TopRisks: []model.Risk{},
	}

	for _, risk := range risks {
		switch {
		case risk.RiskScore >= 7:
			report.Summary.CriticalRisks++
		case risk.RiskScore >= 4:
			report.Summary.HighRisks++
		case risk.RiskScore >= 2:
			report.Summary.MediumRisks++
		default:
			report.Summary.LowRisks++
		}

		if risk.RiskScore >= 4 {
			report.TopRisks = append(report.TopRisks, *risk)
		}

		for _, action := range risk.MitigationActions {
			report.MitigationProgress.Total++
			switch action.Status {
			case types.MitigationStatusCompleted:
				report.MitigationProgress.Completed++
			case types.MitigationStatusInProgress:
				report.MitigationProgress.InProgress++
			default:
				report.MitigationProgress.Planned++
			}
		}

		if risk.Category == types.RiskCategoryFinancial {
			report.FinancialExposure += float64(risk.Impact) * financialExposureUnit
		}
	}

	sort.SliceStable(report.TopRisks, func(i, j int) bool {
		return report.TopRisks[i].RiskScore > report.TopRisks[j].RiskScore
	})
	if len(report.TopRisks) > 5 {
		report.TopRisks = report.TopRisks[:5]
	}

	return report, nil
}
