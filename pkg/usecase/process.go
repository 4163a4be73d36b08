package usecase

import (
	"context"
	"sort"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/model/config"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// ProcessUseCase implements process queries, the automation opportunity
// ranking and the portfolio-level automation business case.
type ProcessUseCase struct {
	repo      interfaces.Repository
	constants *config.Constants
}

func (uc *ProcessUseCase) ListProcesses(ctx context.Context) ([]*model.BusinessProcess, error) {
	return uc.repo.Process().List(ctx)
}

func (uc *ProcessUseCase) GetProcess(ctx context.Context, id string) (*model.BusinessProcess, error) {
	return uc.repo.Process().Get(ctx, id)
}

func (uc *ProcessUseCase) ListTemplates(ctx context.Context) ([]*model.WorkflowTemplate, error) {
	return uc.repo.Process().ListTemplates(ctx)
}

// GetOpportunities ranks every process below the automation target by the
// ROI of automating its remaining manual steps, highest first.
func (uc *ProcessUseCase) GetOpportunities(ctx context.Context) ([]model.AutomationOpportunity, error) {
	processes, err := uc.repo.Process().List(ctx)
	if err != nil {
		return nil, err
	}

	auto := uc.constants.Automation
	opportunities := []model.AutomationOpportunity{}

	for _, p := range processes {
		if p.AutomationLevel >= auto.TargetLevel {
			continue
		}

		manualMinutes := p.ManualMinutes()
		timeSavings := manualMinutes * auto.SavingsFactor
		costSavings := timeSavings * auto.HourlyRateYen / 60

		annualSavings := costSavings * auto.MonthlyExecutions * auto.AnnualMonths
		investment := costSavings * auto.PaybackExecutions

		var roi float64
		if investment > 0 {
			roi = annualSavings / investment * 100
		}

		opportunities = append(opportunities, model.AutomationOpportunity{
			ProcessID:    p.ID,
			ProcessName:  p.Name,
			CurrentState: p.Status,
			PotentialSavings: model.PotentialSavings{
				TimeHours: timeSavings / 60,
				CostYen:   annualSavings,
			},
			RequiredInvestment:       investment,
			ROI:                      roi,
			ImplementationDifficulty: types.DifficultyFromManualMinutes(manualMinutes),
			Recommendations:          recommendations(p),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].ROI > opportunities[j].ROI
	})
	return opportunities, nil
}

// GetROI computes the portfolio-level business case for lifting every
// process to the automation target.
func (uc *ProcessUseCase) GetROI(ctx context.Context) (*model.AutomationROI, error) {
	processes, err := uc.repo.Process().List(ctx)
	if err != nil {
		return nil, err
	}

	auto := uc.constants.Automation
	roi := &model.AutomationROI{
		TargetAutomationLevel: float64(auto.TargetLevel),
	}
	if len(processes) == 0 {
		return roi, nil
	}

	var levelSum, manualMinutes float64
	for _, p := range processes {
		levelSum += float64(p.AutomationLevel)
		manualMinutes += p.ManualMinutes()
	}

	roi.CurrentAutomationLevel = levelSum / float64(len(processes))
	roi.CurrentCost = manualMinutes * auto.HourlyRateYen / 60 * auto.MonthlyExecutions * auto.AnnualMonths
	roi.ProjectedCost = roi.CurrentCost * (1 - (roi.TargetAutomationLevel-roi.CurrentAutomationLevel)/100)
	roi.AnnualSavings = roi.CurrentCost - roi.ProjectedCost
	roi.InvestmentRequired = roi.AnnualSavings * auto.InvestmentRatio
	if roi.AnnualSavings > 0 {
		roi.PaybackPeriodMonths = roi.InvestmentRequired / roi.AnnualSavings * float64(auto.AnnualMonths)
	}

	return roi, nil
}

// ApplyTemplate raises a process's automation level by the template
// increment, capped at 100, and re-derives its status.
func (uc *ProcessUseCase) ApplyTemplate(ctx context.Context, processID, templateID string) (*model.BusinessProcess, error) {
	process, err := uc.repo.Process().Get(ctx, processID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Process().GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	process.AutomationLevel += uc.constants.Automation.TemplateIncrement
	if process.AutomationLevel > 100 {
		process.AutomationLevel = 100
	}
	process.SyncStatus()

	return uc.repo.Process().Update(ctx, process)
}

// recommendations returns improvement suggestions for a process by type
// and current automation level
func recommendations(p *model.BusinessProcess) []string {
	recs := []string{}

	switch p.Type {
	case types.ProcessTypeReceivables:
		recs = append(recs,
			"AIによる与信判定の自動化",
			"督促メールのテンプレート自動選択",
			"入金予測モデルの導入",
		)
	case types.ProcessTypePayables:
		recs = append(recs,
			"OCRによる請求書自動読取",
			"承認ルートの動的最適化",
			"支払スケジュールの自動最適化",
		)
	}

	if p.AutomationLevel < 50 {
		recs = append(recs,
			"RPAツールの導入検討",
			"APIを活用した外部システム連携",
		)
	}

	return recs
}
