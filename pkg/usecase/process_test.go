package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func seedProcess(t *testing.T, repo interfaces.Repository, p *model.BusinessProcess) {
	t.Helper()
	_, err := repo.Process().Create(context.Background(), p)
	gt.NoError(t, err).Required()
}

func TestGetOpportunities(t *testing.T) {
	ctx := context.Background()

	t.Run("savings and ROI derive from manual minutes", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-001", Name: "請求書発行", Type: types.ProcessTypeReceivables,
			AutomationLevel: 60,
			Steps: []model.ProcessStep{
				{ID: "s1", IsAutomated: true, ExecutionTime: 5},
				{ID: "s2", IsAutomated: false, ExecutionTime: 15},
				{ID: "s3", IsAutomated: false, ExecutionTime: 30},
			},
		})

		opps, err := uc.Process.GetOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, opps).Length(1)

		// 45 manual minutes: 36 saved, 3000 yen per run, 720000 yen a year
		opp := opps[0]
		gt.Number(t, opp.PotentialSavings.TimeHours).Equal(0.6)
		gt.Number(t, opp.PotentialSavings.CostYen).Equal(720000)
		gt.Number(t, opp.RequiredInvestment).Equal(18000)
		gt.Number(t, opp.ROI).Equal(4000)
		gt.Value(t, opp.ImplementationDifficulty).Equal(types.DifficultyLow)
	})

	t.Run("processes at or above target are excluded", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-001", AutomationLevel: 70,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})
		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-002", AutomationLevel: 95,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})

		opps, err := uc.Process.GetOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, opps).Length(0)
	})

	t.Run("fully automated process yields zero ROI", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-001", AutomationLevel: 60,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: true, ExecutionTime: 30}},
		})

		opps, err := uc.Process.GetOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, opps).Length(1)
		gt.Number(t, opps[0].ROI).Equal(0)
		gt.Number(t, opps[0].RequiredInvestment).Equal(0)
	})

	t.Run("recommendations follow process type and level", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-001", Type: types.ProcessTypeReceivables, AutomationLevel: 40,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})
		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-002", Type: types.ProcessTypePayables, AutomationLevel: 60,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})

		opps, err := uc.Process.GetOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, opps).Length(2)

		byID := map[string]model.AutomationOpportunity{}
		for _, opp := range opps {
			byID[opp.ProcessID] = opp
		}

		// Receivables below 50 gets type and generic suggestions
		recs := byID["proc-001"].Recommendations
		gt.Array(t, recs).Length(5)
		gt.Value(t, recs[0]).Equal("AIによる与信判定の自動化")
		gt.Value(t, recs[3]).Equal("RPAツールの導入検討")

		recs = byID["proc-002"].Recommendations
		gt.Array(t, recs).Length(3)
		gt.Value(t, recs[0]).Equal("OCRによる請求書自動読取")
	})

	t.Run("ranked by ROI highest first", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-zero", AutomationLevel: 60,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: true, ExecutionTime: 10}},
		})
		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-manual", AutomationLevel: 30,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 120}},
		})

		opps, err := uc.Process.GetOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, opps).Length(2)
		gt.Value(t, opps[0].ProcessID).Equal("proc-manual")
		gt.Value(t, opps[1].ProcessID).Equal("proc-zero")
	})
}

func TestGetROI(t *testing.T) {
	ctx := context.Background()

	t.Run("portfolio business case", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-001", AutomationLevel: 40,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})
		seedProcess(t, repo, &model.BusinessProcess{
			ID: "proc-002", AutomationLevel: 60,
			Steps: []model.ProcessStep{{ID: "s1", IsAutomated: false, ExecutionTime: 30}},
		})

		roi, err := uc.Process.GetROI(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, roi.CurrentAutomationLevel).Equal(50)
		gt.Number(t, roi.TargetAutomationLevel).Equal(70)

		// 60 manual minutes a run: 5000 yen an hour, 20 runs, 12 months
		gt.Number(t, roi.CurrentCost).Equal(1200000)
		gt.Number(t, roi.ProjectedCost).Equal(960000)
		gt.Number(t, roi.AnnualSavings).Equal(240000)
		gt.Number(t, roi.InvestmentRequired).Equal(120000)
		gt.Number(t, roi.PaybackPeriodMonths).Equal(6)
	})

	t.Run("empty portfolio returns target only", func(t *testing.T) {
		uc, _ := newUseCasesWithRepo(t)

		roi, err := uc.Process.GetROI(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, roi.TargetAutomationLevel).Equal(70)
		gt.Number(t, roi.CurrentCost).Equal(0)
		gt.Number(t, roi.PaybackPeriodMonths).Equal(0)
	})
}

func TestApplyTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("raises automation level and status", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{ID: "proc-001", AutomationLevel: 50})
		gt.NoError(t, repo.Process().PutTemplate(ctx, &model.WorkflowTemplate{ID: "tmpl-001"})).Required()

		process, err := uc.Process.ApplyTemplate(ctx, "proc-001", "tmpl-001")
		gt.NoError(t, err).Required()
		gt.Number(t, process.AutomationLevel).Equal(80)
		gt.Value(t, process.Status).Equal(types.ProcessStatusAutomated)
	})

	t.Run("level caps at 100", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{ID: "proc-001", AutomationLevel: 85})
		gt.NoError(t, repo.Process().PutTemplate(ctx, &model.WorkflowTemplate{ID: "tmpl-001"})).Required()

		process, err := uc.Process.ApplyTemplate(ctx, "proc-001", "tmpl-001")
		gt.NoError(t, err).Required()
		gt.Number(t, process.AutomationLevel).Equal(100)
	})

	t.Run("missing process or template fails", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)

		seedProcess(t, repo, &model.BusinessProcess{ID: "proc-001", AutomationLevel: 50})

		_, err := uc.Process.ApplyTemplate(ctx, "missing", "tmpl-001")
		gt.Error(t, err)
		_, err = uc.Process.ApplyTemplate(ctx, "proc-001", "missing")
		gt.Error(t, err)
	})
}
