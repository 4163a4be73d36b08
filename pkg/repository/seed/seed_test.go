package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/repository/memory"
	"github.com/baysgaia/cashmax/pkg/repository/seed"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

	repo := memory.New()
	gt.NoError(t, seed.Load(ctx, repo, now)).Required()

	t.Run("risk register", func(t *testing.T) {
		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(3)

		shortfall, err := repo.Risk().Get(ctx, "risk-001")
		gt.NoError(t, err).Required()
		gt.Number(t, shortfall.RiskScore).Equal(9)
		gt.Value(t, shortfall.Category).Equal(types.RiskCategoryFinancial)
		gt.Array(t, shortfall.MitigationActions).Length(2)
		gt.Array(t, shortfall.KRI).Length(1)
		gt.Value(t, shortfall.KRI[0].LastUpdated).Equal(now)

		checkpoints, err := repo.Risk().ListCheckpoints(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, checkpoints).Length(2)

		policies, err := repo.Risk().ListPolicies(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, policies).Length(2)
	})

	t.Run("processes and templates", func(t *testing.T) {
		processes, err := repo.Process().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, processes).Length(2)

		receivables, err := repo.Process().Get(ctx, "proc-001")
		gt.NoError(t, err).Required()
		gt.Number(t, receivables.AutomationLevel).Equal(40)
		gt.Value(t, receivables.Status).Equal(types.ProcessStatusSemiAutomated)
		gt.Array(t, receivables.Steps).Length(3)

		templates, err := repo.Process().ListTemplates(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, templates).Length(2)
	})

	t.Run("project", func(t *testing.T) {
		project, err := repo.Project().Get(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, project.ID).Equal("proj-001")
		gt.Array(t, project.Objectives).Length(5)
		gt.Array(t, project.Milestones).Length(4)
		gt.Number(t, project.Phase.Number).Equal(2)
		gt.Value(t, project.LastUpdated).Equal(now)

		phases, err := repo.Project().ListPhases(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, phases).Length(4)
		gt.Value(t, phases[0].Status).Equal(types.PhaseStatusCompleted)
		gt.Value(t, phases[1].Status).Equal(types.PhaseStatusInProgress)
	})

	t.Run("subsidies", func(t *testing.T) {
		subsidies, err := repo.Subsidy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, subsidies).Length(4)

		it, err := repo.Subsidy().Get(ctx, "it-005")
		gt.NoError(t, err).Required()
		gt.Value(t, it.Type).Equal(types.SubsidyTypeSubsidy)
		gt.Value(t, it.Status).Equal(types.SubsidyStatusPreparing)
		gt.Array(t, it.Requirements).Length(5)
	})
}

func TestLoadTwiceFails(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	repo := memory.New()
	gt.NoError(t, seed.Load(ctx, repo, now)).Required()
	gt.Error(t, seed.Load(ctx, repo, now))
}
