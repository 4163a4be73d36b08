package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func seedProject(t *testing.T, repo interfaces.Repository, project *model.Project) {
	t.Helper()
	gt.NoError(t, repo.Project().Save(context.Background(), project)).Required()
}

func TestUpdateObjectiveProgress(t *testing.T) {
	ctx := context.Background()

	baseProject := func() *model.Project {
		return &model.Project{
			ID: "proj-001",
			Objectives: []model.Objective{
				{ID: "obj-001", Name: "現金残高改善", TargetValue: 20, Unit: "%"},
				{ID: "obj-002", Name: "自動化率向上", TargetValue: 70, Unit: "%",
					CurrentValue: 70, Status: types.ObjectiveStatusAchieved},
			},
		}
	}

	t.Run("achievement rate drives status", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, baseProject())

		obj, err := uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 20)
		gt.NoError(t, err).Required()
		gt.Value(t, obj.Status).Equal(types.ObjectiveStatusAchieved)

		obj, err = uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 17)
		gt.NoError(t, err).Required()
		gt.Value(t, obj.Status).Equal(types.ObjectiveStatusOnTrack)

		obj, err = uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 13)
		gt.NoError(t, err).Required()
		gt.Value(t, obj.Status).Equal(types.ObjectiveStatusAtRisk)

		obj, err = uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 5)
		gt.NoError(t, err).Required()
		gt.Value(t, obj.Status).Equal(types.ObjectiveStatusMissed)
	})

	t.Run("project progress is a weighted aggregate", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, baseProject())

		// obj-001 on track, obj-002 achieved: (100 + 50) / 2
		_, err := uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 17)
		gt.NoError(t, err).Required()

		project, err := uc.Project.GetProject(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, project.Progress).Equal(75)
		gt.Value(t, project.LastUpdated).Equal(fixedClock(t)())
	})

	t.Run("unknown objective is not found", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, baseProject())

		_, err := uc.Project.UpdateObjectiveProgress(ctx, "missing", 10)
		gt.Error(t, err)
	})

	t.Run("zero target is rejected", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, &model.Project{
			ID:         "proj-001",
			Objectives: []model.Objective{{ID: "obj-001", TargetValue: 0}},
		})

		_, err := uc.Project.UpdateObjectiveProgress(ctx, "obj-001", 10)
		gt.Error(t, err)
	})
}

func TestGetTimeline(t *testing.T) {
	ctx := context.Background()
	now := fixedClock(t)()
	uc, repo := newUseCasesWithRepo(t)

	seedProject(t, repo, &model.Project{
		ID:    "proj-001",
		Phase: model.Phase{Number: 2},
		Milestones: []model.Milestone{
			{ID: "ms-1", Status: types.MilestoneStatusPending, DueDate: now.AddDate(0, 2, 0)},
			{ID: "ms-2", Status: types.MilestoneStatusCompleted, DueDate: now.AddDate(0, -2, 0)},
			{ID: "ms-3", Status: types.MilestoneStatusPending, DueDate: now.AddDate(0, 1, 0)},
			{ID: "ms-4", Status: types.MilestoneStatusCompleted, DueDate: now.AddDate(0, -1, 0)},
		},
	})
	gt.NoError(t, repo.Project().SavePhases(ctx, []*model.Phase{
		{ID: "phase-1", Number: 1},
		{ID: "phase-2", Number: 2},
	})).Required()

	timeline, err := uc.Project.GetTimeline(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, timeline.CurrentPhase).Equal(2)
	gt.Array(t, timeline.Phases).Length(2)

	// Upcoming soonest first, completed latest first
	gt.Array(t, timeline.UpcomingMilestones).Length(2)
	gt.Value(t, timeline.UpcomingMilestones[0].ID).Equal("ms-3")
	gt.Value(t, timeline.UpcomingMilestones[1].ID).Equal("ms-1")
	gt.Array(t, timeline.CompletedMilestones).Length(2)
	gt.Value(t, timeline.CompletedMilestones[0].ID).Equal("ms-4")
	gt.Value(t, timeline.CompletedMilestones[1].ID).Equal("ms-2")
}

func TestGenerateProjectReport(t *testing.T) {
	ctx := context.Background()
	now := fixedClock(t)()

	t.Run("healthy project is green", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, &model.Project{
			ID:        "proj-001",
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   now.AddDate(0, 3, 0),
			Budget:    model.Budget{Total: 10000000, Spent: 1000000},
			Objectives: []model.Objective{
				{ID: "obj-001", Status: types.ObjectiveStatusOnTrack},
			},
			Milestones: []model.Milestone{
				{ID: "ms-1", Name: "第1フェーズ完了", Status: types.MilestoneStatusCompleted,
					DueDate: now.AddDate(0, -1, 0)},
				{ID: "ms-2", Name: "API連携リリース", Status: types.MilestoneStatusPending,
					DueDate:      now.AddDate(0, 1, 0),
					Deliverables: []string{"銀行API接続", "監視ダッシュボード"}},
			},
		})

		report, err := uc.Project.GenerateReport(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, report.OverallHealth).Equal(types.HealthGreen)
		gt.Number(t, report.ProgressSummary.MilestonesTotal).Equal(2)
		gt.Number(t, report.ProgressSummary.MilestonesCompleted).Equal(1)
		gt.Number(t, report.BudgetStatus.Remaining).Equal(9000000)
		gt.True(t, report.BudgetStatus.BurnRate > 0)

		gt.Array(t, report.NextSteps).Length(3)
		gt.Value(t, report.NextSteps[0]).Equal("API連携リリースの達成に向けた活動")
		gt.Value(t, report.NextSteps[1]).Equal("- 銀行API接続")
		gt.Value(t, report.NextSteps[2]).Equal("- 監視ダッシュボード")
	})

	t.Run("at-risk objective turns the report yellow", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, &model.Project{
			ID:        "proj-001",
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   now.AddDate(0, 3, 0),
			Budget:    model.Budget{Total: 10000000, Spent: 100000},
			Objectives: []model.Objective{
				{ID: "obj-001", Name: "現金残高改善", Status: types.ObjectiveStatusAtRisk,
					CurrentValue: 8, TargetValue: 20, Unit: "%"},
			},
		})

		report, err := uc.Project.GenerateReport(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, report.OverallHealth).Equal(types.HealthYellow)
		gt.Array(t, report.Risks).Length(1)
		gt.Value(t, report.Risks[0]).Equal("現金残高改善が目標値に届かない可能性があります（現在: 8%、目標: 20%）")
	})

	t.Run("spend pace beyond budget turns the report red", func(t *testing.T) {
		uc, repo := newUseCasesWithRepo(t)
		seedProject(t, repo, &model.Project{
			ID:        "proj-001",
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   now.AddDate(0, 11, 0),
			// A month in, a quarter spent: the pace exceeds the total
			Budget: model.Budget{Total: 10000000, Spent: 2500000},
			Objectives: []model.Objective{
				{ID: "obj-001", Status: types.ObjectiveStatusAtRisk, TargetValue: 20, Unit: "%"},
			},
		})

		report, err := uc.Project.GenerateReport(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, report.OverallHealth).Equal(types.HealthRed)
		gt.Array(t, report.Issues).Length(1)
		gt.Value(t, report.Issues[0]).Equal("現在の支出ペースでは予算超過の可能性があります")
	})
}

func TestGetGanttData(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCasesWithRepo(t)

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	seedProject(t, repo, &model.Project{
		ID:        "proj-001",
		StartDate: start,
		Milestones: []model.Milestone{
			{ID: "ms-1", Name: "基盤構築完了", PhaseID: "phase-1",
				DueDate: start.AddDate(0, 0, 21)},
		},
	})
	gt.NoError(t, repo.Project().SavePhases(ctx, []*model.Phase{
		{ID: "phase-1", Number: 1, Name: "基盤構築", Status: types.PhaseStatusCompleted},
		{ID: "phase-2", Number: 2, Name: "自動化展開", Status: types.PhaseStatusInProgress},
		{ID: "phase-3", Number: 3, Name: "最適化", Status: types.PhaseStatusNotStarted},
		{ID: "phase-4", Number: 4, Name: "定着化", Status: types.PhaseStatusNotStarted},
	})).Required()

	data, err := uc.Project.GetGanttData(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, data.Phases).Length(4)

	// Week offsets from project start: 0-3, 4-7, 8-11, 12-16
	gt.Value(t, data.Phases[0].Start).Equal(start)
	gt.Value(t, data.Phases[0].End).Equal(start.AddDate(0, 0, 21))
	gt.Value(t, data.Phases[1].Start).Equal(start.AddDate(0, 0, 28))
	gt.Value(t, data.Phases[1].End).Equal(start.AddDate(0, 0, 49))
	gt.Value(t, data.Phases[3].Start).Equal(start.AddDate(0, 0, 84))
	gt.Value(t, data.Phases[3].End).Equal(start.AddDate(0, 0, 112))

	gt.Number(t, data.Phases[0].Progress).Equal(100)
	gt.Number(t, data.Phases[1].Progress).Equal(50)
	gt.Number(t, data.Phases[2].Progress).Equal(0)

	gt.Array(t, data.Milestones).Length(1)
	gt.Value(t, data.Milestones[0].Phase).Equal("基盤構築")
}
