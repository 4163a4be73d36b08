package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// ProjectUseCase implements the project tracking views: timeline, status
// report and Gantt chart, plus objective progress updates.
type ProjectUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func (uc *ProjectUseCase) GetProject(ctx context.Context) (*model.Project, error) {
	return uc.repo.Project().Get(ctx)
}

func (uc *ProjectUseCase) ListPhases(ctx context.Context) ([]*model.Phase, error) {
	return uc.repo.Project().ListPhases(ctx)
}

func (uc *ProjectUseCase) GetCurrentPhase(ctx context.Context) (*model.Phase, error) {
	project, err := uc.repo.Project().Get(ctx)
	if err != nil {
		return nil, err
	}
	return &project.Phase, nil
}

// UpdateObjectiveProgress records a new measurement for an objective,
// re-derives its status and the weighted project progress.
func (uc *ProjectUseCase) UpdateObjectiveProgress(ctx context.Context, objectiveID string, currentValue float64) (*model.Objective, error) {
	project, err := uc.repo.Project().Get(ctx)
	if err != nil {
		return nil, err
	}

	var objective *model.Objective
	for i := range project.Objectives {
		if project.Objectives[i].ID == objectiveID {
			objective = &project.Objectives[i]
			break
		}
	}
	if objective == nil {
		return nil, goerr.New("objective not found",
			goerr.V("objectiveID", objectiveID), goerr.T(types.ErrTagNotFound))
	}
	if objective.TargetValue <= 0 {
		return nil, goerr.New("objective has no positive target",
			goerr.V("objectiveID", objectiveID), goerr.T(types.ErrTagValidation))
	}

	objective.CurrentValue = currentValue
	objective.Status = types.ObjectiveStatusFromRate(currentValue / objective.TargetValue * 100)

	var achieved, onTrack int
	for _, o := range project.Objectives {
		switch o.Status {
		case types.ObjectiveStatusAchieved:
			achieved++
		case types.ObjectiveStatusOnTrack:
			onTrack++
		}
	}
	project.Progress = int(math.Round(float64(achieved*100+onTrack*50) / float64(len(project.Objectives))))
	project.LastUpdated = uc.now()

	if err := uc.repo.Project().Save(ctx, project); err != nil {
		return nil, err
	}

	result := *objective
	return &result, nil
}

// GetTimeline returns the phase list and milestones split into upcoming
// (pending, soonest first) and completed (latest first).
func (uc *ProjectUseCase) GetTimeline(ctx context.Context) (*model.ProjectTimeline, error) {
	project, err := uc.repo.Project().Get(ctx)
	if err != nil {
		return nil, err
	}
	phases, err := uc.repo.Project().ListPhases(ctx)
	if err != nil {
		return nil, err
	}

	timeline := &model.ProjectTimeline{
		Phases:              make([]model.Phase, 0, len(phases)),
		CurrentPhase:        project.Phase.Number,
		Milestones:          project.Milestones,
		UpcomingMilestones:  []model.Milestone{},
		CompletedMilestones: []model.Milestone{},
	}
	for _, p := range phases {
		timeline.Phases = append(timeline.Phases, *p)
	}

	for _, ms := range project.Milestones {
		switch ms.Status {
		case types.MilestoneStatusPending:
			timeline.UpcomingMilestones = append(timeline.UpcomingMilestones, ms)
		case types.MilestoneStatusCompleted:
			timeline.CompletedMilestones = append(timeline.CompletedMilestones, ms)
		}
	}
	sort.SliceStable(timeline.UpcomingMilestones, func(i, j int) bool {
		return timeline.UpcomingMilestones[i].DueDate.Before(timeline.UpcomingMilestones[j].DueDate)
	})
	sort.SliceStable(timeline.CompletedMilestones, func(i, j int) bool {
		return timeline.CompletedMilestones[i].DueDate.After(timeline.CompletedMilestones[j].DueDate)
	})

	return timeline, nil
}

// GenerateReport builds the traffic-light status report. At-risk
// objectives turn it yellow; a spend pace that would exceed the total
// budget turns it red.
func (uc *ProjectUseCase) GenerateReport(ctx context.Context) (*model.ProjectReport, error) {
	project, err := uc.repo.Project().Get(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	report := &model.ProjectReport{
		ProjectID:     project.ID,
		ReportDate:    now,
		OverallHealth: types.HealthGreen,
		Risks:         []string{},
		Issues:        []string{},
		NextSteps:     []string{},
	}

	report.ProgressSummary.MilestonesTotal = len(project.Milestones)
	for _, ms := range project.Milestones {
		if ms.Status == types.MilestoneStatusCompleted {
			report.ProgressSummary.MilestonesCompleted++
		}
	}

	duration := project.EndDate.Sub(project.StartDate).Hours() / 24
	daysPassed := now.Sub(project.StartDate).Hours() / 24
	var burnRate float64
	if daysPassed > 0 {
		burnRate = project.Budget.Spent / daysPassed
	}
	report.BudgetStatus = model.BudgetStatus{
		Spent:     project.Budget.Spent,
		Remaining: project.Budget.Total - project.Budget.Spent,
		BurnRate:  burnRate,
	}

	for _, obj := range project.Objectives {
		if obj.Status != types.ObjectiveStatusAtRisk {
			continue
		}
		report.OverallHealth = types.HealthYellow
		report.Risks = append(report.Risks,
			fmt.Sprintf("%sが目標値に届かない可能性があります（現在: %v%s、目標: %v%s）",
				obj.Name, obj.CurrentValue, obj.Unit, obj.TargetValue, obj.Unit))
	}

	if burnRate*duration > project.Budget.Total {
		report.OverallHealth = types.HealthRed
		report.Issues = append(report.Issues, "現在の支出ペースでは予算超過の可能性があります")
	}

	var next *model.Milestone
	for i := range project.Milestones {
		ms := &project.Milestones[i]
		if ms.Status != types.MilestoneStatusPending {
			continue
		}
		if next == nil || ms.DueDate.Before(next.DueDate) {
			next = ms
		}
	}
	if next != nil {
		report.NextSteps = append(report.NextSteps, fmt.Sprintf("%sの達成に向けた活動", next.Name))
		for _, d := range next.Deliverables {
			report.NextSteps = append(report.NextSteps, "- "+d)
		}
	}

	return report, nil
}

// phaseStartWeeks and phaseEndWeeks place each phase on the project
// calendar in week offsets from the project start.
var (
	phaseStartWeeks = map[int]int{1: 0, 2: 4, 3: 8, 4: 12}
	phaseEndWeeks   = map[int]int{1: 3, 2: 7, 3: 11, 4: 16}
)

// GetGanttData builds the Gantt chart view. Phase progress is coarse:
// completed is 100, in progress is 50, otherwise 0.
func (uc *ProjectUseCase) GetGanttData(ctx context.Context) (*model.GanttData, error) {
	project, err := uc.repo.Project().Get(ctx)
	if err != nil {
		return nil, err
	}
	phases, err := uc.repo.Project().ListPhases(ctx)
	if err != nil {
		return nil, err
	}

	data := &model.GanttData{
		Phases:     make([]model.GanttPhase, 0, len(phases)),
		Milestones: make([]model.GanttMilestone, 0, len(project.Milestones)),
	}

	phaseNames := make(map[string]string, len(phases))
	for _, phase := range phases {
		phaseNames[phase.ID] = phase.Name

		progress := 0
		switch phase.Status {
		case types.PhaseStatusCompleted:
			progress = 100
		case types.PhaseStatusInProgress:
			progress = 50
		}

		data.Phases = append(data.Phases, model.GanttPhase{
			Name:     phase.Name,
			Start:    project.StartDate.AddDate(0, 0, phaseStartWeeks[phase.Number]*7),
			End:      project.StartDate.AddDate(0, 0, phaseEndWeeks[phase.Number]*7),
			Progress: progress,
		})
	}

	for _, ms := range project.Milestones {
		data.Milestones = append(data.Milestones, model.GanttMilestone{
			Name:  ms.Name,
			Date:  ms.DueDate,
			Phase: phaseNames[ms.PhaseID],
		})
	}

	return data, nil
}
