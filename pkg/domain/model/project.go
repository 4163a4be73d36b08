package model

import (
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// Project is the single finance-transformation project tracked by the
// dashboard. Progress is a weighted aggregate over objective statuses.
type Project struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Phase       Phase               `json:"phase"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Status      types.ProjectStatus `json:"status"`
	Objectives  []Objective         `json:"objectives"`
	Milestones  []Milestone         `json:"milestones"`
	Budget      Budget              `json:"budget"`
	Progress    int                 `json:"progress"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// Phase is one of the project's four sequential phases
type Phase struct {
	ID                 string            `json:"id"`
	Number             int               `json:"number"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Duration           string            `json:"duration"`
	Status             types.PhaseStatus `json:"status"`
	CompletionCriteria []string          `json:"completionCriteria"`
}

// Objective is an OKR key result with a measurable target.
// Status is a deterministic function of CurrentValue/TargetValue.
type Objective struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	TargetValue  float64               `json:"targetValue"`
	CurrentValue float64               `json:"currentValue"`
	Unit         string                `json:"unit"`
	Deadline     time.Time             `json:"deadline"`
	Status       types.ObjectiveStatus `json:"status"`
}

// Milestone is a dated deliverable gate within a phase
type Milestone struct {
	ID           string                `json:"id"`
	PhaseID      string                `json:"phaseId"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	DueDate      time.Time             `json:"dueDate"`
	Status       types.MilestoneStatus `json:"status"`
	Deliverables []string              `json:"deliverables"`
	Dependencies []string              `json:"dependencies"`
}

// Budget tracks allocation and spend for the project
type Budget struct {
	Total      float64          `json:"total"`
	Allocated  float64          `json:"allocated"`
	Spent      float64          `json:"spent"`
	Categories []BudgetCategory `json:"categories"`
}

// BudgetCategory is one budget line
type BudgetCategory struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}

// ProjectTimeline is the timeline view of phases and milestones
type ProjectTimeline struct {
	Phases              []Phase     `json:"phases"`
	CurrentPhase        int         `json:"currentPhase"`
	Milestones          []Milestone `json:"milestones"`
	UpcomingMilestones  []Milestone `json:"upcomingMilestones"`
	CompletedMilestones []Milestone `json:"completedMilestones"`
}

// ProgressSummary counts completed milestones for the report
type ProgressSummary struct {
	MilestonesCompleted int `json:"milestonesCompleted"`
	MilestonesTotal     int `json:"milestonesTotal"`
}

// BudgetStatus is the budget section of the report
type BudgetStatus struct {
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	BurnRate  float64 `json:"burnRate"`
}

// ProjectReport is the generated project status report
type ProjectReport struct {
	ProjectID       string          `json:"projectId"`
	ReportDate      time.Time       `json:"reportDate"`
	OverallHealth   types.Health    `json:"overallHealth"`
	ProgressSummary ProgressSummary `json:"progressSummary"`
	BudgetStatus    BudgetStatus    `json:"budgetStatus"`
	Risks           []string        `json:"risks"`
	Issues          []string        `json:"issues"`
	NextSteps       []string        `json:"nextSteps"`
}

// GanttPhase is one bar of the Gantt chart view
type GanttPhase struct {
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Progress int       `json:"progress"`
}

// GanttMilestone is one marker of the Gantt chart view
type GanttMilestone struct {
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Phase string    `json:"phase"`
}

// GanttData is the Gantt chart payload
type GanttData struct {
	Phases     []GanttPhase     `json:"phases"`
	Milestones []GanttMilestone `json:"milestones"`
}
