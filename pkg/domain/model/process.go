package model

import (
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// BusinessProcess is a finance-related workflow with a measured automation
// level. Status is derived from AutomationLevel; use SyncStatus after any
// mutation of the level.
type BusinessProcess struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Type            types.ProcessType   `json:"type"`
	Status          types.ProcessStatus `json:"status"`
	AutomationLevel int                 `json:"automationLevel"`
	Steps           []ProcessStep       `json:"steps"`
	Metrics         ProcessMetrics      `json:"metrics"`
}

// SyncStatus re-derives Status from AutomationLevel
func (p *BusinessProcess) SyncStatus() {
	p.Status = types.ProcessStatusFromLevel(p.AutomationLevel)
}

// ManualMinutes sums execution time across steps not yet automated
func (p *BusinessProcess) ManualMinutes() float64 {
	var total float64
	for _, s := range p.Steps {
		if !s.IsAutomated {
			total += s.ExecutionTime
		}
	}
	return total
}

// ProcessStep is one step of a business process
type ProcessStep struct {
	ID            string   `json:"id"`
	ProcessID     string   `json:"processId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	IsAutomated   bool     `json:"isAutomated"`
	ExecutionTime float64  `json:"executionTime"` // minutes
	Dependencies  []string `json:"dependencies"`
}

// ProcessMetrics are observed execution metrics of a process
type ProcessMetrics struct {
	AverageExecutionTime float64    `json:"averageExecutionTime"`
	ErrorRate            float64    `json:"errorRate"`
	CompletionRate       float64    `json:"completionRate"`
	CostSavings          float64    `json:"costSavings"`
	LastExecuted         *time.Time `json:"lastExecuted,omitempty"`
}

// WorkflowTemplate is an automation recipe that can be applied to a process
type WorkflowTemplate struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	EstimatedSavings float64 `json:"estimatedSavings"`
}

// PotentialSavings is the projected benefit of automating a process
type PotentialSavings struct {
	TimeHours float64 `json:"timeHours"`
	CostYen   float64 `json:"costYen"`
}

// AutomationOpportunity is a derived, non-persisted ranking entry computed
// for every process below the automation target.
type AutomationOpportunity struct {
	ProcessID                string              `json:"processId"`
	ProcessName              string              `json:"processName"`
	CurrentState             types.ProcessStatus `json:"currentState"`
	PotentialSavings         PotentialSavings    `json:"potentialSavings"`
	RequiredInvestment       float64             `json:"requiredInvestment"`
	ROI                      float64             `json:"roi"`
	ImplementationDifficulty types.Difficulty    `json:"implementationDifficulty"`
	Recommendations          []string            `json:"recommendations"`
}

// AutomationROI is the portfolio-level automation business case
type AutomationROI struct {
	CurrentAutomationLevel float64 `json:"currentAutomationLevel"`
	TargetAutomationLevel  float64 `json:"targetAutomationLevel"`
	CurrentCost            float64 `json:"currentCost"`
	ProjectedCost          float64 `json:"projectedCost"`
	AnnualSavings          float64 `json:"annualSavings"`
	InvestmentRequired     float64 `json:"investmentRequired"`
	PaybackPeriodMonths    float64 `json:"paybackPeriod"`
}
