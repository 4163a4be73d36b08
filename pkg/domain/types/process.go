package types

// ProcessStatus represents how far a business process is automated
type ProcessStatus string

const (
	ProcessStatusManual        ProcessStatus = "manual"
	ProcessStatusSemiAutomated ProcessStatus = "semi-automated"
	ProcessStatusAutomated     ProcessStatus = "automated"
)

// AutomatedThreshold is the automation level at and above which a process
// counts as fully automated.
const AutomatedThreshold = 70

// ProcessStatusFromLevel derives the process status from its automation
// level. A process at or above AutomatedThreshold is automated, anything
// else with partial automation is semi-automated.
func ProcessStatusFromLevel(level int) ProcessStatus {
	switch {
	case level >= AutomatedThreshold:
		return ProcessStatusAutomated
	case level > 0:
		return ProcessStatusSemiAutomated
	default:
		return ProcessStatusManual
	}
}

// IsValid checks if the process status is valid
func (s ProcessStatus) IsValid() bool {
	switch s {
	case ProcessStatusManual, ProcessStatusSemiAutomated, ProcessStatusAutomated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the process status
func (s ProcessStatus) String() string {
	return string(s)
}

// ProcessType represents the business function of a process
type ProcessType string

const (
	ProcessTypeReceivables ProcessType = "receivables"
	ProcessTypePayables    ProcessType = "payables"
	ProcessTypeInventory   ProcessType = "inventory"
	ProcessTypeReporting   ProcessType = "reporting"
)

// Difficulty is the estimated implementation difficulty of an automation
// opportunity, derived from the total manual execution time.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// DifficultyFromManualMinutes buckets implementation difficulty by the sum
// of manual step execution time.
func DifficultyFromManualMinutes(minutes float64) Difficulty {
	switch {
	case minutes > 100:
		return DifficultyHigh
	case minutes > 50:
		return DifficultyMedium
	default:
		return DifficultyLow
	}
}
