package types

// ObjectiveStatus represents the progress state of an OKR key result
type ObjectiveStatus string

const (
	ObjectiveStatusOnTrack  ObjectiveStatus = "on_track"
	ObjectiveStatusAtRisk   ObjectiveStatus = "at_risk"
	ObjectiveStatusAchieved ObjectiveStatus = "achieved"
	ObjectiveStatusMissed   ObjectiveStatus = "missed"
)

// ObjectiveStatusFromRate derives the objective status from the achievement
// rate (currentValue/targetValue*100). Boundaries are inclusive: exactly
// 100 is achieved, exactly 80 is on track, exactly 60 is at risk.
func ObjectiveStatusFromRate(rate float64) ObjectiveStatus {
	switch {
	case rate >= 100:
		return ObjectiveStatusAchieved
	case rate >= 80:
		return ObjectiveStatusOnTrack
	case rate >= 60:
		return ObjectiveStatusAtRisk
	default:
		return ObjectiveStatusMissed
	}
}

// IsValid checks if the objective status is valid
func (s ObjectiveStatus) IsValid() bool {
	switch s {
	case ObjectiveStatusOnTrack, ObjectiveStatusAtRisk,
		ObjectiveStatusAchieved, ObjectiveStatusMissed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the objective status
func (s ObjectiveStatus) String() string {
	return string(s)
}

// ProjectStatus represents the state of the project as a whole
type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not_started"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusDelayed    ProjectStatus = "delayed"
)

// PhaseStatus represents the state of a project phase
type PhaseStatus string

const (
	PhaseStatusNotStarted PhaseStatus = "not_started"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
)

// MilestoneStatus represents the state of a milestone
type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
	MilestoneStatusDelayed   MilestoneStatus = "delayed"
)

// Health is the traffic-light health of a project report
type Health string

const (
	HealthGreen  Health = "green"
	HealthYellow Health = "yellow"
	HealthRed    Health = "red"
)
