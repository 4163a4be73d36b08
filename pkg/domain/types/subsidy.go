package types

import "github.com/m-mizutani/goerr/v2"

// SubsidyType distinguishes grants, loans and subsidies
type SubsidyType string

const (
	SubsidyTypeGrant   SubsidyType = "grant"
	SubsidyTypeLoan    SubsidyType = "loan"
	SubsidyTypeSubsidy SubsidyType = "subsidy"
)

// SubsidyStatus represents the application state of a subsidy or loan
type SubsidyStatus string

const (
	SubsidyStatusPreparing SubsidyStatus = "preparing"
	SubsidyStatusApplied   SubsidyStatus = "applied"
	SubsidyStatusApproved  SubsidyStatus = "approved"
	SubsidyStatusRejected  SubsidyStatus = "rejected"
	SubsidyStatusReceived  SubsidyStatus = "received"
)

// AllSubsidyStatuses returns all valid subsidy statuses
func AllSubsidyStatuses() []SubsidyStatus {
	return []SubsidyStatus{
		SubsidyStatusPreparing,
		SubsidyStatusApplied,
		SubsidyStatusApproved,
		SubsidyStatusRejected,
		SubsidyStatusReceived,
	}
}

// IsValid checks if the subsidy status is valid
func (s SubsidyStatus) IsValid() bool {
	switch s {
	case SubsidyStatusPreparing, SubsidyStatusApplied, SubsidyStatusApproved,
		SubsidyStatusRejected, SubsidyStatusReceived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the subsidy status
func (s SubsidyStatus) String() string {
	return string(s)
}

// ParseSubsidyStatus parses a string into a SubsidyStatus
func ParseSubsidyStatus(s string) (SubsidyStatus, error) {
	status := SubsidyStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid subsidy status", goerr.V("status", s), goerr.T(ErrTagValidation))
	}
	return status, nil
}

// DocumentStatus represents the preparation state of an application document
type DocumentStatus string

const (
	DocumentStatusRequired  DocumentStatus = "required"
	DocumentStatusPreparing DocumentStatus = "preparing"
	DocumentStatusSubmitted DocumentStatus = "submitted"
	DocumentStatusApproved  DocumentStatus = "approved"
)

// TimelineStatus represents the state of a timeline event
type TimelineStatus string

const (
	TimelineStatusPlanned   TimelineStatus = "planned"
	TimelineStatusCompleted TimelineStatus = "completed"
	TimelineStatusDelayed   TimelineStatus = "delayed"
)
