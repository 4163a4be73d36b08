package types

import "github.com/m-mizutani/goerr/v2"

// AlertType represents the urgency class of a dashboard alert
type AlertType string

const (
	AlertTypeCritical AlertType = "CRITICAL"
	AlertTypeWarning  AlertType = "WARNING"
	AlertTypeInfo     AlertType = "INFO"
)

// AllAlertTypes returns all valid alert types
func AllAlertTypes() []AlertType {
	return []AlertType{
		AlertTypeCritical,
		AlertTypeWarning,
		AlertTypeInfo,
	}
}

// IsValid checks if the alert type is valid
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeCritical, AlertTypeWarning, AlertTypeInfo:
		return true
	default:
		return false
	}
}

// String returns the string representation of the alert type
func (t AlertType) String() string {
	return string(t)
}

// ParseAlertType parses a string into an AlertType
func ParseAlertType(s string) (AlertType, error) {
	t := AlertType(s)
	if !t.IsValid() {
		return "", goerr.New("invalid alert type", goerr.V("type", s), goerr.T(ErrTagValidation))
	}
	return t, nil
}

// AlertCategory represents the business domain an alert belongs to
type AlertCategory string

const (
	AlertCategoryCashFlow   AlertCategory = "CASH_FLOW"
	AlertCategoryKPI        AlertCategory = "KPI"
	AlertCategorySystem     AlertCategory = "SYSTEM"
	AlertCategoryCompliance AlertCategory = "COMPLIANCE"
	AlertCategoryRisk       AlertCategory = "RISK"
)

// IsValid checks if the alert category is valid
func (c AlertCategory) IsValid() bool {
	switch c {
	case AlertCategoryCashFlow, AlertCategoryKPI, AlertCategorySystem,
		AlertCategoryCompliance, AlertCategoryRisk:
		return true
	default:
		return false
	}
}

// String returns the string representation of the alert category
func (c AlertCategory) String() string {
	return string(c)
}

// Severity represents the severity of a derived risk alert
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the sort rank of the severity; lower means more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}
