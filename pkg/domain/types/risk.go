package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Level is an ordinal rating used for both risk impact and probability.
// Valid values are 1 (low), 2 (medium) and 3 (high).
type Level int

const (
	LevelLow    Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
)

// Validate checks that the level is within the 1..3 scale
func (l Level) Validate() error {
	if l < LevelLow || l > LevelHigh {
		return goerr.New("level must be 1, 2 or 3", goerr.V("level", int(l)), goerr.T(ErrTagValidation))
	}
	return nil
}

// Band returns the matrix band name for the level
func (l Level) Band() Band {
	switch l {
	case LevelHigh:
		return BandHigh
	case LevelMedium:
		return BandMed
	default:
		return BandLow
	}
}

// Band is the bucketing axis of the 3x3 risk matrix
type Band string

const (
	BandLow  Band = "low"
	BandMed  Band = "med"
	BandHigh Band = "high"
)

// RiskCategory represents the domain a risk belongs to
type RiskCategory string

const (
	RiskCategoryFinancial   RiskCategory = "financial"
	RiskCategoryTechnical   RiskCategory = "technical"
	RiskCategoryOperational RiskCategory = "operational"
	RiskCategoryCompliance  RiskCategory = "compliance"
	RiskCategoryStrategic   RiskCategory = "strategic"
)

// IsValid checks if the risk category is valid
func (c RiskCategory) IsValid() bool {
	switch c {
	case RiskCategoryFinancial, RiskCategoryTechnical, RiskCategoryOperational,
		RiskCategoryCompliance, RiskCategoryStrategic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category
func (c RiskCategory) String() string {
	return string(c)
}

// RiskStatus represents the lifecycle state of a risk
type RiskStatus string

const (
	RiskStatusIdentified RiskStatus = "identified"
	RiskStatusAssessed   RiskStatus = "assessed"
	RiskStatusMitigated  RiskStatus = "mitigated"
	RiskStatusAccepted   RiskStatus = "accepted"
	RiskStatusClosed     RiskStatus = "closed"
)

// IsValid checks if the risk status is valid
func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusIdentified, RiskStatusAssessed, RiskStatusMitigated,
		RiskStatusAccepted, RiskStatusClosed:
		return true
	default:
		return false
	}
}

// MitigationStatus represents the state of a mitigation action
type MitigationStatus string

const (
	MitigationStatusPlanned    MitigationStatus = "planned"
	MitigationStatusInProgress MitigationStatus = "in_progress"
	MitigationStatusCompleted  MitigationStatus = "completed"
)

// Effectiveness is the expected effect of a mitigation action
type Effectiveness string

const (
	EffectivenessLow    Effectiveness = "low"
	EffectivenessMedium Effectiveness = "medium"
	EffectivenessHigh   Effectiveness = "high"
)

// KRITrend represents the direction a key risk indicator is moving
type KRITrend string

const (
	KRITrendImproving     KRITrend = "improving"
	KRITrendStable        KRITrend = "stable"
	KRITrendDeteriorating KRITrend = "deteriorating"
)

// RiskAlertType classifies derived risk alerts
type RiskAlertType string

const (
	RiskAlertThresholdBreach RiskAlertType = "threshold_breach"
	RiskAlertReviewDue       RiskAlertType = "review_due"
)

// PolicyStatus represents the approval state of a governance policy
type PolicyStatus string

const (
	PolicyStatusDraft       PolicyStatus = "draft"
	PolicyStatusApproved    PolicyStatus = "approved"
	PolicyStatusUnderReview PolicyStatus = "under_review"
)

// ComplianceStatus represents the state of a compliance checkpoint
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "non_compliant"
	ComplianceStatusPending      ComplianceStatus = "pending"
)
