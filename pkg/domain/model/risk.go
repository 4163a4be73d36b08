package model

import (
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// Risk is an organizational risk on a 3x3 impact/probability scale.
// RiskScore must always equal Impact x Probability; mutation paths that
// touch either field are responsible for recomputing it.
type Risk struct {
	ID                string              `json:"id"`
	Category          types.RiskCategory  `json:"category"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Impact            types.Level         `json:"impact"`
	Probability       types.Level         `json:"probability"`
	RiskScore         int                 `json:"riskScore"`
	Status            types.RiskStatus    `json:"status"`
	Owner             string              `json:"owner"`
	MitigationActions []MitigationAction  `json:"mitigationActions"`
	KRI               []KeyRiskIndicator  `json:"kri"`
	LastAssessment    time.Time           `json:"lastAssessment"`
	NextReview        time.Time           `json:"nextReview"`
}

// Score returns Impact x Probability
func (r *Risk) Score() int {
	return int(r.Impact) * int(r.Probability)
}

// MitigationAction is a planned countermeasure for a risk. RiskID is a
// back-reference for lookup only; the risk owns the action.
type MitigationAction struct {
	ID            string                 `json:"id"`
	RiskID        string                 `json:"riskId"`
	Action        string                 `json:"action"`
	DueDate       time.Time              `json:"dueDate"`
	Status        types.MitigationStatus `json:"status"`
	Owner         string                 `json:"owner"`
	Cost          float64                `json:"cost"`
	Effectiveness types.Effectiveness    `json:"effectiveness"`
}

// KeyRiskIndicator is a monitored metric with a breach threshold.
// A current value below the threshold counts as a breach.
type KeyRiskIndicator struct {
	ID           string         `json:"id"`
	RiskID       string         `json:"riskId"`
	Metric       string         `json:"metric"`
	Threshold    float64        `json:"threshold"`
	CurrentValue float64        `json:"currentValue"`
	Trend        types.KRITrend `json:"trend"`
	LastUpdated  time.Time      `json:"lastUpdated"`
}

// RiskAlert is a derived, non-persisted alert for a single risk
type RiskAlert struct {
	ID        string              `json:"id"`
	RiskID    string              `json:"riskId"`
	Type      types.RiskAlertType `json:"type"`
	Message   string              `json:"message"`
	Severity  types.Severity      `json:"severity"`
	CreatedAt time.Time           `json:"createdAt"`
}

// RiskMatrix is the fixed 3x3 severity partition. Every risk lands in
// exactly one cell keyed by (impact band, probability band).
type RiskMatrix struct {
	HighImpactHighProb []Risk `json:"highImpactHighProb"`
	HighImpactMedProb  []Risk `json:"highImpactMedProb"`
	HighImpactLowProb  []Risk `json:"highImpactLowProb"`
	MedImpactHighProb  []Risk `json:"medImpactHighProb"`
	MedImpactMedProb   []Risk `json:"medImpactMedProb"`
	MedImpactLowProb   []Risk `json:"medImpactLowProb"`
	LowImpactHighProb  []Risk `json:"lowImpactHighProb"`
	LowImpactMedProb   []Risk `json:"lowImpactMedProb"`
	LowImpactLowProb   []Risk `json:"lowImpactLowProb"`
}

// Cell returns a pointer to the matrix cell for the given bands
func (m *RiskMatrix) Cell(impact, probability types.Band) *[]Risk {
	switch impact {
	case types.BandHigh:
		switch probability {
		case types.BandHigh:
			return &m.HighImpactHighProb
		case types.BandMed:
			return &m.HighImpactMedProb
		default:
			return &m.HighImpactLowProb
		}
	case types.BandMed:
		switch probability {
		case types.BandHigh:
			return &m.MedImpactHighProb
		case types.BandMed:
			return &m.MedImpactMedProb
		default:
			return &m.MedImpactLowProb
		}
	default:
		switch probability {
		case types.BandHigh:
			return &m.LowImpactHighProb
		case types.BandMed:
			return &m.LowImpactMedProb
		default:
			return &m.LowImpactLowProb
		}
	}
}

// GovernancePolicy is an internal control document with a review cycle
type GovernancePolicy struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	EffectiveDate time.Time          `json:"effectiveDate"`
	LastReviewed  time.Time          `json:"lastReviewed"`
	NextReview    time.Time          `json:"nextReview"`
	Owner         string             `json:"owner"`
	Status        types.PolicyStatus `json:"status"`
	Documents     []PolicyDocument   `json:"documents"`
}

// PolicyDocument is a versioned attachment of a governance policy
type PolicyDocument struct {
	ID         string    `json:"id"`
	PolicyID   string    `json:"policyId"`
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ComplianceCheckpoint is a recurring regulatory check
type ComplianceCheckpoint struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Category         string                 `json:"category"`
	Frequency        string                 `json:"frequency"`
	LastChecked      *time.Time             `json:"lastChecked,omitempty"`
	NextCheck        time.Time              `json:"nextCheck"`
	Status           types.ComplianceStatus `json:"status"`
	Evidence         []string               `json:"evidence,omitempty"`
	ResponsibleParty string                 `json:"responsibleParty"`
}

// ComplianceSummary aggregates checkpoint states for the compliance endpoint
type ComplianceSummary struct {
	TotalCheckpoints int                    `json:"totalCheckpoints"`
	Compliant        int                    `json:"compliant"`
	NonCompliant     int                    `json:"nonCompliant"`
	Pending          int                    `json:"pending"`
	ComplianceRate   float64                `json:"complianceRate"`
	UpcomingChecks   []ComplianceCheckpoint `json:"upcomingChecks"`
}

// RiskReportSummary buckets risks by score for the report endpoint.
// Bands: critical >=7, high [4,7), medium [2,4), low <2.
type RiskReportSummary struct {
	TotalRisks    int `json:"totalRisks"`
	CriticalRisks int `json:"criticalRisks"`
	HighRisks     int `json:"highRisks"`
	MediumRisks   int `json:"mediumRisks"`
	LowRisks      int `json:"lowRisks"`
}

// MitigationProgress counts mitigation actions by status
type MitigationProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Planned    int `json:"planned"`
}

// RiskReport is the aggregate risk report
type RiskReport struct {
	Summary            RiskReportSummary  `json:"summary"`
	TopRisks           []Risk             `json:"topRisks"`
	MitigationProgress MitigationProgress `json:"mitigationProgress"`
	FinancialExposure  float64            `json:"financialExposure"`
}
