package model

import (
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// Subsidy is a grant, loan or subsidy program the organization is
// applying for.
type Subsidy struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Type                types.SubsidyType    `json:"type"`
	Provider            string               `json:"provider"`
	MaxAmount           float64              `json:"maxAmount"`
	ApplicationDeadline time.Time            `json:"applicationDeadline"`
	Status              types.SubsidyStatus  `json:"status"`
	Documents           []SubsidyDocument    `json:"documents"`
	Timeline            []SubsidyEvent       `json:"timeline"`
	Requirements        []string             `json:"requirements"`
}

// SubsidyDocument is an application document attached to a subsidy
type SubsidyDocument struct {
	ID         string               `json:"id"`
	SubsidyID  string               `json:"subsidyId"`
	Name       string               `json:"name"`
	Type       string               `json:"type"`
	Status     types.DocumentStatus `json:"status"`
	UploadedAt time.Time            `json:"uploadedAt"`
	URL        string               `json:"url,omitempty"`
}

// SubsidyEvent is one entry in a subsidy's audit timeline
type SubsidyEvent struct {
	SubsidyID string               `json:"subsidyId"`
	Event     string               `json:"event"`
	Date      time.Time            `json:"date"`
	Status    types.TimelineStatus `json:"status"`
}

// ChecklistItem marks one application requirement as satisfied or not
type ChecklistItem struct {
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
}

// SubsidyApplication is one subsidy line in a funding simulation
type SubsidyApplication struct {
	Subsidy        Subsidy   `json:"subsidy"`
	Probability    float64   `json:"probability"`
	ExpectedAmount float64   `json:"expectedAmount"`
	ExpectedDate   time.Time `json:"expectedDate"`
}

// LoanApplication is one loan line in a funding simulation
type LoanApplication struct {
	Lender         string  `json:"lender"`
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interestRate"`
	TermMonths     int     `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Status         string  `json:"status"`
}

// FundingEvent is one dated entry of a simulated funding plan
type FundingEvent struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"` // application, approval, funding, repayment
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

// CashflowProjection is a projected monthly balance under the funding plan
type CashflowProjection struct {
	Date          time.Time `json:"date"`
	Inflow        float64   `json:"inflow"`
	Outflow       float64   `json:"outflow"`
	Balance       float64   `json:"balance"`
	FundingImpact float64   `json:"fundingImpact"`
}

// FundingSimulation is the full funding plan projection
type FundingSimulation struct {
	TotalRequiredFunding float64              `json:"totalRequiredFunding"`
	Subsidies            []SubsidyApplication `json:"subsidies"`
	Loans                []LoanApplication    `json:"loans"`
	Timeline             []FundingEvent       `json:"timeline"`
	CashflowProjection   []CashflowProjection `json:"cashflowProjection"`
}
