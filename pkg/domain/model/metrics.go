package model

import (
	"encoding/json"
	"math"
)

// FinancialMetrics are the raw inputs for the cash-conversion-cycle
// formulas over a single period. They are computed on demand and never
// persisted.
type FinancialMetrics struct {
	Receivables float64 `json:"receivables"`
	Revenue     float64 `json:"revenue"`
	Inventory   float64 `json:"inventory"`
	COGS        float64 `json:"cogs"`
	Payables    float64 `json:"payables"`
	Purchases   float64 `json:"purchases"`
	CashBalance float64 `json:"cashBalance"`
}

// DefaultPeriodDays is the annualization basis for DSO/DIO/DPO
const DefaultPeriodDays = 365

// CCC returns the cash conversion cycle in days
func CCC(dso, dio, dpo float64) float64 {
	return dso + dio - dpo
}

// DSO returns days sales outstanding. A zero revenue yields 0 rather than
// an error; an organization with no sales has nothing outstanding.
func DSO(receivables, revenue, days float64) float64 {
	if revenue == 0 {
		return 0
	}
	return receivables / revenue * days
}

// DIO returns days inventory outstanding, with the same zero-denominator
// policy as DSO.
func DIO(inventory, cogs, days float64) float64 {
	if cogs == 0 {
		return 0
	}
	return inventory / cogs * days
}

// DPO returns days payables outstanding, with the same zero-denominator
// policy as DSO.
func DPO(payables, purchases, days float64) float64 {
	if purchases == 0 {
		return 0
	}
	return payables / purchases * days
}

// NetCashflow returns inflow minus outflow
func NetCashflow(inflow, outflow float64) float64 {
	return inflow - outflow
}

// BurnRate returns spend per day over the period
func BurnRate(totalExpenses, periodDays float64) float64 {
	return totalExpenses / periodDays
}

// Runway is the number of days of balance remaining at the current burn
// rate. A non-positive burn rate means the balance never depletes; that
// state is carried as positive infinity and serialized as "unbounded".
type Runway float64

// CalcRunway computes the runway from a balance and a daily burn rate
func CalcRunway(balance, burnRate float64) Runway {
	if burnRate <= 0 {
		return Runway(math.Inf(1))
	}
	return Runway(balance / burnRate)
}

// Unbounded reports whether the runway never depletes
func (r Runway) Unbounded() bool {
	return math.IsInf(float64(r), 1)
}

// Days returns the runway as a float. Only meaningful when not Unbounded.
func (r Runway) Days() float64 {
	return float64(r)
}

// MarshalJSON serializes an unbounded runway as the string "unbounded";
// IEEE infinity has no JSON representation.
func (r Runway) MarshalJSON() ([]byte, error) {
	if r.Unbounded() {
		return []byte(`"unbounded"`), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON accepts either a number or the string "unbounded"
func (r *Runway) UnmarshalJSON(data []byte) error {
	if string(data) == `"unbounded"` {
		*r = Runway(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Runway(v)
	return nil
}
