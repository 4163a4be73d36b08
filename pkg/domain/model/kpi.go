package model

// KPIMetrics is the dashboard's current KPI snapshot
type KPIMetrics struct {
	CCC              float64 `json:"ccc"`
	DSO              float64 `json:"dso"`
	DIO              float64 `json:"dio"`
	DPO              float64 `json:"dpo"`
	CashBalance      float64 `json:"cashBalance"`
	MonthlyGrowth    float64 `json:"monthlyGrowth"`
	ForecastAccuracy float64 `json:"forecastAccuracy"`
	AutomationRate   float64 `json:"automationRate"`
}

// KPIPoint is a single dated value in a KPI history series
type KPIPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// KPIHistory holds per-metric daily series for the history endpoint
type KPIHistory struct {
	CCC         []KPIPoint `json:"ccc"`
	DSO         []KPIPoint `json:"dso"`
	CashBalance []KPIPoint `json:"cashBalance"`
}
