package config

// AlertThresholds are the trigger levels of the alert evaluator.
// Rates are fractions (0.1 = 10%), amounts are JPY.
type AlertThresholds struct {
	BalanceFloor     float64
	GrowthWarn       float64
	GrowthTarget     float64
	AutomationWarn   float64
	AutomationTarget float64
	AccuracyCritical float64
	AccuracyTarget   float64
	DropRate         float64
}

// Automation holds the cost model of the automation opportunity ranker
type Automation struct {
	SavingsFactor     float64 // share of manual time removed by automation
	HourlyRateYen     float64
	MonthlyExecutions float64
	AnnualMonths      float64
	PaybackExecutions float64 // investment sized to this many executions
	TargetLevel       int
	TemplateIncrement int
	InvestmentRatio   float64 // portfolio investment as share of annual savings
}

// Constants are the tunable business constants of the dashboard
type Constants struct {
	Alerts     AlertThresholds
	Automation Automation
}

// DefaultConstants returns the production defaults
func DefaultConstants() *Constants {
	return &Constants{
		Alerts: AlertThresholds{
			BalanceFloor:     5000000,
			GrowthWarn:       0.1,
			GrowthTarget:     0.2,
			AutomationWarn:   0.5,
			AutomationTarget: 0.7,
			AccuracyCritical: 0.9,
			AccuracyTarget:   0.95,
			DropRate:         0.1,
		},
		Automation: Automation{
			SavingsFactor:     0.8,
			HourlyRateYen:     5000,
			MonthlyExecutions: 20,
			AnnualMonths:      12,
			PaybackExecutions: 6,
			TargetLevel:       70,
			TemplateIncrement: 30,
			InvestmentRatio:   0.5,
		},
	}
}
