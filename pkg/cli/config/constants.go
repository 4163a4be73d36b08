package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/baysgaia/cashmax/pkg/domain/model/config"
)

// AppConfig is the TOML file overriding the business constants. Omitted
// values keep their defaults.
type AppConfig struct {
	Alerts     *AlertsConfig     `toml:"alerts"`
	Automation *AutomationConfig `toml:"automation"`
}

// AlertsConfig overrides the alert evaluator thresholds
type AlertsConfig struct {
	BalanceFloor     *float64 `toml:"balance_floor"`
	GrowthWarn       *float64 `toml:"growth_warn"`
	GrowthTarget     *float64 `toml:"growth_target"`
	AutomationWarn   *float64 `toml:"automation_warn"`
	AutomationTarget *float64 `toml:"automation_target"`
	AccuracyCritical *float64 `toml:"accuracy_critical"`
	AccuracyTarget   *float64 `toml:"accuracy_target"`
	DropRate         *float64 `toml:"drop_rate"`
}

// Validate checks if the AlertsConfig is valid
func (a *AlertsConfig) Validate() error {
	if a.BalanceFloor != nil && *a.BalanceFloor < 0 {
		return goerr.New("balance_floor must not be negative", goerr.V("value", *a.BalanceFloor))
	}
	for name, rate := range map[string]*float64{
		"growth_warn":       a.GrowthWarn,
		"growth_target":     a.GrowthTarget,
		"automation_warn":   a.AutomationWarn,
		"automation_target": a.AutomationTarget,
		"accuracy_critical": a.AccuracyCritical,
		"accuracy_target":   a.AccuracyTarget,
		"drop_rate":         a.DropRate,
	} {
		if rate != nil && (*rate < 0 || *rate > 1) {
			return goerr.New("rate must be a fraction between 0 and 1",
				goerr.V("key", name), goerr.V("value", *rate))
		}
	}
	return nil
}

// AutomationConfig overrides the automation cost model
type AutomationConfig struct {
	SavingsFactor     *float64 `toml:"savings_factor"`
	HourlyRateYen     *float64 `toml:"hourly_rate_yen"`
	MonthlyExecutions *float64 `toml:"monthly_executions"`
	TargetLevel       *int     `toml:"target_level"`
	TemplateIncrement *int     `toml:"template_increment"`
	InvestmentRatio   *float64 `toml:"investment_ratio"`
}

// Validate checks if the AutomationConfig is valid
func (a *AutomationConfig) Validate() error {
	if a.SavingsFactor != nil && (*a.SavingsFactor <= 0 || *a.SavingsFactor > 1) {
		return goerr.New("savings_factor must be in (0, 1]", goerr.V("value", *a.SavingsFactor))
	}
	if a.HourlyRateYen != nil && *a.HourlyRateYen <= 0 {
		return goerr.New("hourly_rate_yen must be positive", goerr.V("value", *a.HourlyRateYen))
	}
	if a.MonthlyExecutions != nil && *a.MonthlyExecutions <= 0 {
		return goerr.New("monthly_executions must be positive", goerr.V("value", *a.MonthlyExecutions))
	}
	if a.TargetLevel != nil && (*a.TargetLevel < 1 || *a.TargetLevel > 100) {
		return goerr.New("target_level must be between 1 and 100", goerr.V("value", *a.TargetLevel))
	}
	if a.TemplateIncrement != nil && (*a.TemplateIncrement < 1 || *a.TemplateIncrement > 100) {
		return goerr.New("template_increment must be between 1 and 100", goerr.V("value", *a.TemplateIncrement))
	}
	if a.InvestmentRatio != nil && *a.InvestmentRatio <= 0 {
		return goerr.New("investment_ratio must be positive", goerr.V("value", *a.InvestmentRatio))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.Alerts != nil {
		if err := a.Alerts.Validate(); err != nil {
			return goerr.Wrap(err, "invalid alerts config")
		}
	}
	if a.Automation != nil {
		if err := a.Automation.Validate(); err != nil {
			return goerr.Wrap(err, "invalid automation config")
		}
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

// ToDomainConstants applies the overrides on top of the defaults
func (a *AppConfig) ToDomainConstants() *domainConfig.Constants {
	c := domainConfig.DefaultConstants()

	if a.Alerts != nil {
		applyFloat(&c.Alerts.BalanceFloor, a.Alerts.BalanceFloor)
		applyFloat(&c.Alerts.GrowthWarn, a.Alerts.GrowthWarn)
		applyFloat(&c.Alerts.GrowthTarget, a.Alerts.GrowthTarget)
		applyFloat(&c.Alerts.AutomationWarn, a.Alerts.AutomationWarn)
		applyFloat(&c.Alerts.AutomationTarget, a.Alerts.AutomationTarget)
		applyFloat(&c.Alerts.AccuracyCritical, a.Alerts.AccuracyCritical)
		applyFloat(&c.Alerts.AccuracyTarget, a.Alerts.AccuracyTarget)
		applyFloat(&c.Alerts.DropRate, a.Alerts.DropRate)
	}
	if a.Automation != nil {
		applyFloat(&c.Automation.SavingsFactor, a.Automation.SavingsFactor)
		applyFloat(&c.Automation.HourlyRateYen, a.Automation.HourlyRateYen)
		applyFloat(&c.Automation.MonthlyExecutions, a.Automation.MonthlyExecutions)
		applyFloat(&c.Automation.InvestmentRatio, a.Automation.InvestmentRatio)
		if a.Automation.TargetLevel != nil {
			c.Automation.TargetLevel = *a.Automation.TargetLevel
		}
		if a.Automation.TemplateIncrement != nil {
			c.Automation.TemplateIncrement = *a.Automation.TemplateIncrement
		}
	}

	return c
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Constants holds the CLI flag for the business constants config file
type Constants struct {
	path string
}

// Flags returns CLI flags for constants configuration
func (c *Constants) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML file overriding business constants",
			Sources:     cli.EnvVars("CASHMAX_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured file path
func (c *Constants) Path() string {
	return c.path
}

// Configure loads the constants, falling back to defaults when no file
// was given
func (c *Constants) Configure() (*domainConfig.Constants, error) {
	if c.path == "" {
		return domainConfig.DefaultConstants(), nil
	}

	appCfg, err := LoadAppConfiguration(c.path)
	if err != nil {
		return nil, err
	}
	return appCfg.ToDomainConstants(), nil
}
