package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/baysgaia/cashmax/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	var constCfg config.Constants

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the business constants configuration file",
		Flags:   constCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if constCfg.Path() == "" {
				color.Yellow("No config file specified, defaults will be used")
				return nil
			}

			appCfg, err := config.LoadAppConfiguration(constCfg.Path())
			if err != nil {
				color.Red("Configuration validation failed: %s", err.Error())
				return goerr.Wrap(err, "configuration validation failed")
			}

			constants := appCfg.ToDomainConstants()
			color.Green("Configuration is valid: %s", constCfg.Path())
			fmt.Printf("  balance floor:     %.0f JPY\n", constants.Alerts.BalanceFloor)
			fmt.Printf("  automation target: %d%%\n", constants.Automation.TargetLevel)
			fmt.Printf("  hourly rate:       %.0f JPY\n", constants.Automation.HourlyRateYen)

			return nil
		},
	}
}
