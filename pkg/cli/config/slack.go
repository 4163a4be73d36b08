package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/baysgaia/cashmax/pkg/service/notify"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

// Slack holds CLI flags for Slack notification configuration
type Slack struct {
	botToken   string
	opsChannel string
	ceoChannel string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for alert notifications",
			Sources:     cli.EnvVars("CASHMAX_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for operational alerts",
			Sources:     cli.EnvVars("CASHMAX_SLACK_CHANNEL"),
			Destination: &s.opsChannel,
		},
		&cli.StringFlag{
			Name:        "slack-ceo-channel",
			Usage:       "Slack channel ID for alerts requiring CEO approval",
			Sources:     cli.EnvVars("CASHMAX_SLACK_CEO_CHANNEL"),
			Destination: &s.ceoChannel,
		},
	}
}

// IsConfigured reports whether Slack notification is enabled
func (s *Slack) IsConfigured() bool {
	return s.botToken != ""
}

// Configure builds the notifier. Without a bot token notifications are
// discarded.
func (s *Slack) Configure() (notify.Notifier, error) {
	if s.botToken == "" {
		logging.Default().Info("Slack bot token not configured, alert notifications disabled")
		return notify.Discard{}, nil
	}
	if s.opsChannel == "" {
		return nil, goerr.New("slack-channel is required when slack-bot-token is set")
	}

	var opts []notify.Option
	if s.ceoChannel != "" {
		opts = append(opts, notify.WithCEOChannel(s.ceoChannel))
	}

	notifier, err := notify.NewSlack(s.botToken, s.opsChannel, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Slack notifier")
	}

	logging.Default().Info("Slack alert notifications enabled",
		"channel", s.opsChannel)
	return notifier, nil
}
