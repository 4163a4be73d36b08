package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// slackNotifier posts alerts to the operations channel, and escalates
// alerts that need CEO approval to a dedicated channel.
type slackNotifier struct {
	api        *slack.Client
	opsChannel string
	ceoChannel string
}

// Option is a functional option for notifier configuration
type Option func(*slackNotifier)

// WithCEOChannel sets the escalation channel for alerts requiring CEO
// approval. Defaults to the operations channel.
func WithCEOChannel(channelID string) Option {
	return func(n *slackNotifier) {
		n.ceoChannel = channelID
	}
}

// NewSlack creates a Slack notifier with the provided bot token
func NewSlack(token, opsChannelID string, opts ...Option) (Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if opsChannelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	n := &slackNotifier{
		api:        slack.New(token),
		opsChannel: opsChannelID,
		ceoChannel: opsChannelID,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

func alertEmoji(t types.AlertType) string {
	switch t {
	case types.AlertTypeCritical:
		return ":rotating_light:"
	case types.AlertTypeWarning:
		return ":warning:"
	default:
		return ":information_source:"
	}
}

func (n *slackNotifier) buildBlocks(alert *model.Alert) []slack.Block {
	header := slack.NewHeaderBlock(slack.NewTextBlockObject(
		slack.PlainTextType,
		fmt.Sprintf("%s %s", alertEmoji(alert.Type), alert.Title),
		true, false,
	))

	body := slack.NewSectionBlock(slack.NewTextBlockObject(
		slack.MarkdownType, alert.Message, false, false,
	), nil, nil)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Type:*\n%s", alert.Type), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Category:*\n%s", alert.Category), false, false),
	}
	meta := slack.NewSectionBlock(nil, fields, nil)

	blocks := []slack.Block{header, body, meta}

	if alert.RequiresCEOApproval {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				":bust_in_silhouette: *CEO approval required*", false, false),
		))
	}

	return blocks
}

// NotifyAlert routes an alert to its channels. Critical alerts go to
// the operations channel; alerts needing CEO approval go to the CEO
// channel. The two routes are independent so a non-critical escalation
// does not page the operations channel.
func (n *slackNotifier) NotifyAlert(ctx context.Context, alert *model.Alert) error {
	blocks := n.buildBlocks(alert)

	postedOps := false
	if alert.Type == types.AlertTypeCritical {
		_, _, err := n.api.PostMessageContext(ctx, n.opsChannel,
			slack.MsgOptionBlocks(blocks...),
			slack.MsgOptionText(alert.Title, false),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to post alert to Slack",
				goerr.V("channel", n.opsChannel), goerr.V("alertID", alert.ID))
		}
		postedOps = true
	}

	if alert.RequiresCEOApproval && (n.ceoChannel != n.opsChannel || !postedOps) {
		_, _, err := n.api.PostMessageContext(ctx, n.ceoChannel,
			slack.MsgOptionBlocks(blocks...),
			slack.MsgOptionText(alert.Title, false),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to escalate alert to CEO channel",
				goerr.V("channel", n.ceoChannel), goerr.V("alertID", alert.ID))
		}
	}

	return nil
}
