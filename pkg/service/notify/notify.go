package notify

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

// Notifier delivers triggered alerts to an external channel
type Notifier interface {
	NotifyAlert(ctx context.Context, alert *model.Alert) error
}

// Discard is a Notifier that drops all alerts. Used when no Slack
// credentials are configured.
type Discard struct{}

func (Discard) NotifyAlert(ctx context.Context, alert *model.Alert) error {
	return nil
}
