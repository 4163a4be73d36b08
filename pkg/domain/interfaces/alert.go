package interfaces

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

// AlertRepository is the live alert set. Alerts are process-lifetime only
// and are never written to durable storage, regardless of which backend
// serves the other collections.
type AlertRepository interface {
	// Append adds an alert to the live set
	Append(ctx context.Context, alert *model.Alert) error

	// List returns all live alerts in insertion order
	List(ctx context.Context) ([]*model.Alert, error)

	// Remove deletes an alert by ID. Removing an unknown ID is a no-op.
	Remove(ctx context.Context, id string) error
}
