package memory

import (
	"context"
	"sync"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

// AlertRepository keeps alerts in insertion order. It is exported so the
// firestore backend can reuse it; alerts stay in process memory regardless
// of the storage backend.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []*model.Alert
}

// NewAlertRepository returns a standalone in-memory alert store
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

func copyAlert(a *model.Alert) *model.Alert {
	copied := *a
	if a.Details != nil {
		copied.Details = make(map[string]any, len(a.Details))
		for k, v := range a.Details {
			copied.Details[k] = v
		}
	}
	return &copied
}

func (r *AlertRepository) Append(ctx context.Context, alert *model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = append(r.alerts, copyAlert(alert))
	return nil
}

func (r *AlertRepository) List(ctx context.Context) ([]*model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]*model.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		alerts = append(alerts, copyAlert(a))
	}

	return alerts, nil
}

// Remove deletes the alert with the given ID. Unknown IDs are ignored so
// that resolving an already-resolved alert stays idempotent.
func (r *AlertRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.alerts {
		if a.ID == id {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}

	return nil
}
