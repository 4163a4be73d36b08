package model

import (
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// Alert is a triggered dashboard alert. Alerts live only in the
// in-memory store for the lifetime of the process; resolving one removes
// it from the live set.
type Alert struct {
	ID                  string              `json:"id"`
	Type                types.AlertType     `json:"type"`
	Category            types.AlertCategory `json:"category"`
	Title               string              `json:"title"`
	Message             string              `json:"message"`
	Details             map[string]any      `json:"details,omitempty"`
	TriggeredAt         time.Time           `json:"triggeredAt"`
	RequiresCEOApproval bool                `json:"requiresCEOApproval,omitempty"`
}

// AlertFilter narrows GetAlerts results. Only Type is applied; Resolved is
// accepted for interface compatibility but deliberately ignored, because a
// resolved alert is removed from the live set and can never match.
type AlertFilter struct {
	Type     types.AlertType
	Resolved *bool
}
