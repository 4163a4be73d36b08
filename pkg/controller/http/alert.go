package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func (s *Server) listAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter model.AlertFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		alertType, err := types.ParseAlertType(raw)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		filter.Type = alertType
	}

	alerts, err := s.uc.Alert.List(ctx, filter)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, alerts)
}

func (s *Server) resolveAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Alert.Resolve(ctx, chi.URLParam(r, "id")); err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, map[string]string{"message": "alert resolved"})
}

// triggerTestAlert fires a warning alert for verifying the notification
// path end to end
func (s *Server) triggerTestAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	alert, err := s.uc.Alert.Trigger(ctx, &model.Alert{
		Type:     types.AlertTypeWarning,
		Category: types.AlertCategorySystem,
		Title:    "テストアラート",
		Message:  "これはテスト用のアラートです",
		Details:  map[string]any{"test": true},
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, alert)
}
