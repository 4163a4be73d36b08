package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/usecase"
)

func (s *Server) getCurrentKPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kpi, err := s.uc.KPI.GetCurrent(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, kpi)
}

func (s *Server) getKPIHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := queryInt(r, "days", usecase.DefaultHistoryDays)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	history, err := s.uc.KPI.GetHistory(ctx, days)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, history)
}

// queryInt reads an optional integer query parameter
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid query parameter",
			goerr.V("key", key), goerr.V("value", raw), goerr.T(types.ErrTagValidation))
	}
	return v, nil
}
