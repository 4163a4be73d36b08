package http

import (
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/utils/errutil"
)

type healthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

func (s *Server) health() healthStatus {
	return healthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.readinessHandler(w, r)
}

func (s *Server) livenessHandler(w http.ResponseWriter, r *http.Request) {
	respond(r.Context(), w, http.StatusOK, s.health())
}

func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Repository().Ping(ctx); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "repository is not reachable"),
			http.StatusServiceUnavailable)
		return
	}

	respond(ctx, w, http.StatusOK, s.health())
}
