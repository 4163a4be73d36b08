package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// defaultRequiredFunding is the simulation amount when none is requested
const defaultRequiredFunding = 10000000

func (s *Server) listSubsidies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subsidies, err := s.uc.Subsidy.ListSubsidies(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, subsidies)
}

func (s *Server) getSubsidy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subsidy, err := s.uc.Subsidy.GetSubsidy(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, subsidy)
}

func (s *Server) updateSubsidyStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		handleError(ctx, w, err)
		return
	}
	status, err := types.ParseSubsidyStatus(body.Status)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	subsidy, err := s.uc.Subsidy.UpdateStatus(ctx, chi.URLParam(r, "id"), status)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, subsidy)
}

func (s *Server) getApplicationChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checklist, err := s.uc.Subsidy.GetApplicationChecklist(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, checklist)
}

func (s *Server) getFundingSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount := float64(defaultRequiredFunding)
	if raw := r.URL.Query().Get("amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			handleError(ctx, w, goerr.Wrap(err, "invalid amount parameter",
				goerr.V("value", raw), goerr.T(types.ErrTagValidation)))
			return
		}
		amount = v
	}

	simulation, err := s.uc.Subsidy.GenerateFundingSimulation(ctx, amount)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, simulation)
}
