package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	risks, err := s.uc.Risk.ListRisks(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, risks)
}

func (s *Server) getRiskMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matrix, err := s.uc.Risk.GetMatrix(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, matrix)
}

func (s *Server) getRiskAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	alerts, err := s.uc.Risk.GetActiveAlerts(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, alerts)
}

func (s *Server) getGovernancePolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	policies, err := s.uc.Risk.GetGovernancePolicies(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, policies)
}

func (s *Server) getComplianceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.uc.Risk.GetComplianceStatus(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, summary)
}

func (s *Server) getRiskReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := s.uc.Risk.GenerateReport(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, report)
}

func (s *Server) updateRiskAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Impact      types.Level `json:"impact"`
		Probability types.Level `json:"probability"`
	}
	if err := decodeBody(r, &body); err != nil {
		handleError(ctx, w, err)
		return
	}

	risk, err := s.uc.Risk.UpdateAssessment(ctx, chi.URLParam(r, "id"), body.Impact, body.Probability)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, risk)
}
