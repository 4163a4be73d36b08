package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, err := s.uc.Project.GetProject(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, project)
}

func (s *Server) listProjectPhases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	phases, err := s.uc.Project.ListPhases(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, phases)
}

func (s *Server) getCurrentPhase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	phase, err := s.uc.Project.GetCurrentPhase(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, phase)
}

func (s *Server) getProjectTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	timeline, err := s.uc.Project.GetTimeline(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, timeline)
}

func (s *Server) getProjectReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := s.uc.Project.GenerateReport(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, report)
}

func (s *Server) getGanttData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := s.uc.Project.GetGanttData(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, data)
}

func (s *Server) updateObjectiveProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		CurrentValue float64 `json:"currentValue"`
	}
	if err := decodeBody(r, &body); err != nil {
		handleError(ctx, w, err)
		return
	}

	objective, err := s.uc.Project.UpdateObjectiveProgress(ctx, chi.URLParam(r, "id"), body.CurrentValue)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, objective)
}
