package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	processes, err := s.uc.Process.ListProcesses(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, processes)
}

func (s *Server) getProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	process, err := s.uc.Process.GetProcess(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, process)
}

func (s *Server) getAutomationOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opportunities, err := s.uc.Process.GetOpportunities(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, opportunities)
}

func (s *Server) getAutomationROI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roi, err := s.uc.Process.GetROI(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, roi)
}

func (s *Server) listWorkflowTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := s.uc.Process.ListTemplates(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, templates)
}

func (s *Server) applyWorkflowTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		TemplateID string `json:"templateId"`
	}
	if err := decodeBody(r, &body); err != nil {
		handleError(ctx, w, err)
		return
	}

	process, err := s.uc.Process.ApplyTemplate(ctx, chi.URLParam(r, "id"), body.TemplateID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, process)
}
