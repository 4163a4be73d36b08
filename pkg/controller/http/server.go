package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/baysgaia/cashmax/pkg/usecase"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

type Server struct {
	router    *chi.Mux
	uc        *usecase.UseCases
	startedAt time.Time
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		uc:        uc,
		startedAt: time.Now(),
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", s.healthHandler)
		r.Get("/live", s.livenessHandler)
		r.Get("/ready", s.readinessHandler)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/kpi", func(r chi.Router) {
			r.Get("/current", s.getCurrentKPI)
			r.Get("/history", s.getKPIHistory)
		})

		r.Route("/cashflow", func(r chi.Router) {
			r.Get("/daily", s.getDailyCashflow)
			r.Get("/weekly", s.getWeeklyCashflow)
			r.Get("/forecast", s.getCashflowForecast)
		})

		r.Route("/bank", func(r chi.Router) {
			r.Get("/balance", s.getBankBalance)
			r.Get("/transactions", s.getBankTransactions)
		})

		r.Route("/risk", func(r chi.Router) {
			r.Get("/", s.listRisks)
			r.Get("/matrix", s.getRiskMatrix)
			r.Get("/alerts", s.getRiskAlerts)
			r.Get("/governance", s.getGovernancePolicies)
			r.Get("/compliance", s.getComplianceStatus)
			r.Get("/report", s.getRiskReport)
			r.Put("/{id}/assessment", s.updateRiskAssessment)
		})

		r.Route("/process", func(r chi.Router) {
			r.Get("/", s.listProcesses)
			r.Get("/opportunities", s.getAutomationOpportunities)
			r.Get("/roi", s.getAutomationROI)
			r.Get("/templates", s.listWorkflowTemplates)
			r.Get("/{id}", s.getProcess)
			r.Post("/{id}/apply-template", s.applyWorkflowTemplate)
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/", s.getProject)
			r.Get("/phases", s.listProjectPhases)
			r.Get("/current-phase", s.getCurrentPhase)
			r.Get("/timeline", s.getProjectTimeline)
			r.Get("/report", s.getProjectReport)
			r.Get("/gantt", s.getGanttData)
			r.Put("/objectives/{id}/progress", s.updateObjectiveProgress)
		})

		r.Route("/subsidy", func(r chi.Router) {
			r.Get("/", s.listSubsidies)
			r.Get("/simulation", s.getFundingSimulation)
			r.Get("/{id}", s.getSubsidy)
			r.Put("/{id}/status", s.updateSubsidyStatus)
			r.Get("/{id}/checklist", s.getApplicationChecklist)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", s.listAlerts)
			r.Post("/{id}/resolve", s.resolveAlert)
			r.Post("/test", s.triggerTestAlert)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
