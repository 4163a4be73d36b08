package http

import (
	"net/http"

	"github.com/baysgaia/cashmax/pkg/usecase"
)

func (s *Server) getDailyCashflow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.uc.Cashflow.GetCashflow(ctx, usecase.CashflowDaily)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, entries)
}

func (s *Server) getWeeklyCashflow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.uc.Cashflow.GetCashflow(ctx, usecase.CashflowWeekly)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, entries)
}

func (s *Server) getCashflowForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := queryInt(r, "days", usecase.DefaultForecastDays)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	forecast, err := s.uc.Cashflow.GetForecast(ctx, days)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, forecast)
}
