package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/baysgaia/cashmax/pkg/controller/http"
	"github.com/baysgaia/cashmax/pkg/repository/memory"
	"github.com/baysgaia/cashmax/pkg/repository/seed"
	"github.com/baysgaia/cashmax/pkg/usecase"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func newServer(t *testing.T) *httpctrl.Server {
	t.Helper()

	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := memory.New()
	gt.NoError(t, seed.Load(context.Background(), repo, now)).Required()

	uc := usecase.New(repo,
		usecase.WithClock(func() time.Time { return now }),
		usecase.WithSeed(42),
	)
	return httpctrl.New(uc)
}

func do(t *testing.T, srv *httpctrl.Server, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env)).Required()
	return rec, env
}

func TestHealthEndpoints(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec, env := do(t, srv, http.MethodGet, path, nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, env.Success)
	}
}

func TestKPIEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("current snapshot", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/kpi/current", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, env.Success)

		var kpi struct {
			CCC         float64 `json:"ccc"`
			CashBalance float64 `json:"cashBalance"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &kpi)).Required()
		gt.Number(t, kpi.CCC).Equal(75)
		gt.Number(t, kpi.CashBalance).Equal(12345678)
	})

	t.Run("history honors the days parameter", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/kpi/history?days=7", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var history struct {
			CCC []struct {
				Date string `json:"date"`
			} `json:"ccc"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &history)).Required()
		gt.Array(t, history.CCC).Length(7)
	})

	t.Run("malformed days is a bad request", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/kpi/history?days=abc", nil)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
		gt.False(t, env.Success)
	})
}

func TestCashflowEndpoints(t *testing.T) {
	srv := newServer(t)

	rec, env := do(t, srv, http.MethodGet, "/api/cashflow/daily", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	var entries []json.RawMessage
	gt.NoError(t, json.Unmarshal(env.Data, &entries)).Required()
	gt.Array(t, entries).Length(30)

	rec, env = do(t, srv, http.MethodGet, "/api/cashflow/weekly", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(env.Data, &entries)).Required()
	gt.Array(t, entries).Length(12)

	rec, env = do(t, srv, http.MethodGet, "/api/cashflow/forecast?days=14", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(env.Data, &entries)).Required()
	gt.Array(t, entries).Length(14)
}

func TestBankEndpoints(t *testing.T) {
	srv := newServer(t)

	rec, env := do(t, srv, http.MethodGet, "/api/bank/balance", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var balance struct {
		AccountID string  `json:"accountId"`
		Balance   float64 `json:"balance"`
	}
	gt.NoError(t, json.Unmarshal(env.Data, &balance)).Required()
	gt.Value(t, balance.AccountID).Equal("ACC001")
	gt.Number(t, balance.Balance).Equal(12345678)

	rec, env = do(t, srv, http.MethodGet, "/api/bank/transactions?limit=5", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	var txns []json.RawMessage
	gt.NoError(t, json.Unmarshal(env.Data, &txns)).Required()
	gt.Array(t, txns).Length(5)
}

func TestRiskEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("register lists the seeded risks", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/risk/", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		var risks []struct {
			ID string `json:"id"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &risks)).Required()
		gt.Array(t, risks).Length(3)
	})

	t.Run("assessment update rescores", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPut, "/api/risk/risk-001/assessment",
			map[string]int{"impact": 2, "probability": 2})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var risk struct {
			RiskScore int `json:"riskScore"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &risk)).Required()
		gt.Number(t, risk.RiskScore).Equal(4)
	})

	t.Run("invalid level is a bad request", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPut, "/api/risk/risk-001/assessment",
			map[string]int{"impact": 5, "probability": 2})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown risk is not found", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPut, "/api/risk/missing/assessment",
			map[string]int{"impact": 2, "probability": 2})
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("report aggregates the register", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/risk/report", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var report struct {
			Summary struct {
				TotalRisks int `json:"totalRisks"`
			} `json:"summary"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &report)).Required()
		gt.Number(t, report.Summary.TotalRisks).Equal(3)
	})
}

func TestProcessEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("unknown process is not found", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/process/missing", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("opportunities rank the seeded processes", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/process/opportunities", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var opps []struct {
			ProcessID string  `json:"processId"`
			ROI       float64 `json:"roi"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &opps)).Required()
		gt.Array(t, opps).Length(2)
	})

	t.Run("template application raises the level", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPost, "/api/process/proc-001/apply-template",
			map[string]string{"templateId": "tmpl-001"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var process struct {
			AutomationLevel int    `json:"automationLevel"`
			Status          string `json:"status"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &process)).Required()
		gt.Number(t, process.AutomationLevel).Equal(70)
		gt.Value(t, process.Status).Equal("automated")
	})
}

func TestProjectEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("objective progress update", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPut, "/api/project/objectives/obj-001/progress",
			map[string]float64{"currentValue": 20})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var objective struct {
			Status string `json:"status"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &objective)).Required()
		gt.Value(t, objective.Status).Equal("achieved")
	})

	t.Run("gantt view covers all phases", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/project/gantt", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var gantt struct {
			Phases []json.RawMessage `json:"phases"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &gantt)).Required()
		gt.Array(t, gantt.Phases).Length(4)
	})
}

func TestSubsidyEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("status transition", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPut, "/api/subsidy/it-005/status",
			map[string]string{"status": "applied"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var subsidy struct {
			Status string `json:"status"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &subsidy)).Required()
		gt.Value(t, subsidy.Status).Equal("applied")
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPut, "/api/subsidy/it-005/status",
			map[string]string{"status": "bogus"})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("simulation rejects a malformed amount", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/subsidy/simulation?amount=xyz", nil)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("simulation includes the seeded IT subsidy", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/subsidy/simulation", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var sim struct {
			Subsidies []json.RawMessage `json:"subsidies"`
			Loans     []json.RawMessage `json:"loans"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &sim)).Required()
		gt.Array(t, sim.Subsidies).Length(1)
		gt.Array(t, sim.Loans).Length(1)
	})
}

func TestAlertEndpoints(t *testing.T) {
	srv := newServer(t)

	t.Run("test alert round trip", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPost, "/api/alerts/test", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var alert struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &alert)).Required()
		gt.Value(t, alert.Title).Equal("テストアラート")

		rec, env = do(t, srv, http.MethodGet, "/api/alerts/", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		var alerts []json.RawMessage
		gt.NoError(t, json.Unmarshal(env.Data, &alerts)).Required()
		gt.Array(t, alerts).Length(1)

		rec, _ = do(t, srv, http.MethodPost, "/api/alerts/"+alert.ID+"/resolve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		_, env = do(t, srv, http.MethodGet, "/api/alerts/", nil)
		gt.NoError(t, json.Unmarshal(env.Data, &alerts)).Required()
		gt.Array(t, alerts).Length(0)
	})

	t.Run("unknown type filter is a bad request", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/alerts/?type=bogus", nil)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
