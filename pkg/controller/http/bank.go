package http

import (
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/service/bank"
)

func (s *Server) getBankBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	balance, err := s.uc.Bank.GetBalance(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, balance)
}

func (s *Server) getBankTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var query bank.TransactionQuery
	var err error
	if query.DateFrom, err = queryDate(r, "dateFrom"); err != nil {
		handleError(ctx, w, err)
		return
	}
	if query.DateTo, err = queryDate(r, "dateTo"); err != nil {
		handleError(ctx, w, err)
		return
	}
	if query.Limit, err = queryInt(r, "limit", 0); err != nil {
		handleError(ctx, w, err)
		return
	}

	transactions, err := s.uc.Bank.GetTransactions(ctx, query)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respond(ctx, w, http.StatusOK, transactions)
}

// queryDate reads an optional YYYY-MM-DD query parameter. A missing
// parameter yields the zero time.
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid date parameter",
			goerr.V("key", key), goerr.V("value", raw), goerr.T(types.ErrTagValidation))
	}
	return t, nil
}
