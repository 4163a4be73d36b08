package bank

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

const (
	defaultAccountID   = "ACC001"
	defaultAccountName = "ベイスガイア運転資金口座"
	defaultBalance     = 12345678

	historyDays = 30

	// defaultMaxLatency bounds the simulated network round trip
	defaultMaxLatency = 200 * time.Millisecond
)

// sunabarClient synthesizes sandbox responses deterministically from its
// random source. All amounts are JPY.
type sunabarClient struct {
	accountID   string
	accountName string
	balance     float64
	maxLatency  time.Duration
	rng         *rand.Rand
	now         func() time.Time
}

// Option is a functional option for client configuration
type Option func(*sunabarClient)

// WithSeed makes the synthesized transaction history reproducible
func WithSeed(seed int64) Option {
	return func(c *sunabarClient) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBalance overrides the fixed account balance
func WithBalance(balance float64) Option {
	return func(c *sunabarClient) {
		c.balance = balance
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *sunabarClient) {
		c.now = now
	}
}

// WithLatency sets the upper bound of the simulated round trip. Zero
// disables the delay.
func WithLatency(max time.Duration) Option {
	return func(c *sunabarClient) {
		c.maxLatency = max
	}
}

// NewSunabar creates a sandbox bank client
func NewSunabar(opts ...Option) Client {
	c := &sunabarClient{
		accountID:   defaultAccountID,
		accountName: defaultAccountName,
		balance:     defaultBalance,
		maxLatency:  defaultMaxLatency,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// roundTrip simulates a bounded-latency network call. It fails fast on
// an expired context and aborts the delay when the context is done.
func (c *sunabarClient) roundTrip(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "bank request cancelled", goerr.T(types.ErrTagUpstream))
	}
	if c.maxLatency <= 0 {
		return nil
	}

	timer := time.NewTimer(time.Duration(c.rng.Int63n(int64(c.maxLatency))))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "bank request cancelled", goerr.T(types.ErrTagUpstream))
	}
}

func (c *sunabarClient) GetAccountBalance(ctx context.Context) (*model.AccountBalance, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	return &model.AccountBalance{
		AccountID:        c.accountID,
		AccountName:      c.accountName,
		Balance:          c.balance,
		AvailableBalance: c.balance,
		Currency:         "JPY",
		LastUpdated:      c.now(),
	}, nil
}

func (c *sunabarClient) GetTransactionHistory(ctx context.Context, query TransactionQuery) ([]*model.Transaction, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	var transactions []*model.Transaction
	now := c.now()

	for i := 0; i < historyDays; i++ {
		day := now.AddDate(0, 0, -i)
		if !query.DateFrom.IsZero() && day.Before(query.DateFrom) {
			continue
		}
		if !query.DateTo.IsZero() && day.After(query.DateTo) {
			continue
		}

		perDay := c.rng.Intn(5) + 1
		for j := 0; j < perDay; j++ {
			isCredit := c.rng.Float64() > 0.4
			amount := float64(c.rng.Intn(1000000) + 10000)

			txn := &model.Transaction{
				TransactionID: fmt.Sprintf("TXN%d%d", day.UnixMilli(), j),
				Date:          day,
				Amount:        amount,
				Balance:       12000000 + (c.rng.Float64()-0.5)*2000000,
			}
			if isCredit {
				txn.Type = model.TransactionCredit
				txn.Category = "revenue"
				txn.Description = fmt.Sprintf("売掛金入金 - 顧客%d", c.rng.Intn(100))
			} else {
				txn.Type = model.TransactionDebit
				txn.Category = "expense"
				txn.Description = fmt.Sprintf("支払い - 取引先%d", c.rng.Intn(50))
			}
			transactions = append(transactions, txn)
		}
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	if query.Limit > 0 && len(transactions) > query.Limit {
		transactions = transactions[:query.Limit]
	}

	return transactions, nil
}

func (c *sunabarClient) InitiateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}
	if req.ToAccount == "" {
		return nil, goerr.New("transfer destination is required", goerr.T(types.ErrTagValidation))
	}
	if req.Amount <= 0 {
		return nil, goerr.New("transfer amount must be positive",
			goerr.V("amount", req.Amount), goerr.T(types.ErrTagValidation))
	}

	logging.From(ctx).Info("initiating transfer",
		"toAccount", req.ToAccount,
		"amount", req.Amount,
	)

	return &TransferResult{
		TransferID: fmt.Sprintf("TRF%d", c.now().UnixMilli()),
		Status:     "pending",
	}, nil
}
