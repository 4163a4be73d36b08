// Package bank talks to the GMO Aozora net bank API. Only the sunabar
// sandbox behavior is implemented; responses are synthesized locally with
// the same shapes and value ranges the sandbox returns.
package bank

import (
	"context"
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

// TransactionQuery narrows a transaction history request
type TransactionQuery struct {
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
}

// TransferRequest initiates a payment to another account
type TransferRequest struct {
	ToAccount   string
	Amount      float64
	Description string
}

// TransferResult is the acknowledgement of an initiated transfer
type TransferResult struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
}

// Client is the bank API surface used by the rest of the service
type Client interface {
	GetAccountBalance(ctx context.Context) (*model.AccountBalance, error)
	GetTransactionHistory(ctx context.Context, query TransactionQuery) ([]*model.Transaction, error)
	InitiateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}
