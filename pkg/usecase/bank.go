package usecase

import (
	"context"
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/service/bank"
)

// bankCallTimeout bounds every outbound bank API call so a slow or
// unresponsive endpoint cannot stall the caller.
const bankCallTimeout = 10 * time.Second

// BankUseCase exposes the bank account surface to the HTTP layer
type BankUseCase struct {
	client bank.Client
}

func (uc *BankUseCase) GetBalance(ctx context.Context) (*model.AccountBalance, error) {
	ctx, cancel := context.WithTimeout(ctx, bankCallTimeout)
	defer cancel()

	return uc.client.GetAccountBalance(ctx)
}

func (uc *BankUseCase) GetTransactions(ctx context.Context, query bank.TransactionQuery) ([]*model.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, bankCallTimeout)
	defer cancel()

	return uc.client.GetTransactionHistory(ctx, query)
}
