package bank_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/service/bank"
)

func fixedClock() func() time.Time {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func newClient() bank.Client {
	return bank.NewSunabar(bank.WithSeed(42), bank.WithClock(fixedClock()), bank.WithLatency(0))
}

func TestGetAccountBalance(t *testing.T) {
	ctx := context.Background()

	balance, err := newClient().GetAccountBalance(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, balance.AccountID).Equal("ACC001")
	gt.Number(t, balance.Balance).Equal(12345678)
	gt.Number(t, balance.AvailableBalance).Equal(12345678)
	gt.Value(t, balance.Currency).Equal("JPY")
	gt.Value(t, balance.LastUpdated).Equal(fixedClock()())
}

func TestGetAccountBalanceOverride(t *testing.T) {
	ctx := context.Background()
	client := bank.NewSunabar(bank.WithBalance(5000000), bank.WithLatency(0))

	balance, err := client.GetAccountBalance(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, balance.Balance).Equal(5000000)
}

func TestGetTransactionHistory(t *testing.T) {
	ctx := context.Background()
	now := fixedClock()()

	t.Run("covers 30 days newest first", func(t *testing.T) {
		txns, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{})
		gt.NoError(t, err).Required()
		gt.True(t, len(txns) >= 30)
		gt.True(t, len(txns) <= 150)

		for i := 1; i < len(txns); i++ {
			gt.False(t, txns[i].Date.After(txns[i-1].Date))
		}
		gt.Value(t, txns[0].Date).Equal(now)
		gt.Value(t, txns[len(txns)-1].Date).Equal(now.AddDate(0, 0, -29))
	})

	t.Run("synthesized values stay in range", func(t *testing.T) {
		txns, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{})
		gt.NoError(t, err).Required()

		for _, txn := range txns {
			gt.True(t, strings.HasPrefix(txn.TransactionID, "TXN"))
			gt.True(t, txn.Amount >= 10000 && txn.Amount < 1010000)
			gt.True(t, txn.Balance >= 11000000 && txn.Balance < 13000000)

			switch txn.Type {
			case model.TransactionCredit:
				gt.Value(t, txn.Category).Equal("revenue")
			case model.TransactionDebit:
				gt.Value(t, txn.Category).Equal("expense")
			default:
				t.Errorf("unexpected transaction type: %v", txn.Type)
			}
		}
	})

	t.Run("date window filters days", func(t *testing.T) {
		from := now.AddDate(0, 0, -7)
		txns, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{
			DateFrom: from,
		})
		gt.NoError(t, err).Required()
		for _, txn := range txns {
			gt.False(t, txn.Date.Before(from))
		}

		to := now.AddDate(0, 0, -20)
		txns, err = newClient().GetTransactionHistory(ctx, bank.TransactionQuery{
			DateTo: to,
		})
		gt.NoError(t, err).Required()
		for _, txn := range txns {
			gt.False(t, txn.Date.After(to))
		}
	})

	t.Run("limit truncates the newest slice", func(t *testing.T) {
		txns, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{Limit: 10})
		gt.NoError(t, err).Required()
		gt.Array(t, txns).Length(10)
		gt.Value(t, txns[0].Date).Equal(now)
	})

	t.Run("same seed yields the same history", func(t *testing.T) {
		a, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{})
		gt.NoError(t, err).Required()
		b, err := newClient().GetTransactionHistory(ctx, bank.TransactionQuery{})
		gt.NoError(t, err).Required()

		gt.Number(t, len(a)).Equal(len(b))
		for i := range a {
			gt.Value(t, a[i].TransactionID).Equal(b[i].TransactionID)
			gt.Number(t, a[i].Amount).Equal(b[i].Amount)
		}
	})
}

func TestInitiateTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted transfer is pending", func(t *testing.T) {
		result, err := newClient().InitiateTransfer(ctx, bank.TransferRequest{
			ToAccount: "ACC999",
			Amount:    100000,
		})
		gt.NoError(t, err).Required()
		gt.True(t, strings.HasPrefix(result.TransferID, "TRF"))
		gt.Value(t, result.Status).Equal("pending")
	})

	t.Run("missing destination is rejected", func(t *testing.T) {
		_, err := newClient().InitiateTransfer(ctx, bank.TransferRequest{Amount: 100000})
		gt.Error(t, err)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		_, err := newClient().InitiateTransfer(ctx, bank.TransferRequest{
			ToAccount: "ACC999", Amount: 0,
		})
		gt.Error(t, err)
		_, err = newClient().InitiateTransfer(ctx, bank.TransferRequest{
			ToAccount: "ACC999", Amount: -500,
		})
		gt.Error(t, err)
	})
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newClient()
	_, err := client.GetAccountBalance(ctx)
	gt.Error(t, err)
	_, err = client.GetTransactionHistory(ctx, bank.TransactionQuery{})
	gt.Error(t, err)
	_, err = client.InitiateTransfer(ctx, bank.TransferRequest{ToAccount: "A", Amount: 1})
	gt.Error(t, err)
}

func TestRoundTripHonorsContext(t *testing.T) {
	t.Run("expired deadline fails fast", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		client := bank.NewSunabar(bank.WithSeed(42), bank.WithLatency(5*time.Second))
		started := time.Now()
		_, err := client.GetAccountBalance(ctx)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagUpstream))
		gt.True(t, time.Since(started) < time.Second)
	})

	t.Run("delay aborts on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		client := bank.NewSunabar(bank.WithSeed(42), bank.WithLatency(30*time.Second))
		started := time.Now()
		_, err := client.GetTransactionHistory(ctx, bank.TransactionQuery{})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagUpstream))
		gt.True(t, time.Since(started) < time.Second)
	})
}
