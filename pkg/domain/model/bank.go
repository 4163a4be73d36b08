package model

import "time"

// AccountBalance is a snapshot of the organization's bank balance
type AccountBalance struct {
	AccountID        string    `json:"accountId"`
	AccountName      string    `json:"accountName"`
	Balance          float64   `json:"balance"`
	AvailableBalance float64   `json:"availableBalance"`
	Currency         string    `json:"currency"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// TransactionType distinguishes debits from credits
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// Transaction is one bank account movement
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Balance       float64         `json:"balance"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
}

// CashflowEntry is one period of observed cash movement
type CashflowEntry struct {
	Date    string  `json:"date"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	NetFlow float64 `json:"netFlow"`
	Balance float64 `json:"balance"`
}

// ForecastEntry is one projected day of cash movement
type ForecastEntry struct {
	Date    string  `json:"date"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Balance float64 `json:"balance"`
}
