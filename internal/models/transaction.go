package models

import (
	"time"
)

// Transaction kinds.
const (
	KindSale       = "sale"
	KindWithdrawal = "withdrawal"
)

// StatusCompleted is the only status a simulated transaction ever reaches:
// there is no settlement round-trip, so records are created completed.
const StatusCompleted = "completed"

// Transaction is one immutable ledger record. Kind selects which of the
// optional field groups is populated: sales carry commission, a cart
// snapshot and the referral; withdrawals carry the bank transfer details.
// The stored record keeps the full account number; masking to the last four
// digits happens only in the printed confirmation.
type Transaction struct {
	ID     string    `json:"id"`
	Kind   string    `json:"type"`
	Amount float64   `json:"amount"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`

	// sale
	Commission   float64    `json:"commission,omitempty"`
	Items        []CartItem `json:"items,omitempty"`
	ReferralName string     `json:"referral,omitempty"`

	// withdrawal
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	SenderName    string `json:"senderName,omitempty"`
}
