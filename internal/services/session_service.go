package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/globalmarket/backend/internal/metrics"
	"github.com/globalmarket/backend/internal/models"
	"github.com/globalmarket/backend/internal/money"
	"github.com/globalmarket/backend/internal/notify"
	"github.com/globalmarket/backend/internal/terminal"
)

// DefaultCommissionRate is the referral commission credited per sale.
const DefaultCommissionRate = 0.05

// Persistence is the gateway the session flushes its state through after
// every mutating operation. All methods fail soft.
type Persistence interface {
	Load(ctx context.Context) models.PersistedState
	Save(ctx context.Context, state models.PersistedState)
	Clear(ctx context.Context)
}

// Wallet and cart operation failures. Validation is ordered and the first
// failure wins; the error text is the user-facing reason.
var (
	ErrEmptyCart            = errors.New("your cart is empty")
	ErrInvalidAmount        = errors.New("please enter a valid amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidAccountNumber = errors.New("please enter a valid 10-digit account number")
	ErrMissingAccountName   = errors.New("please enter account name")
	ErrNotConfirmed         = errors.New("clear all data cancelled")
)

// Options carry the session identity and commission terms.
type Options struct {
	CommissionRate float64
	PlatformName   string
	OwnerName      string
	ReferralName   string
	BankName       string
}

// SessionService owns the mutable session state: catalog, cart, transaction
// ledger and wallet balance. One instance lives for the process lifetime and
// every mutation goes through its methods; the view layer never writes
// fields directly.
type SessionService struct {
	mu      sync.Mutex
	catalog []models.Product
	cart    []models.CartItem
	ledger  []models.Transaction
	balance float64

	store     Persistence
	notifier  notify.Notifier
	term      *terminal.Log
	validator *ValidationHelper
	opts      Options

	now   func() time.Time
	newID func() string
}

func NewSessionService(store Persistence, notifier notify.Notifier, term *terminal.Log, products []models.Product, opts Options) *SessionService {
	if opts.CommissionRate <= 0 {
		opts.CommissionRate = DefaultCommissionRate
	}
	return &SessionService{
		catalog:   products,
		store:     store,
		notifier:  notifier,
		term:      term,
		validator: NewValidationHelper(),
		opts:      opts,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Hydrate loads the persisted wallet balance, ledger and cart. The catalog
// is regenerated per session and is not part of persisted state.
func (s *SessionService) Hydrate(ctx context.Context) {
	state := s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = state.WalletBalance
	s.ledger = state.Transactions
	s.cart = state.Cart
}

// Catalog returns the session's product list. Products are immutable, so
// callers share the backing slice.
func (s *SessionService) Catalog() []models.Product {
	return s.catalog
}

// Cart returns a copy of the cart in insertion order.
func (s *SessionService) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Transactions returns a copy of the ledger, most recent first.
func (s *SessionService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// TransactionByID looks up a single ledger record.
func (s *SessionService) TransactionByID(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.ledger {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// WalletBalance returns the current balance.
func (s *SessionService) WalletBalance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// AddToCart puts the identified product in the cart, incrementing the
// quantity when it is already there. An unknown id is a silent no-op: ids
// originate from the rendered catalog, so a miss is never user-visible.
func (s *SessionService) AddToCart(ctx context.Context, productID int) (models.CartItem, notify.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *models.Product
	for i := range s.catalog {
		if s.catalog[i].ID == productID {
			product = &s.catalog[i]
			break
		}
	}
	if product == nil {
		zap.S().Debugf("[SESSION] add to cart ignored, unknown product id %d", productID)
		return models.CartItem{}, notify.Notification{}, false
	}

	var item models.CartItem
	found := false
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			item = s.cart[i]
			found = true
			break
		}
	}
	if !found {
		item = models.CartItem{Product: *product, Quantity: 1}
		s.cart = append(s.cart, item)
	}

	s.persistLocked(ctx)
	return item, s.emit("Product added to cart!", notify.SeveritySuccess), true
}

// Checkout "processes payment": it totals the cart, credits the referral
// commission to the wallet, prepends a sale transaction carrying a snapshot
// of the cart, and empties the cart. An empty cart is rejected with a
// warning and no state change.
func (s *SessionService) Checkout(ctx context.Context) (models.Transaction, notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		n := s.emit("Your cart is empty!", notify.SeverityWarning)
		return models.Transaction{}, n, ErrEmptyCart
	}

	var amount float64
	for _, item := range s.cart {
		amount += item.LineTotal()
	}
	amount = money.RoundCents(amount)
	commission := money.RoundCents(amount * s.opts.CommissionRate)

	// snapshot: later cart mutations must not reach the stored record
	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	tx := models.Transaction{
		ID:           s.newID(),
		Kind:         models.KindSale,
		Amount:       amount,
		Commission:   commission,
		Items:        items,
		ReferralName: s.opts.ReferralName,
		Date:         s.now(),
		Status:       models.StatusCompleted,
	}

	s.balance = money.RoundCents(s.balance + commission)
	s.ledger = append([]models.Transaction{tx}, s.ledger...)
	s.cart = nil
	s.persistLocked(ctx)

	metrics.SalesAmount.Add(amount)
	metrics.CommissionAmount.Add(commission)
	metrics.CheckoutCount.Inc()

	s.term.Append(fmt.Sprintf("NEW SALE: %s", money.Format(amount)), notify.SeveritySuccess)
	s.term.Append(fmt.Sprintf("Commission earned: %s", money.Format(commission)), notify.SeveritySuccess)
	s.term.Append(fmt.Sprintf("Referral: %s", s.opts.ReferralName), notify.SeverityInfo)
	s.term.Append(fmt.Sprintf("Items purchased: %d", len(items)), notify.SeverityInfo)

	n := s.emit(fmt.Sprintf("Payment successful! Commission earned: %s", money.Format(commission)), notify.SeveritySuccess)
	return tx, n, nil
}

// withdrawalCheck encodes the withdrawal validation order: validator walks
// fields in declaration order, so the first failing field here is the one
// reported to the user.
type withdrawalCheck struct {
	Amount        float64 `validate:"required,gt=0"`
	Balance       float64 `validate:"gtefield=Amount"`
	AccountNumber string  `validate:"len=10"`
	AccountName   string  `validate:"required"`
}

// Withdraw debits the wallet into the entered bank account. Validation is
// ordered and the first failure aborts with a specific reason, leaving
// balance and ledger untouched. Amounts are rounded to whole cents before
// validation. The printed confirmation masks the account number to its last
// four digits; the stored record keeps it in full.
func (s *SessionService) Withdraw(ctx context.Context, amount float64, accountNumber, accountName string) (models.Transaction, notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount = money.RoundCents(amount)
	accountName = strings.TrimSpace(accountName)

	check := withdrawalCheck{
		Amount:        amount,
		Balance:       s.balance,
		AccountNumber: accountNumber,
		AccountName:   accountName,
	}
	if err := s.validator.ValidateStruct(&check); err != nil {
		failure := withdrawalError(err)
		n := s.emit(failure.Error(), notify.SeverityError)
		return models.Transaction{}, n, failure
	}

	tx := models.Transaction{
		ID:            s.newID(),
		Kind:          models.KindWithdrawal,
		Amount:        amount,
		BankName:      s.opts.BankName,
		AccountNumber: accountNumber,
		AccountName:   accountName,
		SenderName:    s.opts.OwnerName,
		Date:          s.now(),
		Status:        models.StatusCompleted,
	}

	s.balance = money.RoundCents(s.balance - amount)
	s.ledger = append([]models.Transaction{tx}, s.ledger...)
	s.persistLocked(ctx)

	metrics.WithdrawalAmount.Add(amount)

	masked := "****" + accountNumber[len(accountNumber)-4:]
	s.term.Append(fmt.Sprintf("WITHDRAWAL INITIATED: %s", money.Format(amount)), notify.SeveritySuccess)
	s.term.Append(fmt.Sprintf("Transfer to: %s", s.opts.BankName), notify.SeverityInfo)
	s.term.Append(fmt.Sprintf("Account: %s (%s)", accountName, masked), notify.SeverityInfo)
	s.term.Append(fmt.Sprintf("Sender: %s", s.opts.OwnerName), notify.SeverityInfo)

	n := s.emit(fmt.Sprintf("Withdrawal of %s processed successfully!", money.Format(amount)), notify.SeveritySuccess)
	return tx, n, nil
}

// withdrawalError maps the first failing check to its user-facing reason.
func withdrawalError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrInvalidAmount
	}
	switch verrs[0].StructField() {
	case "Amount":
		return ErrInvalidAmount
	case "Balance":
		return ErrInsufficientBalance
	case "AccountNumber":
		return ErrInvalidAccountNumber
	case "AccountName":
		return ErrMissingAccountName
	}
	return ErrInvalidAmount
}

// ClearAll resets the wallet, ledger and cart and erases persisted state.
// The confirmation flag models the user's yes/no prompt: an unconfirmed
// call cancels without touching anything.
func (s *SessionService) ClearAll(ctx context.Context, confirmed bool) (notify.Notification, error) {
	if !confirmed {
		return notify.Notification{Message: ErrNotConfirmed.Error(), Severity: notify.SeverityInfo}, ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance = 0
	s.ledger = nil
	s.cart = nil
	s.store.Clear(ctx)

	s.term.Append("All data cleared successfully", notify.SeverityWarning)
	s.term.Append("Wallet balance reset to $0.00", notify.SeverityInfo)
	s.term.Append("Transaction history cleared", notify.SeverityInfo)

	return s.emit("All data cleared successfully!", notify.SeveritySuccess), nil
}

// emit forwards a notification to the fire-and-forget surface and returns
// it for the HTTP layer to embed in its response.
func (s *SessionService) emit(message, severity string) notify.Notification {
	s.notifier.Notify(message, severity)
	return notify.Notification{Message: message, Severity: severity}
}

// persistLocked flushes current state through the gateway. Callers hold the
// session lock; the gateway never reports failure back.
func (s *SessionService) persistLocked(ctx context.Context) {
	s.store.Save(ctx, models.PersistedState{
		WalletBalance: s.balance,
		Transactions:  s.ledger,
		Cart:          s.cart,
	})
}
