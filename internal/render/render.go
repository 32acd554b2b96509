// Package render projects session state onto view models. Every Build
// function is a pure function of its inputs: the HTTP layer applies the
// result to the display surface, and each call fully replaces the previous
// contents of its region.
package render

import (
	"fmt"

	"github.com/globalmarket/backend/internal/models"
	"github.com/globalmarket/backend/internal/money"
	"github.com/globalmarket/backend/internal/terminal"
)

// Display truncation limits. These cap what the views show, not what the
// ledger retains.
const (
	TableLimit    = 20
	ActivityLimit = 10
)

// CatalogView is the product grid region with its count footer.
type CatalogView struct {
	Products []models.Product `json:"products"`
	Shown    int              `json:"shown"`
	Total    int              `json:"total"`
	Stores   int              `json:"stores"`
	Footer   string           `json:"footer"`
	Empty    bool             `json:"empty"`
}

// BuildCatalogView projects the full catalog and its filtered subset.
func BuildCatalogView(all, filtered []models.Product) CatalogView {
	distinct := make(map[string]struct{})
	for _, p := range filtered {
		distinct[p.Source] = struct{}{}
	}

	v := CatalogView{
		Products: filtered,
		Shown:    len(filtered),
		Total:    len(all),
		Stores:   len(distinct),
	}
	switch {
	case len(filtered) == 0:
		v.Empty = true
		v.Footer = "No products found. Try adjusting your filters or search terms."
	case len(filtered) == len(all):
		v.Footer = fmt.Sprintf("%d products available from %d stores", v.Shown, v.Stores)
	default:
		v.Footer = fmt.Sprintf("Showing %d of %d products", v.Shown, v.Total)
	}
	return v
}

// CartLine is one cart row with its extended total.
type CartLine struct {
	models.CartItem
	LineTotal float64 `json:"lineTotal"`
}

// CartView is the cart panel: line items, item count badge and grand total.
type CartView struct {
	Items     []CartLine `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     float64    `json:"total"`
	Empty     bool       `json:"empty"`
}

func BuildCartView(cart []models.CartItem) CartView {
	v := CartView{Items: make([]CartLine, 0, len(cart))}
	for _, item := range cart {
		v.Items = append(v.Items, CartLine{CartItem: item, LineTotal: money.RoundCents(item.LineTotal())})
		v.ItemCount += item.Quantity
		v.Total += item.LineTotal()
	}
	v.Total = money.RoundCents(v.Total)
	v.Empty = len(cart) == 0
	return v
}

// DashboardView carries the stat tiles plus the cosmetic signal indicator.
// Aggregates are recomputed from the ledger on every call, never cached.
type DashboardView struct {
	WalletBalance    float64   `json:"walletBalance"`
	TotalSales       float64   `json:"totalSales"`
	TotalCommission  float64   `json:"totalCommission"`
	TotalWithdrawals float64   `json:"totalWithdrawals"`
	SignalBars       []float64 `json:"signalBars"`
}

func BuildDashboardView(balance float64, ledger []models.Transaction, signalBars []float64) DashboardView {
	v := DashboardView{WalletBalance: balance, SignalBars: signalBars}
	for _, tx := range ledger {
		switch tx.Kind {
		case models.KindSale:
			v.TotalSales += tx.Amount
			v.TotalCommission += tx.Commission
		case models.KindWithdrawal:
			v.TotalWithdrawals += tx.Amount
		}
	}
	v.TotalSales = money.RoundCents(v.TotalSales)
	v.TotalCommission = money.RoundCents(v.TotalCommission)
	v.TotalWithdrawals = money.RoundCents(v.TotalWithdrawals)
	return v
}

// TransactionRow is one table row; Details collapses the kind-specific
// fields the way the table prints them.
type TransactionRow struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Kind    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Details string  `json:"details"`
	Status  string  `json:"status"`
}

// TransactionTable is the transaction table region. Rows hold at most
// TableLimit entries in ledger order; TotalRecords reports the full count
// behind the truncation.
type TransactionTable struct {
	Rows         []TransactionRow `json:"rows"`
	Filter       string           `json:"filter"`
	TotalRecords int              `json:"totalRecords"`
}

// BuildTransactionTable filters the ledger by kind ("all" or empty keeps
// everything) and truncates to the display limit.
func BuildTransactionTable(ledger []models.Transaction, kind string) TransactionTable {
	if kind == "" {
		kind = "all"
	}

	matched := make([]models.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if kind != "all" && tx.Kind != kind {
			continue
		}
		matched = append(matched, tx)
	}

	rows := make([]TransactionRow, 0, TableLimit)
	for _, tx := range matched {
		if len(rows) == TableLimit {
			break
		}
		details := "-"
		switch tx.Kind {
		case models.KindSale:
			if tx.ReferralName != "" {
				details = tx.ReferralName
			}
		case models.KindWithdrawal:
			details = fmt.Sprintf("%s (%s)", tx.AccountName, tx.BankName)
		}
		rows = append(rows, TransactionRow{
			ID:      tx.ID,
			Date:    tx.Date.Format("2006-01-02 15:04:05"),
			Kind:    tx.Kind,
			Amount:  tx.Amount,
			Details: details,
			Status:  tx.Status,
		})
	}

	return TransactionTable{Rows: rows, Filter: kind, TotalRecords: len(matched)}
}

// ActivityView is the terminal region: recent activity lines, most recent
// first.
type ActivityView struct {
	Lines []terminal.Line `json:"lines"`
}

// BuildActivityView truncates the activity feed for display.
func BuildActivityView(lines []terminal.Line, limit int) ActivityView {
	if limit <= 0 || limit > ActivityLimit {
		limit = ActivityLimit
	}
	if len(lines) > limit {
		lines = lines[:limit]
	}
	return ActivityView{Lines: lines}
}
