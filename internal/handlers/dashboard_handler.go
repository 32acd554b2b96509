package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/globalmarket/backend/internal/models"
	"github.com/globalmarket/backend/internal/render"
	"github.com/globalmarket/backend/internal/services"
	"github.com/globalmarket/backend/internal/syncsim"
	"github.com/globalmarket/backend/internal/terminal"
)

const receiptQRSize = 256

// DashboardHandler serves the owner view: wallet stats, the transaction
// table, receipts, withdrawals and the activity terminal.
type DashboardHandler struct {
	session   *services.SessionService
	term      *terminal.Log
	sim       *syncsim.Simulator
	validator *services.ValidationHelper
}

func NewDashboardHandler(session *services.SessionService, term *terminal.Log, sim *syncsim.Simulator) *DashboardHandler {
	return &DashboardHandler{
		session:   session,
		term:      term,
		sim:       sim,
		validator: services.NewValidationHelper(),
	}
}

// GetDashboard renders the stat tiles
// @Summary Dashboard stats
// @Description Wallet balance and ledger aggregates, recomputed per request
// @Tags dashboard
// @Produce json
// @Success 200 {object} render.DashboardView
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view := render.BuildDashboardView(h.session.WalletBalance(), h.session.Transactions(), h.sim.SignalBars())
	respondJSON(w, http.StatusOK, view)
}

// ListTransactions renders the transaction table
// @Summary Transaction history
// @Tags dashboard
// @Produce json
// @Param type query string false "Filter: all, sale or withdrawal" default(all)
// @Success 200 {object} render.TransactionTable
// @Router /transactions [get]
func (h *DashboardHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	table := render.BuildTransactionTable(h.session.Transactions(), r.URL.Query().Get("type"))
	respondJSON(w, http.StatusOK, table)
}

// GetReceipt generates a QR receipt for one transaction
// @Summary Transaction receipt QR
// @Description PNG QR code for the transaction record, base64-encoded
// @Tags dashboard
// @Produce json
// @Param txId path string true "Transaction id"
// @Success 200 {object} object{success=bool,transaction=models.Transaction,qrImage=string}
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{txId}/receipt [get]
func (h *DashboardHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")

	tx, ok := h.session.TransactionByID(txID)
	if !ok {
		services.SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}

	payload, err := json.Marshal(receiptPayload(tx))
	if err != nil {
		services.SendErrorResponse(w, "Failed to generate receipt", http.StatusInternalServerError, nil)
		return
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, receiptQRSize)
	if err != nil {
		zap.S().Errorf("[RECEIPT] QR encode failed for %s: %v", txID, err)
		services.SendErrorResponse(w, "Failed to generate receipt", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"transaction": tx,
		"qrImage":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

// receiptPayload keeps the QR content small: the full cart snapshot would
// not scan reliably at 256px.
func receiptPayload(tx models.Transaction) map[string]any {
	p := map[string]any{
		"id":     tx.ID,
		"type":   tx.Kind,
		"amount": tx.Amount,
		"date":   tx.Date,
		"status": tx.Status,
	}
	switch tx.Kind {
	case models.KindSale:
		p["referral"] = tx.ReferralName
		p["commission"] = tx.Commission
	case models.KindWithdrawal:
		p["bank"] = tx.BankName
		p["accountName"] = tx.AccountName
	}
	return p
}

// Withdraw debits the wallet into a bank account
// @Summary Withdraw from the wallet
// @Description Ordered validation; the first failing check is the error returned
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body object{amount=number,accountNumber=string,accountName=string} true "Withdrawal details"
// @Success 200 {object} object{success=bool,transaction=models.Transaction,walletBalance=number}
// @Failure 400 {object} services.ErrorResponse
// @Router /wallet/withdraw [post]
func (h *DashboardHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount        float64 `json:"amount"`
		AccountNumber string  `json:"accountNumber"`
		AccountName   string  `json:"accountName"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	tx, notification, err := h.session.Withdraw(r.Context(), req.Amount, req.AccountNumber, req.AccountName)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"transaction":   tx,
		"walletBalance": h.session.WalletBalance(),
		"notification":  notification,
	})
}

// GetActivity renders the terminal region
// @Summary Recent activity
// @Tags dashboard
// @Produce json
// @Success 200 {object} render.ActivityView
// @Router /activity [get]
func (h *DashboardHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, render.BuildActivityView(h.term.Recent(render.ActivityLimit), 0))
}

// ClearAll wipes the session and persisted state
// @Summary Clear all data
// @Description Resets wallet, ledger and cart. Requires confirm=true; anything else cancels.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body object{confirm=bool} true "Confirmation flag"
// @Success 200 {object} object{success=bool}
// @Router /data/clear [post]
func (h *DashboardHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	notification, err := h.session.ClearAll(r.Context(), req.Confirm)
	if err != nil {
		if errors.Is(err, services.ErrNotConfirmed) {
			// a cancelled prompt is a normal outcome, not an error
			respondJSON(w, http.StatusOK, map[string]any{
				"success":      false,
				"notification": notification,
			})
			return
		}
		services.SendErrorResponse(w, "Clear failed", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"notification": notification,
	})
}
