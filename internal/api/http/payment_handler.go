package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/service"

	"github.com/gorilla/mux"
)

// PaymentHandler exposes the simulated payment flow.
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type initiatePaymentRequest struct {
	RentalRequestID int32  `json:"rental_request_id"`
	PaymentMethod   string `json:"payment_method"`
}

func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	var req initiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	payment, err := h.paymentSvc.Initiate(r.Context(), userID, req.RentalRequestID, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Payment initiated",
		"payment": payment,
	})
}

type confirmPaymentRequest struct {
	TransactionID string `json:"transaction_id"`
}

// Confirm stands in for the payment gateway webhook.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid payment id"})
		return
	}

	var req confirmPaymentRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	payment, contract, err := h.paymentSvc.Confirm(r.Context(), int32(paymentID), req.TransactionID, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Payment confirmed and contract created",
		"payment":  payment,
		"contract": contract,
	})
}
