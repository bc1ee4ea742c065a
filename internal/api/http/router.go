package http

import (
	"net/http"

	"rentnest-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles every HTTP handler for router construction.
type Handlers struct {
	Auth         *AuthHandler
	Payment      *PaymentHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

// NewRouter assembles the API routes. Everything except login and the
// payment-confirmation webhook requires a bearer token.
func NewRouter(h *Handlers, tokens security.TokenManager, allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(CORSMiddleware(allowedOrigins))

	r.HandleFunc("/api/login", h.Auth.Login).Methods(http.MethodPost, http.MethodOptions)
	// Stands in for the payment gateway webhook.
	r.HandleFunc("/api/payments/{id:[0-9]+}/confirm", h.Payment.Confirm).Methods(http.MethodPost, http.MethodOptions)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/payments", h.Payment.Initiate).Methods(http.MethodPost, http.MethodOptions)

	authed.HandleFunc("/reviews", h.Review.Submit).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/reviews/{id:[0-9]+}", h.Review.Update).Methods(http.MethodPut, http.MethodOptions)
	authed.HandleFunc("/reviews/{id:[0-9]+}", h.Review.Delete).Methods(http.MethodDelete, http.MethodOptions)
	authed.HandleFunc("/contracts/{id:[0-9]+}/reviews", h.Review.ContractReviews).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/contracts/eligible-for-rating", h.Review.EligibleContracts).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/users/{id:[0-9]+}/reviews", h.Review.UserReviews).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/users/{id:[0-9]+}/reputation", h.Review.Reputation).Methods(http.MethodGet, http.MethodOptions)

	authed.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.MarkAsRead).Methods(http.MethodPost, http.MethodOptions)

	return r
}
