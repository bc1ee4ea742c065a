package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"rentnest-backend/internal/service"

	"github.com/gorilla/mux"
)

// ReviewHandler exposes the two-sided rating flow.
type ReviewHandler struct {
	ratingSvc service.RatingService
}

func NewReviewHandler(ratingSvc service.RatingService) *ReviewHandler {
	return &ReviewHandler{ratingSvc: ratingSvc}
}

type submitReviewRequest struct {
	ContractID int32  `json:"contract_id"`
	Rating     int32  `json:"rating"`
	Comment    string `json:"comment"`
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "rating must be between 1 and 5"})
		return
	}
	if len(req.Comment) > 1000 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "comment must be at most 1000 characters"})
		return
	}

	review, err := h.ratingSvc.Submit(r.Context(), userID, req.ContractID, req.Rating, req.Comment, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Rating submitted successfully. It will be revealed once both parties submit their ratings or after 14 days.",
		"review":  review,
	})
}

type updateReviewRequest struct {
	Rating  *int32  `json:"rating"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	reviewID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid review id"})
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	review, err := h.ratingSvc.Edit(r.Context(), userID, int32(reviewID), req.Rating, req.Comment, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Rating updated successfully",
		"review":  review,
	})
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	reviewID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid review id"})
		return
	}

	if err := h.ratingSvc.Delete(r.Context(), userID, int32(reviewID), time.Now()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Rating deleted successfully"})
}

// ContractReviews returns the reviews a party may see on a contract:
// everything revealed plus their own pending submission.
func (h *ReviewHandler) ContractReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	contractID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid contract id"})
		return
	}

	reviews, err := h.ratingSvc.ContractReviews(r.Context(), userID, int32(contractID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) UserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user id"})
		return
	}

	reviews, err := h.ratingSvc.UserReviews(r.Context(), int32(userID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Reputation(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user id"})
		return
	}

	reputation, err := h.ratingSvc.Reputation(r.Context(), int32(userID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reputation)
}

// EligibleContracts lists completed stays the caller may still rate.
func (h *ReviewHandler) EligibleContracts(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	contracts, err := h.ratingSvc.EligibleContracts(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}
