package domain

import "time"

type ReviewStatus string

const (
	ReviewStatusHidden   ReviewStatus = "hidden"
	ReviewStatusRevealed ReviewStatus = "revealed"
	ReviewStatusRemoved  ReviewStatus = "removed"
)

// Review is one side of the two-sided post-stay rating. It stays hidden
// until the counterparty also submits or the 14-day window elapses, then
// transitions to revealed exactly once.
type Review struct {
	ID          int32        `json:"id"`
	ContractID  int32        `json:"contract_id"`
	RaterUserID int32        `json:"rater_user_id"`
	RatedUserID int32        `json:"rated_user_id"`
	Rating      int32        `json:"rating"` // 1-5
	Comment     string       `json:"comment"`
	Status      ReviewStatus `json:"status"`
	RevealedAt  *time.Time   `json:"revealed_at,omitempty"`
	CreatedOn   time.Time    `json:"created_on"`
	UpdatedOn   time.Time    `json:"updated_on"`
}

// IsImmutable reports whether the review can no longer be edited or
// deleted. No transition ever leaves revealed.
func (r *Review) IsImmutable() bool {
	return r.Status == ReviewStatusRevealed
}

// VisibleTo reports whether viewerID may see this review. A rater always
// sees their own pending submission; the counterparty never sees it until
// reveal.
func (r *Review) VisibleTo(viewerID int32) bool {
	return r.Status == ReviewStatusRevealed || r.RaterUserID == viewerID
}

// Reputation is the derived rating summary for a user, computed on read
// from revealed reviews only.
type Reputation struct {
	UserID        int32   `json:"user_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int32   `json:"total_reviews"`
}

// EligibleContract is a completed stay the user may rate, together with
// the counterparty and the user's own submission if any.
type EligibleContract struct {
	Contract   Contract `json:"contract"`
	OtherParty *User    `json:"other_party,omitempty"`
	HasRated   bool     `json:"has_rated"`
	UserReview *Review  `json:"user_review,omitempty"`
}
