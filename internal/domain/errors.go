package domain

import "errors"

// Semantic error taxonomy shared by all services. Handlers map these to
// transport status codes with errors.Is.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotEligible indicates the stay has not completed yet.
	ErrNotEligible = errors.New("stay not completed")

	// ErrForbidden indicates the actor is not a party to the contract or
	// does not own the resource being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a duplicate rating or duplicate payment.
	ErrConflict = errors.New("conflict")

	// ErrImmutable indicates an edit or delete on a revealed review.
	ErrImmutable = errors.New("review is revealed and immutable")

	// ErrSelfReferential indicates rater and rated resolve to the same user.
	ErrSelfReferential = errors.New("cannot rate yourself")
)
