// Package domain contains core business entities and rules for the
// quote board: quotes, per-user votes, voter engagement state, and the
// time-decaying ranking function.
package domain

// Quote is a single submitted quote and its ranking metadata.
type Quote struct {
	// ID is the store-assigned identifier, immutable after creation.
	ID int64

	// Text is the quote itself.
	Text string

	// OriginLink is an optional absolute URI pointing at the source of
	// the quote. Empty means no link.
	OriginLink string

	// CreatorID identifies the submitting user.
	CreatorID string

	// CreatedDay is the number of whole days between the ranking epoch
	// and the moment of submission. Assigned once, never mutated.
	CreatedDay int64

	// CreationOrder totally orders quotes by submission:
	// "{timestamp to seconds}|{submission token}". The token is never
	// reused, so two quotes created in the same second still order.
	CreationOrder string

	// VoteSum is the sum of the current vote value of every user that
	// voted on this quote. Mutated only inside a vote transaction.
	VoteSum int64

	// RankKey is the sortable decayed-popularity key. Always recomputed
	// in the same transaction that changes VoteSum.
	RankKey string
}

// Vote is one user's current vote on one quote. At most one exists per
// (quote, user) pair; an absent vote counts as value 0.
type Vote struct {
	QuoteID int64
	UserID  string
	Value   int
}

// Vote values accepted at the service boundary.
const (
	VoteDown = -1
	VoteNone = 0
	VoteUp   = 1
)

// ValidVoteValue reports whether v is an accepted vote value.
// The original system stored whatever integer arrived; the boundary
// here is deliberately stricter.
func ValidVoteValue(v int) bool {
	return v == VoteDown || v == VoteNone || v == VoteUp
}

// Voter is the per-user engagement record. Created lazily on first
// interaction and never deleted.
type Voter struct {
	UserID string

	// Sequence counts this user's quote submissions. It only ever
	// increases and seeds the submission token (see SubmissionToken).
	Sequence int64

	HasVoted      bool
	HasAddedQuote bool
}

// Progress is the engagement summary exposed to callers.
type Progress struct {
	HasVoted      bool
	HasAddedQuote bool
}

// Progress bitfield flags, composed by Progress.Bits.
const (
	ProgressShowedUp    = 1 << 0
	ProgressSignedIn    = 1 << 1
	ProgressVoted       = 1 << 2
	ProgressContributed = 1 << 3
)

// Bits folds the progress record into the compact bitfield clients
// render. Every caller has at least shown up.
func (p Progress) Bits(signedIn bool) int {
	bits := ProgressShowedUp

	if signedIn {
		bits |= ProgressSignedIn
	}
	if p.HasVoted {
		bits |= ProgressVoted
	}
	if p.HasAddedQuote {
		bits |= ProgressContributed
	}

	return bits
}

// Requester identifies the caller of a mutating operation.
type Requester struct {
	UserID string
	Admin  bool
}

// MayDelete reports whether the requester is allowed to delete q:
// only the creator or an administrator.
func (r Requester) MayDelete(q *Quote) bool {
	return r.Admin || (r.UserID != "" && r.UserID == q.CreatorID)
}
