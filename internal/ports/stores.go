// Package ports defines the interfaces between the application core
// and its adapters. The core depends only on these interfaces; the
// concrete SQLite store and the in-process vote cache implement them.
package ports

import (
	"context"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// QuoteStore persists quotes and their votes.
//
// Implementations must keep VoteSum and RankKey transactionally
// consistent: CastVote applies the vote delta and rewrites the rank
// key in a single transaction.
type QuoteStore interface {
	// CreateQuote persists a new quote and returns it with its
	// store-assigned ID. Returns a conflict error if the creation
	// order collides with an existing quote.
	CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)

	// GetQuote returns the quote with the given ID, or a not found
	// error.
	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)

	// DeleteQuote removes the quote with the given ID. Deleting a
	// quote that does not exist returns a not found error. Votes cast
	// on the quote are left behind; they are unreachable once the
	// quote row is gone.
	DeleteQuote(ctx context.Context, id int64) error

	// ListNewest returns quotes in reverse creation order. An empty
	// cursor starts at the newest quote; otherwise the page starts at
	// the quote whose creation order equals the cursor. The returned
	// cursor is empty when no further page exists.
	ListNewest(ctx context.Context, cursor string, limit int) ([]*domain.Quote, string, error)

	// ListRanked returns quotes ordered by descending rank key,
	// skipping offset rows. The boolean reports whether at least one
	// more row exists past the page.
	ListRanked(ctx context.Context, offset, limit int) ([]*domain.Quote, bool, error)

	// CastVote records the user's vote on a quote, replacing any prior
	// vote, and atomically reapplies the quote's vote sum and rank
	// key. It reports whether anything changed; voting the same value
	// twice is a no-op.
	CastVote(ctx context.Context, quoteID int64, userID string, value int) (bool, error)

	// GetUserVote returns the user's current vote value on a quote.
	// A user that never voted has value 0.
	GetUserVote(ctx context.Context, quoteID int64, userID string) (int, error)
}

// VoterStore persists per-user engagement records. Records are created
// lazily on first use.
type VoterStore interface {
	// NextSequence increments and returns the user's submission
	// sequence, marking the user as a contributor. The first call for
	// a user returns 1.
	NextSequence(ctx context.Context, userID string) (int64, error)

	// MarkVoted records that the user has voted at least once.
	MarkVoted(ctx context.Context, userID string) error

	// GetProgress returns the user's engagement summary without
	// creating a record for unknown users.
	GetProgress(ctx context.Context, userID string) (domain.Progress, error)
}

// VoteCache is an advisory cache of recent vote values keyed by
// (quote, user). Reads fall through to the store on miss; entries may
// vanish at any time and are never the source of truth.
type VoteCache interface {
	// Get returns the cached vote value and whether it was present.
	Get(quoteID int64, userID string) (int, bool)

	// Set records a vote value.
	Set(quoteID int64, userID string, value int)
}
