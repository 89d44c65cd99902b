package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Ranking defaults. DayScale controls how fast freshness decays
// relative to vote weight: a quote one day older needs DayScale more
// votes to hold the same rank.
const (
	DefaultDayScale = 4

	// creationOrderTimeLayout truncates the submission timestamp to
	// seconds. Uniqueness is carried entirely by the submission token,
	// not by timestamp precision.
	creationOrderTimeLayout = "2006-01-02T15:04:05"
)

// DefaultEpoch is the day-zero reference for CreatedDay, kept from the
// system this board descends from.
var DefaultEpoch = time.Date(2008, time.October, 1, 0, 0, 0, 0, time.UTC)

// rankScoreOffset shifts scores into the non-negative range before
// zero-padding, so negative scores still sort lexicographically.
// Plain "%020d" of a negative integer would sort above everything.
const rankScoreOffset int64 = 5_000_000_000_000_000_000

// Ranker computes rank keys. The score formula is
//
//	score = createdDay*dayScale + voteSum
//
// evaluated inside every vote transaction, which is what makes old
// quotes decay without any background recomputation pass.
type Ranker struct {
	epoch    time.Time
	dayScale int64
}

// NewRanker returns a Ranker with the given epoch and day scale.
// Zero values fall back to DefaultEpoch and DefaultDayScale.
func NewRanker(epoch time.Time, dayScale int64) Ranker {
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	if dayScale <= 0 {
		dayScale = DefaultDayScale
	}

	return Ranker{epoch: epoch.UTC(), dayScale: dayScale}
}

// DayScale returns the configured decay factor.
func (r Ranker) DayScale() int64 {
	return r.dayScale
}

// Day returns the number of whole days between the epoch and t.
func (r Ranker) Day(t time.Time) int64 {
	return int64(t.UTC().Sub(r.epoch).Hours() / 24)
}

// Key builds the sortable rank key for a quote: a 20-digit zero-padded
// offset score followed by the creation order as tie-breaker. The
// tie-breaker makes the ordering a strict total order even when two
// quotes score identically.
func (r Ranker) Key(createdDay, voteSum int64, creationOrder string) string {
	score := createdDay*r.dayScale + voteSum

	return fmt.Sprintf("%020d|%s", score+rankScoreOffset, creationOrder)
}

// SubmissionToken derives the unique, privacy-preserving token for one
// (user, submission) pair. The per-user sequence makes the pair unique
// system-wide without a shared counter; the digest keeps the user
// identifier out of the public creation order.
func SubmissionToken(userID string, sequence int64) string {
	sum := sha256.Sum256([]byte(userID + "|" + strconv.FormatInt(sequence, 10)))

	return hex.EncodeToString(sum[:])
}

// CreationOrder builds the lexicographically sortable creation marker
// for a submission at time t with the given token.
func CreationOrder(t time.Time, token string) string {
	return t.UTC().Format(creationOrderTimeLayout) + "|" + token
}

// CreationOrderDate extracts the yyyy-mm-dd portion of a creation
// order, for display.
func CreationOrderDate(creationOrder string) string {
	if len(creationOrder) < 10 {
		return creationOrder
	}

	return creationOrder[:10]
}

// CreationOrderTimestamp extracts the second-resolution timestamp
// portion of a creation order, for display.
func CreationOrderTimestamp(creationOrder string) string {
	if len(creationOrder) < len(creationOrderTimeLayout) {
		return creationOrder
	}

	return creationOrder[:len(creationOrderTimeLayout)]
}
