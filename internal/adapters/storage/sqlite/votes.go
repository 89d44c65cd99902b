package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// CastVote applies one user's vote to a quote. The quote's vote sum is
// adjusted by the difference between the new and the prior value, and
// the rank key is recomputed, all in one transaction. Returns false
// without writing when the vote value is unchanged.
func (s *Store) CastVote(ctx context.Context, quoteID int64, userID string, value int) (bool, error) {
	changed := false

	err := s.withWriteRetry(ctx, func() error {
		var err error
		changed, err = s.castVoteOnce(ctx, quoteID, userID, value)

		return err
	})

	return changed, err
}

func (s *Store) castVoteOnce(ctx context.Context, quoteID int64, userID string, value int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("cast vote: %w", err)
	}
	defer tx.Rollback()

	var (
		createdDay    int64
		creationOrder string
		voteSum       int64
	)

	err = tx.QueryRowContext(ctx,
		"SELECT created_day, creation_order, vote_sum FROM quotes WHERE id = ?", quoteID,
	).Scan(&createdDay, &creationOrder, &voteSum)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.NewNotFoundError("quote", strconv.FormatInt(quoteID, 10))
		}

		return false, fmt.Errorf("cast vote: load quote: %w", err)
	}

	prior := 0

	err = tx.QueryRowContext(ctx,
		"SELECT value FROM votes WHERE quote_id = ? AND user_id = ?", quoteID, userID,
	).Scan(&prior)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("cast vote: load prior vote: %w", err)
	}

	if prior == value {
		return false, nil
	}

	voteSum += int64(value - prior)
	rankKey := s.ranker.Key(createdDay, voteSum, creationOrder)

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO votes (quote_id, user_id, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (quote_id, user_id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		quoteID, userID, value, time.Now().UnixMilli(),
	); err != nil {
		return false, fmt.Errorf("cast vote: upsert vote: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE quotes SET vote_sum = ?, rank_key = ? WHERE id = ?",
		voteSum, rankKey, quoteID,
	); err != nil {
		return false, fmt.Errorf("cast vote: update quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("cast vote: commit: %w", err)
	}

	return true, nil
}

// GetUserVote returns the user's current vote value on a quote, with
// zero meaning no vote on record.
func (s *Store) GetUserVote(ctx context.Context, quoteID int64, userID string) (int, error) {
	value := 0

	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM votes WHERE quote_id = ? AND user_id = ?", quoteID, userID,
	).Scan(&value)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("get vote: %w", err)
	}

	return value, nil
}
