package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// NextSequence increments and returns the user's submission sequence,
// creating the voter record on first use and marking the user as a
// contributor. The upsert makes concurrent submissions by the same
// user receive distinct sequence numbers.
func (s *Store) NextSequence(ctx context.Context, userID string) (int64, error) {
	var sequence int64

	err := s.withWriteRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			`INSERT INTO voters (user_id, sequence, has_added_quote)
			 VALUES (?, 1, 1)
			 ON CONFLICT (user_id) DO UPDATE SET sequence = sequence + 1, has_added_quote = 1
			 RETURNING sequence`,
			userID,
		).Scan(&sequence)
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence for %q: %w", userID, err)
	}

	return sequence, nil
}

// MarkVoted records that the user has voted at least once.
func (s *Store) MarkVoted(ctx context.Context, userID string) error {
	err := s.withWriteRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO voters (user_id, has_voted)
			 VALUES (?, 1)
			 ON CONFLICT (user_id) DO UPDATE SET has_voted = 1`,
			userID,
		)

		return err
	})
	if err != nil {
		return fmt.Errorf("mark voted for %q: %w", userID, err)
	}

	return nil
}

// GetProgress returns the user's engagement flags. Unknown users get
// the zero value; no record is created.
func (s *Store) GetProgress(ctx context.Context, userID string) (domain.Progress, error) {
	var progress domain.Progress

	err := s.db.QueryRowContext(ctx,
		"SELECT has_voted, has_added_quote FROM voters WHERE user_id = ?", userID,
	).Scan(&progress.HasVoted, &progress.HasAddedQuote)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Progress{}, fmt.Errorf("get progress for %q: %w", userID, err)
	}

	return progress, nil
}
