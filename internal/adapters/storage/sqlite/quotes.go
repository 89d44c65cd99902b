package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

const quoteColumns = "id, text, origin_link, creator_id, created_day, creation_order, vote_sum, rank_key"

// CreateQuote persists a new quote and returns it with its assigned ID.
func (s *Store) CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (text, origin_link, creator_id, created_day, creation_order, vote_sum, rank_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		quote.Text, quote.OriginLink, quote.CreatorID,
		quote.CreatedDay, quote.CreationOrder, quote.VoteSum, quote.RankKey,
		time.Now().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("quote", "creation order already taken")
		}

		return nil, fmt.Errorf("create quote: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	created := *quote
	created.ID = id

	return &created, nil
}

// GetQuote returns the quote with the given ID.
func (s *Store) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE id = ?", id)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
		}

		return nil, fmt.Errorf("get quote %d: %w", id, err)
	}

	return quote, nil
}

// DeleteQuote removes a quote row. Vote rows are not touched.
func (s *Store) DeleteQuote(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete quote %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote %d: %w", id, err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	return nil
}

// ListNewest pages through quotes in reverse creation order. The
// cursor is the creation order of the first quote of the page; one
// extra row is fetched to learn whether (and where) the next page
// starts.
func (s *Store) ListNewest(ctx context.Context, cursor string, limit int) ([]*domain.Quote, string, error) {
	if limit <= 0 {
		return nil, "", domain.NewValidationError("limit", "must be greater than zero")
	}

	var (
		rows *sql.Rows
		err  error
	)

	if cursor == "" {
		rows, err = s.db.QueryContext(ctx,
			"SELECT "+quoteColumns+` FROM quotes
			  ORDER BY creation_order DESC
			  LIMIT ?`,
			limit+1,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			"SELECT "+quoteColumns+` FROM quotes
			  WHERE creation_order <= ?
			  ORDER BY creation_order DESC
			  LIMIT ?`,
			cursor, limit+1,
		)
	}
	if err != nil {
		return nil, "", fmt.Errorf("list newest: %w", err)
	}
	defer rows.Close()

	quotes, err := collectQuotes(rows)
	if err != nil {
		return nil, "", fmt.Errorf("list newest: %w", err)
	}

	next := ""
	if len(quotes) > limit {
		next = quotes[limit].CreationOrder
		quotes = quotes[:limit]
	}

	return quotes, next, nil
}

// ListRanked returns a page of quotes by descending rank key and
// whether more rows follow.
func (s *Store) ListRanked(ctx context.Context, offset, limit int) ([]*domain.Quote, bool, error) {
	if limit <= 0 {
		return nil, false, domain.NewValidationError("limit", "must be greater than zero")
	}
	if offset < 0 {
		return nil, false, domain.NewValidationError("offset", "must not be negative")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+quoteColumns+` FROM quotes
		  ORDER BY rank_key DESC
		  LIMIT ? OFFSET ?`,
		limit+1, offset,
	)
	if err != nil {
		return nil, false, fmt.Errorf("list ranked: %w", err)
	}
	defer rows.Close()

	quotes, err := collectQuotes(rows)
	if err != nil {
		return nil, false, fmt.Errorf("list ranked: %w", err)
	}

	more := false
	if len(quotes) > limit {
		more = true
		quotes = quotes[:limit]
	}

	return quotes, more, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var q domain.Quote

	err := row.Scan(
		&q.ID, &q.Text, &q.OriginLink, &q.CreatorID,
		&q.CreatedDay, &q.CreationOrder, &q.VoteSum, &q.RankKey,
	)
	if err != nil {
		return nil, err
	}

	return &q, nil
}

func collectQuotes(rows *sql.Rows) ([]*domain.Quote, error) {
	var quotes []*domain.Quote

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

var (
	_ ports.QuoteStore    = (*Store)(nil)
	_ ports.VoterStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)
