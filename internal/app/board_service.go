// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// Paging defaults, applied when the config leaves them zero.
const (
	DefaultPageSize     = 20
	DefaultMaxRankPages = 20
)

// BoardService orchestrates the quote board use cases: submitting,
// listing, voting, deleting, and engagement progress. It depends on
// port interfaces, not concrete implementations.
type BoardService struct {
	quotes ports.QuoteStore
	voters ports.VoterStore
	cache  ports.VoteCache
	ranker domain.Ranker
	logger *slog.Logger

	pageSize     int
	maxRankPages int
	now          func() time.Time
}

// BoardServiceConfig contains the dependencies and tuning knobs for
// the board service.
type BoardServiceConfig struct {
	Quotes ports.QuoteStore
	Voters ports.VoterStore
	Cache  ports.VoteCache
	Ranker domain.Ranker
	Logger *slog.Logger

	// PageSize is the fixed page length for both listings.
	PageSize int

	// MaxRankPages caps how deep the ranked listing can be paged.
	MaxRankPages int

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewBoardService creates a board service. Panics when a store
// dependency is missing; that is a wiring bug, not a runtime
// condition.
func NewBoardService(cfg BoardServiceConfig) *BoardService {
	if cfg.Quotes == nil {
		panic("app: BoardService requires a quote store")
	}
	if cfg.Voters == nil {
		panic("app: BoardService requires a voter store")
	}
	if cfg.Cache == nil {
		panic("app: BoardService requires a vote cache")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxRankPages <= 0 {
		cfg.MaxRankPages = DefaultMaxRankPages
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Ranker == (domain.Ranker{}) {
		cfg.Ranker = domain.NewRanker(domain.DefaultEpoch, domain.DefaultDayScale)
	}

	return &BoardService{
		quotes:       cfg.Quotes,
		voters:       cfg.Voters,
		cache:        cfg.Cache,
		ranker:       cfg.Ranker,
		logger:       cfg.Logger,
		pageSize:     cfg.PageSize,
		maxRankPages: cfg.MaxRankPages,
		now:          cfg.Now,
	}
}

// PageSize returns the fixed page length used by the listings.
func (s *BoardService) PageSize() int {
	return s.pageSize
}

// AddQuote submits a new quote for the given user and casts the
// creator's own up-vote on it. The returned quote reflects the
// self-vote.
func (s *BoardService) AddQuote(ctx context.Context, userID, text, originLink string) (*domain.Quote, error) {
	if userID == "" {
		return nil, domain.ErrForbidden
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}

	originLink = strings.TrimSpace(originLink)
	if originLink != "" {
		parsed, err := url.Parse(originLink)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return nil, domain.NewValidationError("link", "must be an absolute URI")
		}
	}

	sequence, err := s.voters.NextSequence(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("adding quote: %w", err)
	}

	now := s.now()
	order := domain.CreationOrder(now, domain.SubmissionToken(userID, sequence))
	day := s.ranker.Day(now)

	quote, err := s.quotes.CreateQuote(ctx, &domain.Quote{
		Text:          text,
		OriginLink:    originLink,
		CreatorID:     userID,
		CreatedDay:    day,
		CreationOrder: order,
		RankKey:       s.ranker.Key(day, 0, order),
	})
	if err != nil {
		return nil, fmt.Errorf("adding quote: %w", err)
	}

	s.logger.InfoContext(ctx, "quote added",
		slog.Int64("quote_id", quote.ID),
		slog.Int64("created_day", day),
	)

	// The creator's up-vote rides on the normal vote path. The quote
	// exists at this point, so a failed self-vote is reported as a
	// zero-sum quote rather than an error.
	if err := s.CastVote(ctx, userID, quote.ID, domain.VoteUp); err != nil {
		s.logger.WarnContext(ctx, "self-vote failed",
			slog.Int64("quote_id", quote.ID),
			slog.Any("error", err),
		)

		return quote, nil
	}

	voted, err := s.quotes.GetQuote(ctx, quote.ID)
	if err != nil {
		return quote, nil
	}

	return voted, nil
}

// GetQuote returns a single quote by ID.
func (s *BoardService) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.quotes.GetQuote(ctx, id)
}

// DeleteQuote removes a quote when the requester is its creator or an
// administrator. Deleting a quote that is already gone, or that the
// requester may not touch, succeeds without doing anything; delete is
// idempotent from the caller's point of view.
func (s *BoardService) DeleteQuote(ctx context.Context, requester domain.Requester, id int64) error {
	quote, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}

		return fmt.Errorf("deleting quote: %w", err)
	}

	if !requester.MayDelete(quote) {
		s.logger.InfoContext(ctx, "delete refused",
			slog.Int64("quote_id", id),
			slog.String("user_id", requester.UserID),
		)

		return nil
	}

	if err := s.quotes.DeleteQuote(ctx, id); err != nil && !domain.IsNotFound(err) {
		return fmt.Errorf("deleting quote: %w", err)
	}

	s.logger.InfoContext(ctx, "quote deleted",
		slog.Int64("quote_id", id),
		slog.String("user_id", requester.UserID),
	)

	return nil
}

// ListNewest returns one page of quotes in reverse creation order,
// plus the cursor for the next page. An empty cursor starts at the
// top; an empty returned cursor means the listing is exhausted.
func (s *BoardService) ListNewest(ctx context.Context, cursor string) ([]*domain.Quote, string, error) {
	quotes, next, err := s.quotes.ListNewest(ctx, cursor, s.pageSize)
	if err != nil {
		return nil, "", fmt.Errorf("listing newest: %w", err)
	}

	return quotes, next, nil
}

// ListRanked returns one page of the decayed-popularity listing. Pages
// are numbered from 1 and capped; a page outside the cap fails
// validation before any query runs. The boolean reports whether a
// further page exists within the cap.
func (s *BoardService) ListRanked(ctx context.Context, page int) ([]*domain.Quote, bool, error) {
	if page < 1 || page > s.maxRankPages {
		return nil, false, domain.NewValidationError("page",
			fmt.Sprintf("must be between 1 and %d", s.maxRankPages))
	}

	quotes, more, err := s.quotes.ListRanked(ctx, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return nil, false, fmt.Errorf("listing ranked: %w", err)
	}

	if page == s.maxRankPages {
		more = false
	}

	return quotes, more, nil
}

// CastVote records the user's vote on a quote. Values outside
// {-1, 0, 1} are rejected. Repeating the current vote is a no-op.
// After a successful write the user's engagement flag and the advisory
// vote cache are updated; failures there are logged, not returned,
// since the vote itself is already durable.
func (s *BoardService) CastVote(ctx context.Context, userID string, quoteID int64, value int) error {
	if userID == "" {
		return domain.ErrForbidden
	}
	if !domain.ValidVoteValue(value) {
		return domain.NewValidationError("value", "must be -1, 0, or 1")
	}

	changed, err := s.quotes.CastVote(ctx, quoteID, userID, value)
	if err != nil {
		return fmt.Errorf("casting vote: %w", err)
	}

	s.cache.Set(quoteID, userID, value)

	if !changed {
		return nil
	}

	if err := s.voters.MarkVoted(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "mark voted failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	s.logger.InfoContext(ctx, "vote cast",
		slog.Int64("quote_id", quoteID),
		slog.Int("value", value),
	)

	return nil
}

// GetUserVote returns the user's current vote on a quote, consulting
// the advisory cache before the store. Anonymous callers always have
// no vote.
func (s *BoardService) GetUserVote(ctx context.Context, userID string, quoteID int64) (int, error) {
	if userID == "" {
		return domain.VoteNone, nil
	}

	if value, ok := s.cache.Get(quoteID, userID); ok {
		return value, nil
	}

	value, err := s.quotes.GetUserVote(ctx, quoteID, userID)
	if err != nil {
		return 0, fmt.Errorf("getting vote: %w", err)
	}

	s.cache.Set(quoteID, userID, value)

	return value, nil
}

// GetProgress returns the user's engagement record. Anonymous callers
// get the zero value.
func (s *BoardService) GetProgress(ctx context.Context, userID string) (domain.Progress, error) {
	if userID == "" {
		return domain.Progress{}, nil
	}

	progress, err := s.voters.GetProgress(ctx, userID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("getting progress: %w", err)
	}

	return progress, nil
}

// Overview is the landing-page aggregate: the first ranked page plus
// the caller's engagement record.
type Overview struct {
	TopQuotes []*domain.Quote
	More      bool
	Progress  domain.Progress
}

// GetOverview fetches the top ranked page and the user's progress
// concurrently.
func (s *BoardService) GetOverview(ctx context.Context, userID string) (*Overview, error) {
	var overview Overview

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		quotes, more, err := s.ListRanked(ctx, 1)
		if err != nil {
			return err
		}

		overview.TopQuotes = quotes
		overview.More = more

		return nil
	})

	group.Go(func() error {
		progress, err := s.GetProgress(ctx, userID)
		if err != nil {
			return err
		}

		overview.Progress = progress

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}
