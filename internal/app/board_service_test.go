package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMocks struct {
	quotes *mocks.MockQuoteStore
	voters *mocks.MockVoterStore
	cache  *mocks.MockVoteCache
}

func newTestService(t *testing.T, now time.Time) (*BoardService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		quotes: mocks.NewMockQuoteStore(t),
		voters: mocks.NewMockVoterStore(t),
		cache:  mocks.NewMockVoteCache(t),
	}

	svc := NewBoardService(BoardServiceConfig{
		Quotes: m.quotes,
		Voters: m.voters,
		Cache:  m.cache,
		Logger: discardLogger(),
		Now:    func() time.Time { return now },
	})

	return svc, m
}

func TestNewBoardService_PanicsWithoutStores(t *testing.T) {
	assert.Panics(t, func() {
		NewBoardService(BoardServiceConfig{})
	})
}

func TestBoardService_AddQuote(t *testing.T) {
	now := time.Date(2008, time.October, 3, 12, 0, 0, 0, time.UTC)
	token := domain.SubmissionToken("alice", 1)
	order := domain.CreationOrder(now, token)

	svc, m := newTestService(t, now)

	m.voters.EXPECT().NextSequence(mock.Anything, "alice").Return(int64(1), nil)
	m.quotes.EXPECT().CreateQuote(mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.Text == "stay awhile and listen" &&
			q.CreatorID == "alice" &&
			q.CreatedDay == 2 &&
			q.CreationOrder == order &&
			q.VoteSum == 0
	})).Return(&domain.Quote{ID: 9, CreatorID: "alice", CreatedDay: 2, CreationOrder: order}, nil)

	// The creator's own up-vote follows the creation.
	m.quotes.EXPECT().CastVote(mock.Anything, int64(9), "alice", domain.VoteUp).Return(true, nil)
	m.cache.EXPECT().Set(int64(9), "alice", domain.VoteUp).Return()
	m.voters.EXPECT().MarkVoted(mock.Anything, "alice").Return(nil)
	m.quotes.EXPECT().GetQuote(mock.Anything, int64(9)).
		Return(&domain.Quote{ID: 9, CreatorID: "alice", VoteSum: 1}, nil)

	quote, err := svc.AddQuote(context.Background(), "alice", "stay awhile and listen", "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), quote.ID)
	assert.Equal(t, int64(1), quote.VoteSum)
}

func TestBoardService_AddQuoteValidation(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		text   string
		link   string
		check  func(error) bool
	}{
		{
			name:   "anonymous",
			userID: "",
			text:   "hello",
			check:  domain.IsForbidden,
		},
		{
			name:   "empty text",
			userID: "alice",
			text:   "   ",
			check:  domain.IsValidation,
		},
		{
			name:   "relative link",
			userID: "alice",
			text:   "hello",
			link:   "/quotes/3",
			check:  domain.IsValidation,
		},
		{
			name:   "link without host",
			userID: "alice",
			text:   "hello",
			link:   "mailto:someone",
			check:  domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, time.Now())

			_, err := svc.AddQuote(context.Background(), tt.userID, tt.text, tt.link)
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestBoardService_CastVote(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	m.quotes.EXPECT().CastVote(mock.Anything, int64(4), "bob", domain.VoteDown).Return(true, nil)
	m.cache.EXPECT().Set(int64(4), "bob", domain.VoteDown).Return()
	m.voters.EXPECT().MarkVoted(mock.Anything, "bob").Return(nil)

	err := svc.CastVote(context.Background(), "bob", 4, domain.VoteDown)
	require.NoError(t, err)
}

func TestBoardService_CastVoteUnchangedSkipsMarkVoted(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	m.quotes.EXPECT().CastVote(mock.Anything, int64(4), "bob", domain.VoteUp).Return(false, nil)
	m.cache.EXPECT().Set(int64(4), "bob", domain.VoteUp).Return()

	err := svc.CastVote(context.Background(), "bob", 4, domain.VoteUp)
	require.NoError(t, err)
}

func TestBoardService_CastVoteInvalidValue(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	err := svc.CastVote(context.Background(), "bob", 4, 2)
	assert.True(t, domain.IsValidation(err))

	err = svc.CastVote(context.Background(), "", 4, domain.VoteUp)
	assert.True(t, domain.IsForbidden(err))
}

func TestBoardService_CastVoteQuoteMissing(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	m.quotes.EXPECT().CastVote(mock.Anything, int64(99), "bob", domain.VoteUp).
		Return(false, domain.NewNotFoundError("quote", "99"))

	err := svc.CastVote(context.Background(), "bob", 99, domain.VoteUp)
	assert.True(t, domain.IsNotFound(err))
}

func TestBoardService_GetUserVote(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, m := newTestService(t, time.Now())

		m.cache.EXPECT().Get(int64(4), "bob").Return(domain.VoteUp, true)

		value, err := svc.GetUserVote(context.Background(), "bob", 4)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteUp, value)
	})

	t.Run("cache miss falls through and backfills", func(t *testing.T) {
		svc, m := newTestService(t, time.Now())

		m.cache.EXPECT().Get(int64(4), "bob").Return(0, false)
		m.quotes.EXPECT().GetUserVote(mock.Anything, int64(4), "bob").Return(domain.VoteDown, nil)
		m.cache.EXPECT().Set(int64(4), "bob", domain.VoteDown).Return()

		value, err := svc.GetUserVote(context.Background(), "bob", 4)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteDown, value)
	})

	t.Run("anonymous has no vote", func(t *testing.T) {
		svc, _ := newTestService(t, time.Now())

		value, err := svc.GetUserVote(context.Background(), "", 4)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteNone, value)
	})
}

func TestBoardService_DeleteQuote(t *testing.T) {
	quote := &domain.Quote{ID: 7, CreatorID: "alice"}

	tests := []struct {
		name      string
		requester domain.Requester
		setupMock func(serviceMocks)
	}{
		{
			name:      "creator deletes",
			requester: domain.Requester{UserID: "alice"},
			setupMock: func(m serviceMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, int64(7)).Return(quote, nil)
				m.quotes.EXPECT().DeleteQuote(mock.Anything, int64(7)).Return(nil)
			},
		},
		{
			name:      "admin deletes",
			requester: domain.Requester{UserID: "mod", Admin: true},
			setupMock: func(m serviceMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, int64(7)).Return(quote, nil)
				m.quotes.EXPECT().DeleteQuote(mock.Anything, int64(7)).Return(nil)
			},
		},
		{
			name:      "stranger is a silent no-op",
			requester: domain.Requester{UserID: "bob"},
			setupMock: func(m serviceMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, int64(7)).Return(quote, nil)
			},
		},
		{
			name:      "already gone is a silent no-op",
			requester: domain.Requester{UserID: "alice"},
			setupMock: func(m serviceMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, int64(7)).
					Return(nil, domain.NewNotFoundError("quote", "7"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, time.Now())
			tt.setupMock(m)

			err := svc.DeleteQuote(context.Background(), tt.requester, 7)
			require.NoError(t, err)
		})
	}
}

func TestBoardService_ListRanked(t *testing.T) {
	t.Run("valid page maps to offset", func(t *testing.T) {
		svc, m := newTestService(t, time.Now())

		m.quotes.EXPECT().ListRanked(mock.Anything, 20, 20).
			Return([]*domain.Quote{{ID: 1}}, true, nil)

		quotes, more, err := svc.ListRanked(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, quotes, 1)
		assert.True(t, more)
	})

	t.Run("page outside cap fails before the store", func(t *testing.T) {
		svc, _ := newTestService(t, time.Now())

		_, _, err := svc.ListRanked(context.Background(), 0)
		assert.True(t, domain.IsValidation(err))

		_, _, err = svc.ListRanked(context.Background(), DefaultMaxRankPages+1)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("last allowed page never reports more", func(t *testing.T) {
		svc, m := newTestService(t, time.Now())

		offset := (DefaultMaxRankPages - 1) * DefaultPageSize
		m.quotes.EXPECT().ListRanked(mock.Anything, offset, 20).
			Return([]*domain.Quote{{ID: 1}}, true, nil)

		_, more, err := svc.ListRanked(context.Background(), DefaultMaxRankPages)
		require.NoError(t, err)
		assert.False(t, more)
	})
}

func TestBoardService_ListNewest(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	m.quotes.EXPECT().ListNewest(mock.Anything, "", 20).
		Return([]*domain.Quote{{ID: 3}, {ID: 2}}, "cursor-2", nil)

	quotes, next, err := svc.ListNewest(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Equal(t, "cursor-2", next)
}

func TestBoardService_GetOverview(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	m.quotes.EXPECT().ListRanked(mock.Anything, 0, 20).
		Return([]*domain.Quote{{ID: 1}}, false, nil)
	m.voters.EXPECT().GetProgress(mock.Anything, "alice").
		Return(domain.Progress{HasVoted: true}, nil)

	overview, err := svc.GetOverview(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, overview.TopQuotes, 1)
	assert.True(t, overview.Progress.HasVoted)
}

func TestBoardService_GetOverviewPropagatesErrors(t *testing.T) {
	svc, m := newTestService(t, time.Now())

	storeErr := errors.New("boom")
	m.quotes.EXPECT().ListRanked(mock.Anything, 0, 20).Return(nil, false, storeErr)
	m.voters.EXPECT().GetProgress(mock.Anything, "alice").
		Return(domain.Progress{}, nil).Maybe()

	_, err := svc.GetOverview(context.Background(), "alice")
	assert.ErrorIs(t, err, storeErr)
}
