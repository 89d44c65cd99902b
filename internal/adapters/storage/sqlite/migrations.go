package sqlite

import "fmt"

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "quotes: submissions and ranking metadata",
		SQL: `
CREATE TABLE quotes (
    id             INTEGER PRIMARY KEY,
    text           TEXT NOT NULL,
    origin_link    TEXT NOT NULL DEFAULT '',
    creator_id     TEXT NOT NULL,
    created_day    INTEGER NOT NULL,
    creation_order TEXT NOT NULL UNIQUE,
    vote_sum       INTEGER NOT NULL DEFAULT 0,
    rank_key       TEXT NOT NULL,
    created_at     INTEGER NOT NULL
);

CREATE INDEX idx_quotes_creation_order ON quotes(creation_order DESC);
CREATE INDEX idx_quotes_rank_key       ON quotes(rank_key DESC);
`,
	},
	{
		Version:     2,
		Description: "votes: one row per (quote, user)",
		SQL: `
-- No foreign key to quotes: deleting a quote leaves its votes behind,
-- unreachable through any query path.
CREATE TABLE votes (
    quote_id   INTEGER NOT NULL,
    user_id    TEXT NOT NULL,
    value      INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (quote_id, user_id)
);
`,
	},
	{
		Version:     3,
		Description: "voters: per-user submission sequence and engagement flags",
		SQL: `
CREATE TABLE voters (
    user_id         TEXT PRIMARY KEY,
    sequence        INTEGER NOT NULL DEFAULT 0,
    has_voted       INTEGER NOT NULL DEFAULT 0,
    has_added_quote INTEGER NOT NULL DEFAULT 0
);
`,
	},
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count); err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
