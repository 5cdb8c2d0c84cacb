// Package session persists screening sessions so a caregiver can answer in
// several sittings and regenerate explanations later.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

var ErrNotFound = errors.New("session not found")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	child_age_years INTEGER NOT NULL,
	answers_json    TEXT NOT NULL,
	lang            TEXT NOT NULL,
	report_json     TEXT,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);
`

// Session is one caregiver's stored questionnaire state.
type Session struct {
	ID            string
	ChildAgeYears int
	Answers       scoring.Answers
	Lang          instrument.Lang
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type sessionRow struct {
	ID            string         `db:"id"`
	ChildAgeYears int            `db:"child_age_years"`
	AnswersJSON   string         `db:"answers_json"`
	Lang          string         `db:"lang"`
	ReportJSON    sql.NullString `db:"report_json"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Store is a SQLite-backed session store. Guards live in memory: regenerate
// races only matter within one running process.
type Store struct {
	db *sqlx.DB

	mu     sync.Mutex
	guards map[string]*explain.Latest
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &Store{db: db, guards: make(map[string]*explain.Latest)}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put inserts or fully replaces a session. Replacing clears any stored
// report: the answers it was written for no longer exist.
func (s *Store) Put(ctx context.Context, sess Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, child_age_years, answers_json, lang, report_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, NULL, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			child_age_years = excluded.child_age_years,
			answers_json    = excluded.answers_json,
			lang            = excluded.lang,
			report_json     = NULL,
			updated_at      = excluded.updated_at`,
		sess.ID, sess.ChildAgeYears, string(answers), string(sess.Lang), now, now)
	if err != nil {
		return fmt.Errorf("put session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM sessions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	sess := Session{
		ID:            row.ID,
		ChildAgeYears: row.ChildAgeYears,
		Lang:          instrument.ParseLang(row.Lang),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.AnswersJSON), &sess.Answers); err != nil {
		return Session{}, fmt.Errorf("decode answers for %s: %w", id, err)
	}
	return sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.mu.Lock()
	delete(s.guards, id)
	s.mu.Unlock()
	return nil
}

// Guard returns the regenerate guard for a session, creating it on first use.
func (s *Store) Guard(id string) *explain.Latest {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guards[id]
	if !ok {
		g = &explain.Latest{}
		s.guards[id] = g
	}
	return g
}

// SaveReport stores the newest explanation for a session.
func (s *Store) SaveReport(ctx context.Context, id string, report explain.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET report_json = ?, updated_at = ? WHERE id = ?`,
		string(raw), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("save report for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// LatestReport returns the stored explanation, if one has been generated.
func (s *Store) LatestReport(ctx context.Context, id string) (explain.Report, bool, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM sessions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return explain.Report{}, false, ErrNotFound
	}
	if err != nil {
		return explain.Report{}, false, fmt.Errorf("get report for %s: %w", id, err)
	}
	if !row.ReportJSON.Valid || row.ReportJSON.String == "" {
		return explain.Report{}, false, nil
	}
	var report explain.Report
	if err := json.Unmarshal([]byte(row.ReportJSON.String), &report); err != nil {
		return explain.Report{}, false, fmt.Errorf("decode report for %s: %w", id, err)
	}
	return report, true, nil
}
