package storage

import (
	"context"
	"fmt"

	"github.com/calbisu/menumind/internal/models"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseStore persists cases to Postgres for deployments that want a durable
// feedback history beside the JSON snapshot. The request and menu graphs
// are stored as JSONB documents keyed by case id.
type CaseStore struct {
	pool *pgxpool.Pool
}

func NewCaseStore(ctx context.Context, databaseURL string) (*CaseStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &CaseStore{pool: pool}, nil
}

func (s *CaseStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS cases (
            id TEXT PRIMARY KEY,
            event_type TEXT NOT NULL,
            season TEXT NOT NULL,
            source TEXT NOT NULL,
            success BOOLEAN NOT NULL,
            feedback_score DOUBLE PRECISION NOT NULL,
            usage_count INTEGER NOT NULL DEFAULT 0,
            last_used TIMESTAMPTZ,
            request JSONB NOT NULL,
            menu JSONB NOT NULL,
            adaptation_notes JSONB,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`)
	if err != nil {
		return fmt.Errorf("failed to create cases table: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS cases_event_type_idx ON cases (event_type)`)
	if err != nil {
		return fmt.Errorf("failed to create event type index: %w", err)
	}
	return nil
}

// SaveCases upserts every case in one transaction.
func (s *CaseStore) SaveCases(ctx context.Context, cases []*models.Case) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO cases (
            id, event_type, season, source, success, feedback_score,
            usage_count, last_used, request, menu, adaptation_notes, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
        )
        ON CONFLICT (id) DO UPDATE SET
            success = EXCLUDED.success,
            feedback_score = EXCLUDED.feedback_score,
            usage_count = EXCLUDED.usage_count,
            last_used = EXCLUDED.last_used,
            menu = EXCLUDED.menu,
            adaptation_notes = EXCLUDED.adaptation_notes,
            updated_at = NOW()`

	for _, c := range cases {
		reqJSON, err := json.Marshal(c.Request)
		if err != nil {
			return fmt.Errorf("failed to serialize request for case %s: %w", c.ID, err)
		}
		menuJSON, err := json.Marshal(c.Menu)
		if err != nil {
			return fmt.Errorf("failed to serialize menu for case %s: %w", c.ID, err)
		}
		notesJSON, err := json.Marshal(c.AdaptationNotes)
		if err != nil {
			return fmt.Errorf("failed to serialize notes for case %s: %w", c.ID, err)
		}
		_, err = tx.Exec(ctx, stmt,
			c.ID,
			string(c.Request.EventType),
			string(c.Request.Season),
			c.Source,
			c.Success,
			c.FeedbackScore,
			c.UsageCount,
			c.LastUsed,
			reqJSON,
			menuJSON,
			notesJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert case %s: %w", c.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// LoadCases reads back every stored case.
func (s *CaseStore) LoadCases(ctx context.Context) ([]*models.Case, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, source, success, feedback_score, usage_count, last_used,
               request, menu, adaptation_notes
        FROM cases
        ORDER BY updated_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		c := &models.Case{}
		var reqJSON, menuJSON, notesJSON []byte
		err := rows.Scan(
			&c.ID,
			&c.Source,
			&c.Success,
			&c.FeedbackScore,
			&c.UsageCount,
			&c.LastUsed,
			&reqJSON,
			&menuJSON,
			&notesJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		if err := json.Unmarshal(reqJSON, &c.Request); err != nil {
			return nil, fmt.Errorf("failed to parse request for case %s: %w", c.ID, err)
		}
		if err := json.Unmarshal(menuJSON, &c.Menu); err != nil {
			return nil, fmt.Errorf("failed to parse menu for case %s: %w", c.ID, err)
		}
		if len(notesJSON) > 0 {
			if err := json.Unmarshal(notesJSON, &c.AdaptationNotes); err != nil {
				return nil, fmt.Errorf("failed to parse notes for case %s: %w", c.ID, err)
			}
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case rows: %w", err)
	}
	return cases, nil
}

func (s *CaseStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM cases").Scan(&count)
	return count, err
}

func (s *CaseStore) Close() {
	s.pool.Close()
}
