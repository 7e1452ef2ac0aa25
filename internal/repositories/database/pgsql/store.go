package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements DocumentStore on a single JSONB table, ledger_documents,
// keyed by (collection, id). Insertion order is kept by the seq column.
type Store struct {
	pool *pgxpool.Pool
}

var _ portsrepo.DocumentStore = (*Store)(nil)

// NewStore wraps the pool. The store owns the pool and closes it on Close.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Get(ctx context.Context, coll, id string) (*portsrepo.Snapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM ledger_documents WHERE collection = $1 AND id = $2`,
		coll, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", coll, id, err)
	}
	data, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", coll, id, err)
	}
	return &portsrepo.Snapshot{ID: id, Data: data}, nil
}

func (s *Store) Create(ctx context.Context, coll string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, coll, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, coll, id string, data map[string]any) error {
	raw, err := encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", coll, id, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO ledger_documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data;
	`, coll, id, raw)
	if err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", coll, id, err)
	}
	return nil
}

// Update merges top-level keys with the jsonb || operator.
func (s *Store) Update(ctx context.Context, coll, id string, data map[string]any) error {
	raw, err := encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", coll, id, err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE ledger_documents SET data = data || $3::jsonb WHERE collection = $1 AND id = $2`,
		coll, id, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", coll, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, coll, id string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM ledger_documents WHERE collection = $1 AND id = $2`,
		coll, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", coll, id, err)
	}
	return nil
}

// List applies all filters as one jsonb containment predicate, which keeps
// equality typed: the string "42" does not match the number 42.
func (s *Store) List(ctx context.Context, coll string, filters ...portsrepo.Filter) ([]portsrepo.Snapshot, error) {
	query := `SELECT id, data FROM ledger_documents WHERE collection = $1`
	args := []any{coll}
	if len(filters) > 0 {
		match := make(map[string]any, len(filters))
		for _, f := range filters {
			match[f.Field] = f.Value
		}
		raw, err := json.Marshal(match)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filters for %s: %w", coll, err)
		}
		query += ` AND data @> $2::jsonb`
		args = append(args, raw)
	}
	query += ` ORDER BY seq`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", coll, err)
	}
	defer rows.Close()

	out := []portsrepo.Snapshot{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", coll, err)
		}
		data, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", coll, id, err)
		}
		out = append(out, portsrepo.Snapshot{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", coll, err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// dateKey tags a timestamp inside the JSONB document so it reads back as a
// time.Time, the way the other drivers return timestamps.
const dateKey = "$date"

func encode(data map[string]any) ([]byte, error) {
	return json.Marshal(tagTimes(data))
}

func decode(raw []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	out, _ := untagTimes(data).(map[string]any)
	return out, nil
}

func tagTimes(v any) any {
	switch val := v.(type) {
	case time.Time:
		return map[string]any{dateKey: val.UTC().Format(time.RFC3339Nano)}
	case *time.Time:
		if val == nil {
			return nil
		}
		return tagTimes(*val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = tagTimes(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = tagTimes(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = tagTimes(item)
		}
		return out
	default:
		return v
	}
}

func untagTimes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if s, ok := val[dateKey].(string); ok && len(val) == 1 {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t
			}
		}
		for k, item := range val {
			val[k] = untagTimes(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = untagTimes(item)
		}
		return val
	default:
		return v
	}
}
