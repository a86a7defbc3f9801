package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"insightboard/internal/insight/models"
	txcontext "insightboard/pkg/platform/tx"
)

// DefaultPostgresTable is the table used when none is configured.
const DefaultPostgresTable = "insights"

// insertBatchSize caps rows per INSERT, well under the 65535 bind parameter limit.
const insertBatchSize = 500

// PostgresStore keeps one JSONB document per record. Row order follows the
// serial id, which preserves load order.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgresStore uses db (opened with the pgx driver) and the given table
// name, which is quoted as an identifier.
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = DefaultPostgresTable
	}
	return &PostgresStore{db: db, table: pgx.Identifier{table}.Sanitize()}
}

// EnsureSchema creates the backing table when it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		doc JSONB NOT NULL
	)`, s.table)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure insights table: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Record, error) {
	exec := txcontext.ExecutorFor(ctx, s.db)
	rows, err := exec.QueryContext(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY id`, s.table))
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]models.Record, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec models.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Replace swaps the table contents inside one transaction, so readers see
// either the old or the new record set.
func (s *PostgresStore) Replace(ctx context.Context, records []models.Record) error {
	payloads := make([][]byte, len(records))
	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		payloads[i] = payload
	}

	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		exec := txcontext.ExecutorFor(ctx, s.db)
		if _, err := exec.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, s.table)); err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		for start := 0; start < len(payloads); start += insertBatchSize {
			end := min(start+insertBatchSize, len(payloads))
			args := make([]any, 0, end-start)
			for _, payload := range payloads[start:end] {
				args = append(args, string(payload))
			}
			if _, err := exec.ExecContext(ctx, insertBatchSQL(s.table, len(args)), args...); err != nil {
				return fmt.Errorf("insert records %d-%d: %w", start, end-1, err)
			}
		}
		return nil
	})
}

// insertBatchSQL builds a multi-row insert for n documents. VALUES rows take
// serial ids in list order.
func insertBatchSQL(table string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (doc) VALUES ", table)
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "($%d::jsonb)", i)
	}
	return b.String()
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	exec := txcontext.ExecutorFor(ctx, s.db)
	if err := exec.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
