package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"                   // Postgres driver
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

// Tables names the collections. Names must be plain SQL identifiers; they are
// interpolated into statements.
type Tables struct {
	Posts       string
	Visitors    string
	Backgrounds string
	Stories     string
}

func DefaultTables() Tables {
	return Tables{Posts: "posts", Visitors: "visitors", Backgrounds: "backgrounds", Stories: "stories"}
}

// visitorPosts holds the per-visitor post counters.
func (t Tables) visitorPosts() string {
	return t.Visitors + "_posts"
}

// SQLiteRepository stores documents in SQLite, libSQL (Turso) or Postgres depending
// on the URL scheme.
type SQLiteRepository struct {
	db       *sql.DB
	tables   Tables
	postgres bool
}

func NewSQLiteRepository(dbURL string, tables Tables) (*SQLiteRepository, error) {
	driverName := driverFor(dbURL)

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite" {
		// One writer at a time; also keeps shared-cache memory databases alive.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	r := &SQLiteRepository{db: db, tables: tables, postgres: driverName == "pgx"}
	if err := r.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func driverFor(dbURL string) string {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return "pgx"
	case strings.Contains(dbURL, "libsql://"), strings.Contains(dbURL, "wss://"):
		return "libsql"
	default:
		return "sqlite"
	}
}

func (r *SQLiteRepository) migrate(ctx context.Context) error {
	t := r.tables
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			post_id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			created TEXT NOT NULL DEFAULT '',
			edited TEXT,
			preview_image_link TEXT NOT NULL DEFAULT '',
			preview_summary TEXT NOT NULL DEFAULT '',
			view_count BIGINT NOT NULL DEFAULT 0
		)`, t.Posts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			ip_address TEXT PRIMARY KEY,
			first_visit_date TEXT NOT NULL,
			last_visit_date TEXT,
			refresh_count BIGINT NOT NULL DEFAULT 1,
			ip_data TEXT
		)`, t.Visitors),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_first_visit ON %[1]s(first_visit_date)`, t.Visitors),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			ip_address TEXT NOT NULL,
			post_id TEXT NOT NULL,
			visits BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (ip_address, post_id)
		)`, t.visitorPosts()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (link TEXT PRIMARY KEY)`, t.Backgrounds),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (story TEXT PRIMARY KEY)`, t.Stories),
	}

	// Executed one by one; remote drivers reject multi-statement strings.
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for Postgres.
func (r *SQLiteRepository) rebind(query string) string {
	if !r.postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// storeErr marks err as a store failure so callers can tell it apart from not-found.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
}
