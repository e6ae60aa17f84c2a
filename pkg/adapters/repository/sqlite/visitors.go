package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

const visitorColumns = `ip_address, first_visit_date, last_visit_date, refresh_count, ip_data`

// TouchVisitor relies on the store's single-row atomicity: the insert either creates
// the row with refresh_count 1 or bumps an existing one, and the returned count tells
// the two apart.
func (r *SQLiteRepository) TouchVisitor(ctx context.Context, ipAddress string, now time.Time) (bool, error) {
	v := r.tables.Visitors
	query := r.rebind(fmt.Sprintf(`INSERT INTO %[1]s (ip_address, first_visit_date, refresh_count) VALUES (?, ?, 1)
		ON CONFLICT (ip_address) DO UPDATE SET
			refresh_count = %[1]s.refresh_count + 1,
			last_visit_date = excluded.first_visit_date
		RETURNING refresh_count`, v))

	var refreshCount int64
	if err := r.db.QueryRowContext(ctx, query, ipAddress, formatTime(now)).Scan(&refreshCount); err != nil {
		return false, storeErr("touch visitor", err)
	}
	return refreshCount == 1, nil
}

func (r *SQLiteRepository) AttachIPData(ctx context.Context, ipAddress string, data *domain.IPData) error {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	query := r.rebind(fmt.Sprintf(`UPDATE %s SET ip_data = ? WHERE ip_address = ? AND ip_data IS NULL`, r.tables.Visitors))
	if _, err := r.db.ExecContext(ctx, query, string(raw), ipAddress); err != nil {
		return storeErr("attach ip data", err)
	}
	return nil
}

func (r *SQLiteRepository) IncrementVisitedPost(ctx context.Context, ipAddress, postID string) error {
	vp := r.tables.visitorPosts()
	query := r.rebind(fmt.Sprintf(`INSERT INTO %[1]s (ip_address, post_id, visits) VALUES (?, ?, 1)
		ON CONFLICT (ip_address, post_id) DO UPDATE SET visits = %[1]s.visits + 1`, vp))

	if _, err := r.db.ExecContext(ctx, query, ipAddress, postID); err != nil {
		return storeErr("increment visited post", err)
	}
	return nil
}

func (r *SQLiteRepository) GetVisitor(ctx context.Context, ipAddress string) (*domain.Visitor, error) {
	query := r.rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE ip_address = ?`, visitorColumns, r.tables.Visitors))

	v, err := scanVisitor(r.db.QueryRowContext(ctx, query, ipAddress))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("visitor %q %w", ipAddress, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get visitor", err)
	}

	if v.VisitedPosts, err = r.visitedPosts(ctx, v.IPAddress); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *SQLiteRepository) ListVisitors(ctx context.Context, limit, offset int) ([]domain.Visitor, int64, error) {
	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.tables.Visitors)
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, storeErr("count visitors", err)
	}

	query := r.rebind(fmt.Sprintf(`SELECT %s FROM %s ORDER BY first_visit_date DESC, ip_address LIMIT ? OFFSET ?`,
		visitorColumns, r.tables.Visitors))
	visitors, err := r.queryVisitors(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return visitors, total, nil
}

// DumpVisitors returns every visitor, oldest first. Used for export.
func (r *SQLiteRepository) DumpVisitors(ctx context.Context) ([]domain.Visitor, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY first_visit_date, ip_address`, visitorColumns, r.tables.Visitors)
	return r.queryVisitors(ctx, query)
}

func (r *SQLiteRepository) queryVisitors(ctx context.Context, query string, args ...any) ([]domain.Visitor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list visitors", err)
	}

	visitors := []domain.Visitor{}
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			rows.Close()
			return nil, storeErr("list visitors", err)
		}
		visitors = append(visitors, *v)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, storeErr("list visitors", err)
	}

	// Rows are closed before the follow-up queries; SQLite runs on a single connection.
	for i := range visitors {
		if visitors[i].VisitedPosts, err = r.visitedPosts(ctx, visitors[i].IPAddress); err != nil {
			return nil, err
		}
	}
	return visitors, nil
}

func (r *SQLiteRepository) visitedPosts(ctx context.Context, ipAddress string) (map[string]int64, error) {
	query := r.rebind(fmt.Sprintf(`SELECT post_id, visits FROM %s WHERE ip_address = ?`, r.tables.visitorPosts()))
	rows, err := r.db.QueryContext(ctx, query, ipAddress)
	if err != nil {
		return nil, storeErr("visited posts", err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var postID string
		var visits int64
		if err := rows.Scan(&postID, &visits); err != nil {
			return nil, storeErr("visited posts", err)
		}
		out[postID] = visits
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("visited posts", err)
	}
	return out, nil
}

func scanVisitor(s rowScanner) (*domain.Visitor, error) {
	var (
		v         domain.Visitor
		firstSeen string
		lastSeen  sql.NullString
		ipData    sql.NullString
	)
	if err := s.Scan(&v.IPAddress, &firstSeen, &lastSeen, &v.RefreshCount, &ipData); err != nil {
		return nil, err
	}

	var err error
	if v.FirstVisitDate, err = parseTime(firstSeen); err != nil {
		return nil, err
	}
	if lastSeen.Valid {
		t, err := parseTime(lastSeen.String)
		if err != nil {
			return nil, err
		}
		v.LastVisitDate = &t
	}
	if ipData.Valid && ipData.String != "" {
		var data domain.IPData
		if err := json.Unmarshal([]byte(ipData.String), &data); err != nil {
			return nil, fmt.Errorf("decode ip_data for %s: %w", v.IPAddress, err)
		}
		v.IPData = &data
	}
	return &v, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(domain.TimestampLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(domain.TimestampLayout, s, time.UTC)
}
