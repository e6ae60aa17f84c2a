package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

func (r *SQLiteRepository) randomValue(ctx context.Context, table, column string) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY RANDOM() LIMIT 1`, column, table)

	var value string
	err := r.db.QueryRowContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", table, domain.ErrNotFound)
	}
	if err != nil {
		return "", storeErr("random "+column, err)
	}
	return value, nil
}

func (r *SQLiteRepository) RandomBackground(ctx context.Context) (string, error) {
	return r.randomValue(ctx, r.tables.Backgrounds, "link")
}

func (r *SQLiteRepository) RandomStory(ctx context.Context) (string, error) {
	return r.randomValue(ctx, r.tables.Stories, "story")
}

func (r *SQLiteRepository) addValue(ctx context.Context, table, column, value string) error {
	query := r.rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?) ON CONFLICT DO NOTHING`, table, column))
	if _, err := r.db.ExecContext(ctx, query, value); err != nil {
		return storeErr("add "+column, err)
	}
	return nil
}

func (r *SQLiteRepository) AddBackground(ctx context.Context, link string) error {
	return r.addValue(ctx, r.tables.Backgrounds, "link", link)
}

func (r *SQLiteRepository) AddStory(ctx context.Context, story string) error {
	return r.addValue(ctx, r.tables.Stories, "story", story)
}
