package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

const postColumns = `post_id, title, body, created, edited, preview_image_link, preview_summary, view_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(s rowScanner) (*domain.Post, error) {
	var p domain.Post
	var edited sql.NullString
	if err := s.Scan(&p.PostID, &p.Title, &p.Body, &p.Created, &edited, &p.PreviewImageLink, &p.PreviewSummary, &p.ViewCount); err != nil {
		return nil, err
	}
	if edited.Valid {
		p.Edited = &edited.String
	}
	return &p, nil
}

func (r *SQLiteRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created, post_id`, postColumns, r.tables.Posts)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list posts", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, storeErr("list posts", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list posts", err)
	}
	return posts, nil
}

// IncrementViewCount is a single conditional update, so a missing post is never created
// and concurrent views are never lost.
func (r *SQLiteRepository) IncrementViewCount(ctx context.Context, postID string) (*domain.Post, error) {
	query := r.rebind(fmt.Sprintf(`UPDATE %s SET view_count = view_count + 1 WHERE post_id = ? RETURNING %s`, r.tables.Posts, postColumns))

	post, err := scanPost(r.db.QueryRowContext(ctx, query, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %q %w", postID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("increment view count", err)
	}
	return post, nil
}

// UpsertPost inserts or replaces a post's content. The view counter is left alone on
// update.
func (r *SQLiteRepository) UpsertPost(ctx context.Context, post *domain.Post) error {
	query := r.rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (post_id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			created = excluded.created,
			edited = excluded.edited,
			preview_image_link = excluded.preview_image_link,
			preview_summary = excluded.preview_summary`, r.tables.Posts, postColumns))

	var edited sql.NullString
	if post.Edited != nil {
		edited = sql.NullString{String: *post.Edited, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, post.PostID, post.Title, post.Body, post.Created, edited,
		post.PreviewImageLink, post.PreviewSummary, post.ViewCount)
	if err != nil {
		return storeErr("upsert post", err)
	}
	return nil
}
