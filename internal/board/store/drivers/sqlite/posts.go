package sqlite

import (
	"context"
	"time"

	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/store"
)

type postsRepo struct {
	db dbtx
}

const postColumns = `id, title, text, creator_id, created_at, updated_at`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (int64, error) {
	now := toMillis(time.Now().UTC())

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (title, text, creator_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Text, p.CreatorID, now, now,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *postsRepo) GetPostByID(ctx context.Context, id int64) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// ListPosts orders by created_at DESC with id DESC as the tie-break so
// pages are deterministic when several posts share a timestamp. A non-zero
// before applies the strict keyset bound.
func (r *postsRepo) ListPosts(ctx context.Context, limit int, before time.Time) ([]domain.Post, error) {
	var (
		query = `SELECT ` + postColumns + ` FROM posts `
		args  []any
	)
	if !before.IsZero() {
		query += `WHERE created_at < ? `
		args = append(args, toMillis(before))
	}
	query += `ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) UpdatePostTitle(ctx context.Context, id int64, title string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET title = ?, updated_at = ? WHERE id = ?`,
		title, toMillis(time.Now().UTC()), id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		p                  domain.Post
		createdAt, updated int64
	)
	err := row.Scan(&p.ID, &p.Title, &p.Text, &p.CreatorID, &createdAt, &updated)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}
