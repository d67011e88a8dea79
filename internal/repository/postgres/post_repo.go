package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidc77/devhub/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, user_id, text, name, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.UserID, post.Text, post.Name, post.AvatarURL, post.CreatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `SELECT id, user_id, text, name, avatar_url, created_at FROM posts WHERE id = $1`

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Text, &p.Name, &p.AvatarURL, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if p.Likes, err = r.ListLikes(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Comments, err = r.ListComments(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT id, user_id, text, name, avatar_url, created_at FROM posts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.AvatarURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Likes, err = r.ListLikes(ctx, posts[i].ID); err != nil {
			return nil, err
		}
		if posts[i].Comments, err = r.ListComments(ctx, posts[i].ID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *PostRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	// Also drop the user's likes and comments left on other posts.
	if _, err := r.pool.Exec(ctx, `DELETE FROM post_likes WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM post_comments WHERE user_id = $1`, userID); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}

// AddLike inserts the like unless it already exists. The (post_id, user_id)
// primary key resolves concurrent inserts inside postgres, so callers never
// need a read-modify-write cycle.
func (r *PostRepo) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID, time.Now(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostRepo) ListLikes(ctx context.Context, postID uuid.UUID) ([]domain.Like, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, created_at FROM post_likes WHERE post_id = $1 ORDER BY created_at DESC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []domain.Like
	for rows.Next() {
		var l domain.Like
		if err := rows.Scan(&l.UserID, &l.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (r *PostRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, user_id, text, name, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Text,
		comment.Name, comment.AvatarURL, comment.CreatedAt,
	)
	return err
}

func (r *PostRepo) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query := `SELECT id, post_id, user_id, text, name, avatar_url, created_at FROM post_comments WHERE id = $1`

	var c domain.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Text, &c.Name, &c.AvatarURL, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostRepo) RemoveComment(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM post_comments WHERE id = $1`, id)
	return err
}

func (r *PostRepo) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	query := `SELECT id, post_id, user_id, text, name, avatar_url, created_at
		FROM post_comments WHERE post_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.Name, &c.AvatarURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
