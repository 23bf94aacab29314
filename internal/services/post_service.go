package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dmarques/postline-be/internal/models"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	CreatePost(ctx context.Context, userID, text string) (models.Post, error)
	ListPostsForUser(ctx context.Context, userID string) ([]models.Post, error)
}

// PostService provides business logic for user posts.
type PostService struct {
	db *sql.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{db: db}
}

// CreatePost persists a new post owned by userID. The owner always comes
// from the authenticated identity, never from the request body.
func (s *PostService) CreatePost(ctx context.Context, userID, text string) (models.Post, error) {
	if text == "" {
		return models.Post{}, ErrEmptyText
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO posts(id, text, user_id) VALUES(?, ?, ?)",
		id, text, userID)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	row := s.db.QueryRowContext(ctx,
		"SELECT id, text, user_id, created_at FROM posts WHERE id = ?", id)
	if err := row.Scan(&post.ID, &post.Text, &post.UserID, &post.CreatedAt); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ListPostsForUser returns every post owned by userID. The scoping lives in
// the query itself; no in-memory filtering happens afterwards.
func (s *PostService) ListPostsForUser(ctx context.Context, userID string) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, text, user_id, created_at FROM posts WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Text, &post.UserID, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
