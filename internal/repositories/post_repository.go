package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, params *models.NewPost) (*models.Post, error)
	GetPostByID(ctx context.Context, id int32) (*models.Post, error)
	GetPostForUser(ctx context.Context, userID, id int32) (*models.Post, error)
	GetPostsByUserID(ctx context.Context, userID int32) ([]models.Post, error)
	DeletePost(ctx context.Context, id int32) (bool, error)
}

// PostgresPostRepository implements PostRepository with gorm
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a post for an existing user
func (r *PostgresPostRepository) CreatePost(ctx context.Context, params *models.NewPost) (*models.Post, error) {
	post := models.Post{UserID: params.UserID, Title: params.Title, Body: params.Body}
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, wrap("could not create post", err)
	}
	return &post, nil
}

// GetPostByID returns nil when the post does not exist
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id int32) (*models.Post, error) {
	return r.first(ctx, "could not get post", r.db.Where("id = ?", id))
}

// GetPostForUser looks a post up by id among the posts of one user
func (r *PostgresPostRepository) GetPostForUser(ctx context.Context, userID, id int32) (*models.Post, error) {
	return r.first(ctx, "could not get post for user", r.db.Where("user_id = ? AND id = ?", userID, id))
}

// GetPostsByUserID lists a user's posts in id order
func (r *PostgresPostRepository) GetPostsByUserID(ctx context.Context, userID int32) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, wrap("could not get posts for user", err)
	}
	return posts, nil
}

// DeletePost reports whether a row was removed
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id int32) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return false, wrap("could not remove post", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresPostRepository) first(ctx context.Context, op string, q *gorm.DB) (*models.Post, error) {
	var post models.Post
	err := q.WithContext(ctx).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(op, err)
	}
	return &post, nil
}
