package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, params *models.NewComment) (*models.Comment, error)
	GetCommentForPost(ctx context.Context, postID, id int32) (*models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID int32) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id int32) (bool, error)
}

// PostgresCommentRepository implements CommentRepository with gorm
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a comment; user and post must exist
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, params *models.NewComment) (*models.Comment, error) {
	comment := models.Comment{
		UserID: params.UserID,
		PostID: params.PostID,
		Title:  params.Title,
		Body:   params.Body,
	}
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, wrap("could not create comment", err)
	}
	return &comment, nil
}

// GetCommentForPost returns nil unless the comment exists and belongs to the post
func (r *PostgresCommentRepository) GetCommentForPost(ctx context.Context, postID, id int32) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("post_id = ? AND id = ?", postID, id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("could not get comment for post", err)
	}
	return &comment, nil
}

// GetCommentsByPostID lists the comments of a post in id order
func (r *PostgresCommentRepository) GetCommentsByPostID(ctx context.Context, postID int32) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, wrap("could not get comments for post", err)
	}
	return comments, nil
}

// DeleteComment reports whether a row was removed
func (r *PostgresCommentRepository) DeleteComment(ctx context.Context, id int32) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return false, wrap("could not remove comment", res.Error)
	}
	return res.RowsAffected > 0, nil
}
