package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, params *models.NewUser) (*models.User, error)
	GetUserByID(ctx context.Context, id int32) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int32) (bool, error)
	GetOwningUserForPost(ctx context.Context, postID int32) (*models.User, error)
	GetOwningUserForComment(ctx context.Context, commentID int32) (*models.User, error)
}

// PostgresUserRepository implements UserRepository with gorm
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser inserts a user and returns the stored row
func (r *PostgresUserRepository) CreateUser(ctx context.Context, params *models.NewUser) (*models.User, error) {
	user := models.User{Email: params.Email}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, wrap("could not create user", err)
	}
	return &user, nil
}

// GetUserByID returns nil when no user has the given id
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int32) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("could not get user", err)
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *PostgresUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, wrap("could not get users", err)
	}
	return users, nil
}

// DeleteUser reports whether a row was removed
func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id int32) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return false, wrap("could not remove user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetOwningUserForPost returns the author of a post. The author must exist.
func (r *PostgresUserRepository) GetOwningUserForPost(ctx context.Context, postID int32) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("users.id", "users.email").
		Joins("INNER JOIN posts ON posts.user_id = users.id").
		Where("posts.id = ?", postID).
		First(&user).Error
	if err != nil {
		return nil, wrap("could not get user for post", err)
	}
	return &user, nil
}

// GetOwningUserForComment returns the author of a comment. The author must exist.
func (r *PostgresUserRepository) GetOwningUserForComment(ctx context.Context, commentID int32) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("users.id", "users.email").
		Joins("INNER JOIN comments ON comments.user_id = users.id").
		Where("comments.id = ?", commentID).
		First(&user).Error
	if err != nil {
		return nil, wrap("could not get user for comment", err)
	}
	return &user, nil
}
