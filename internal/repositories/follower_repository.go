package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/inkwell/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepository defines the interface for the follow graph.
// Every lookup joins followers to users; direction matters:
// followers of X are rows with followee_id = X, followees of X are rows
// with follower_id = X.
type FollowerRepository interface {
	Follow(ctx context.Context, followerID, followeeID int32) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID int32) (bool, error)
	GetFollowers(ctx context.Context, userID int32) ([]models.User, error)
	GetFollowees(ctx context.Context, userID int32) ([]models.User, error)
	GetFollower(ctx context.Context, followeeID, followerID int32) (*models.User, error)
	GetFollowee(ctx context.Context, followerID, followeeID int32) (*models.User, error)
}

// PostgresFollowerRepository implements FollowerRepository with gorm
type PostgresFollowerRepository struct {
	db *gorm.DB
}

// NewPostgresFollowerRepository creates a new PostgresFollowerRepository
func NewPostgresFollowerRepository(db *gorm.DB) *PostgresFollowerRepository {
	return &PostgresFollowerRepository{db: db}
}

// Follow inserts the edge. Following twice is a no-op and reports false.
func (r *PostgresFollowerRepository) Follow(ctx context.Context, followerID, followeeID int32) (bool, error) {
	if followerID == followeeID {
		return false, ErrFollowSelf
	}
	edge := models.Follower{FollowerID: followerID, FolloweeID: followeeID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if res.Error != nil {
		return false, wrap("could not follow user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Unfollow reports whether an edge was removed
func (r *PostgresFollowerRepository) Unfollow(ctx context.Context, followerID, followeeID int32) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follower{})
	if res.Error != nil {
		return false, wrap("could not unfollow user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetFollowers lists the users following userID
func (r *PostgresFollowerRepository) GetFollowers(ctx context.Context, userID int32) ([]models.User, error) {
	users := []models.User{}
	err := r.followers(ctx).Where("followers.followee_id = ?", userID).Order("users.id").Find(&users).Error
	if err != nil {
		return nil, wrap("could not get followers for user", err)
	}
	return users, nil
}

// GetFollowees lists the users userID follows
func (r *PostgresFollowerRepository) GetFollowees(ctx context.Context, userID int32) ([]models.User, error) {
	users := []models.User{}
	err := r.followees(ctx).Where("followers.follower_id = ?", userID).Order("users.id").Find(&users).Error
	if err != nil {
		return nil, wrap("could not get followees for user", err)
	}
	return users, nil
}

// GetFollower returns followerID's user if they follow followeeID
func (r *PostgresFollowerRepository) GetFollower(ctx context.Context, followeeID, followerID int32) (*models.User, error) {
	q := r.followers(ctx).Where("followers.followee_id = ? AND followers.follower_id = ?", followeeID, followerID)
	return takeUser(q, "could not get follower for user")
}

// GetFollowee returns followeeID's user if followerID follows them
func (r *PostgresFollowerRepository) GetFollowee(ctx context.Context, followerID, followeeID int32) (*models.User, error) {
	q := r.followees(ctx).Where("followers.follower_id = ? AND followers.followee_id = ?", followerID, followeeID)
	return takeUser(q, "could not get followee for user")
}

// followers selects users on the follower side of an edge
func (r *PostgresFollowerRepository) followers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.email").
		Joins("INNER JOIN followers ON followers.follower_id = users.id")
}

// followees selects users on the followee side of an edge
func (r *PostgresFollowerRepository) followees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.email").
		Joins("INNER JOIN followers ON followers.followee_id = users.id")
}

func takeUser(q *gorm.DB, op string) (*models.User, error) {
	var user models.User
	err := q.Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(op, err)
	}
	return &user, nil
}
