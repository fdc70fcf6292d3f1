package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/anonto42/inkwell/backend/pkg/database"
)

// Store groups the repositories bound to one connection
type Store struct {
	Users     UserRepository
	Posts     PostRepository
	Comments  CommentRepository
	Followers FollowerRepository
}

// NewStore binds every repository to db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewPostgresUserRepository(db),
		Posts:     NewPostgresPostRepository(db),
		Comments:  NewPostgresCommentRepository(db),
		Followers: NewPostgresFollowerRepository(db),
	}
}

// StoreFromContext binds a Store to the connection checked out for the
// current request.
func StoreFromContext(ctx context.Context) (*Store, error) {
	conn, ok := database.ConnFromContext(ctx)
	if !ok {
		return nil, ErrNoConnection
	}
	return NewStore(conn.DB), nil
}
