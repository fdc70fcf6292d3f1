package graphql

import (
	"context"

	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/models"
	"github.com/anonto42/inkwell/backend/internal/repositories"
)

// Resolver is the root of both Query and Mutation.
type Resolver struct {
	log *zap.Logger
}

// NewResolver creates the root resolver
func NewResolver(log *zap.Logger) *Resolver {
	return &Resolver{log: log}
}

type idArgs struct {
	ID int32
}

type followArgs struct {
	Follower int32
	Followee int32
}

type createUserArgs struct {
	Email string
}

type createPostArgs struct {
	User  int32
	Title string
	Body  string
}

type createCommentArgs struct {
	User  int32
	Post  int32
	Title string
	Body  string
}

func (r *Resolver) store(ctx context.Context) (*repositories.Store, error) {
	s, err := repositories.StoreFromContext(ctx)
	if err != nil {
		return nil, fieldError(r.log, err)
	}
	return s, nil
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*UserResolver, error) {
	s, err := r.store(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetUserByID(ctx, args.ID)
	if err != nil {
		return nil, fieldError(r.log, err)
	}
	return r.user(u), nil
}

func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (*UserResolver, error) {
	s, err := r.store(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.CreateUser(ctx, &models.NewUser{Email: args.Email})
	if err != nil {
		return nil, fieldError(r.log, err)
	}
	return r.user(u), nil
}

func (r *Resolver) RemoveUser(ctx context.Context, args idArgs) (bool, error) {
	s, err := r.store(ctx)
	if err != nil {
		return false, err
	}
	removed, err := s.Users.DeleteUser(ctx, args.ID)
	if err != nil {
		return false, fieldError(r.log, err)
	}
	return removed, nil
}

func (r *Resolver) Follow(ctx context.Context, args followArgs) (bool, error) {
	s, err := r.store(ctx)
	if err != nil {
		return false, err
	}
	ok, err := s.Followers.Follow(ctx, args.Follower, args.Followee)
	if err != nil {
		return false, fieldError(r.log, err)
	}
	return ok, nil
}

func (r *Resolver) Unfollow(ctx context.Context, args followArgs) (bool, error) {
	s, err := r.store(ctx)
	if err != nil {
		return false, err
	}
	ok, err := s.Followers.Unfollow(ctx, args.Follower, args.Followee)
	if err != nil {
		return false, fieldError(r.log, err)
	}
	return ok, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args createPostArgs) (*PostResolver, error) {
	s, err := r.store(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.CreatePost(ctx, &models.NewPost{UserID: args.User, Title: args.Title, Body: args.Body})
	if err != nil {
		return nil, fieldError(r.log, err)
	}
	return r.post(p), nil
}

func (r *Resolver) RemovePost(ctx context.Context, args idArgs) (bool, error) {
	s, err := r.store(ctx)
	if err != nil {
		return false, err
	}
	removed, err := s.Posts.DeletePost(ctx, args.ID)
	if err != nil {
		return false, fieldError(r.log, err)
	}
	return removed, nil
}

func (r *Resolver) CreateComment(ctx context.Context, args createCommentArgs) (*CommentResolver, error) {
	s, err := r.store(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.Comments.CreateComment(ctx, &models.NewComment{
		UserID: args.User,
		PostID: args.Post,
		Title:  args.Title,
		Body:   args.Body,
	})
	if err != nil {
		return nil, fieldError(r.log, err)
	}
	return r.comment(c), nil
}

func (r *Resolver) RemoveComment(ctx context.Context, args idArgs) (bool, error) {
	s, err := r.store(ctx)
	if err != nil {
		return false, err
	}
	removed, err := s.Comments.DeleteComment(ctx, args.ID)
	if err != nil {
		return false, fieldError(r.log, err)
	}
	return removed, nil
}
