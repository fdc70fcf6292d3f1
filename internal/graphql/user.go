package graphql

import (
	"context"
	"strconv"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/anonto42/inkwell/backend/internal/models"
)

// UserFields is the field set of the GraphQL User type
type UserFields interface {
	ID() graphqlgo.ID
	Email() string
	Post(ctx context.Context, args idArgs) (*PostResolver, error)
	Posts(ctx context.Context) ([]*PostResolver, error)
	Follower(ctx context.Context, args idArgs) (*UserResolver, error)
	Followers(ctx context.Context) ([]*UserResolver, error)
	Followee(ctx context.Context, args idArgs) (*UserResolver, error)
	Followees(ctx context.Context) ([]*UserResolver, error)
}

var _ UserFields = (*UserResolver)(nil)

// UserResolver resolves the fields of one loaded user
type UserResolver struct {
	r    *Resolver
	user models.User
}

func (r *Resolver) user(u *models.User) *UserResolver {
	if u == nil {
		return nil
	}
	return &UserResolver{r: r, user: *u}
}

func (r *Resolver) users(us []models.User) []*UserResolver {
	out := make([]*UserResolver, len(us))
	for i := range us {
		out[i] = r.user(&us[i])
	}
	return out
}

func (u *UserResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(strconv.Itoa(int(u.user.ID)))
}

func (u *UserResolver) Email() string { return u.user.Email }

func (u *UserResolver) Post(ctx context.Context, args idArgs) (*PostResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.GetPostForUser(ctx, u.user.ID, args.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.post(p), nil
}

func (u *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.Posts.GetPostsByUserID(ctx, u.user.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.posts(posts), nil
}

// Follower returns the user with the given id if they follow u
func (u *UserResolver) Follower(ctx context.Context, args idArgs) (*UserResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.Followers.GetFollower(ctx, u.user.ID, args.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.user(f), nil
}

func (u *UserResolver) Followers(ctx context.Context) ([]*UserResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	fs, err := s.Followers.GetFollowers(ctx, u.user.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.users(fs), nil
}

// Followee returns the user with the given id if u follows them
func (u *UserResolver) Followee(ctx context.Context, args idArgs) (*UserResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.Followers.GetFollowee(ctx, u.user.ID, args.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.user(f), nil
}

func (u *UserResolver) Followees(ctx context.Context) ([]*UserResolver, error) {
	s, err := u.r.store(ctx)
	if err != nil {
		return nil, err
	}
	fs, err := s.Followers.GetFollowees(ctx, u.user.ID)
	if err != nil {
		return nil, fieldError(u.r.log, err)
	}
	return u.r.users(fs), nil
}
