package graphql

import (
	"context"
	"errors"
	"strconv"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/anonto42/inkwell/backend/internal/models"
)

// CommentFields is the field set of the GraphQL Comment type
type CommentFields interface {
	ID() graphqlgo.ID
	Title() string
	Body() string
	User(ctx context.Context) (*UserResolver, error)
	Post(ctx context.Context) (*PostResolver, error)
}

var _ CommentFields = (*CommentResolver)(nil)

// CommentResolver resolves the fields of one loaded comment
type CommentResolver struct {
	r       *Resolver
	comment models.Comment
}

func (r *Resolver) comment(c *models.Comment) *CommentResolver {
	if c == nil {
		return nil
	}
	return &CommentResolver{r: r, comment: *c}
}

func (c *CommentResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(strconv.Itoa(int(c.comment.ID)))
}

func (c *CommentResolver) Title() string { return c.comment.Title }

func (c *CommentResolver) Body() string { return c.comment.Body }

func (c *CommentResolver) User(ctx context.Context) (*UserResolver, error) {
	s, err := c.r.store(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetOwningUserForComment(ctx, c.comment.ID)
	if err != nil {
		return nil, fieldError(c.r.log, err)
	}
	return c.r.user(u), nil
}

func (c *CommentResolver) Post(ctx context.Context) (*PostResolver, error) {
	s, err := c.r.store(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.GetPostByID(ctx, c.comment.PostID)
	if err != nil {
		return nil, fieldError(c.r.log, err)
	}
	// comments cascade with their post
	if p == nil {
		return nil, errors.New("could not get post for comment")
	}
	return c.r.post(p), nil
}
