package graphql

import (
	"context"
	"strconv"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/anonto42/inkwell/backend/internal/models"
)

// PostFields is the field set of the GraphQL Post type
type PostFields interface {
	ID() graphqlgo.ID
	Title() string
	Body() string
	User(ctx context.Context) (*UserResolver, error)
	Comment(ctx context.Context, args idArgs) (*CommentResolver, error)
	Comments(ctx context.Context) ([]*CommentResolver, error)
}

var _ PostFields = (*PostResolver)(nil)

// PostResolver resolves the fields of one loaded post
type PostResolver struct {
	r    *Resolver
	post models.Post
}

func (r *Resolver) post(p *models.Post) *PostResolver {
	if p == nil {
		return nil
	}
	return &PostResolver{r: r, post: *p}
}

func (r *Resolver) posts(ps []models.Post) []*PostResolver {
	out := make([]*PostResolver, len(ps))
	for i := range ps {
		out[i] = r.post(&ps[i])
	}
	return out
}

func (p *PostResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(strconv.Itoa(int(p.post.ID)))
}

func (p *PostResolver) Title() string { return p.post.Title }

func (p *PostResolver) Body() string { return p.post.Body }

func (p *PostResolver) User(ctx context.Context) (*UserResolver, error) {
	s, err := p.r.store(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetOwningUserForPost(ctx, p.post.ID)
	if err != nil {
		return nil, fieldError(p.r.log, err)
	}
	return p.r.user(u), nil
}

func (p *PostResolver) Comment(ctx context.Context, args idArgs) (*CommentResolver, error) {
	s, err := p.r.store(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.Comments.GetCommentForPost(ctx, p.post.ID, args.ID)
	if err != nil {
		return nil, fieldError(p.r.log, err)
	}
	return p.r.comment(c), nil
}

func (p *PostResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	s, err := p.r.store(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.Comments.GetCommentsByPostID(ctx, p.post.ID)
	if err != nil {
		return nil, fieldError(p.r.log, err)
	}
	out := make([]*CommentResolver, len(cs))
	for i := range cs {
		out[i] = p.r.comment(&cs[i])
	}
	return out, nil
}
