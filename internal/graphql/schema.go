// Package graphql exposes the blog over GraphQL.
package graphql

import (
	_ "embed"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the blog schema and binds it to the resolvers.
//
// All resolvers of a request share the one connection checked out for it,
// so fields are resolved one at a time.
func NewSchema(log *zap.Logger) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(schemaSDL, NewResolver(log), graphqlgo.MaxParallelism(1))
}
