package database

import "context"

type connKey struct{}

// WithConn attaches a checked-out connection to a request context.
func WithConn(ctx context.Context, conn *Conn) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

// ConnFromContext returns the connection attached by WithConn.
func ConnFromContext(ctx context.Context) (*Conn, bool) {
	conn, ok := ctx.Value(connKey{}).(*Conn)
	return conn, ok && conn != nil
}
