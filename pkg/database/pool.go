package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrUnavailable is returned by Acquire when no connection could be checked
// out within the acquire timeout, or when the pool is closed.
var ErrUnavailable = errors.New("database unavailable")

const defaultAcquireTimeout = 3 * time.Second

// Options bounds the pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AcquireTimeout  time.Duration
}

// Acquirer hands out one exclusive connection per caller.
type Acquirer interface {
	Acquire(ctx context.Context) (*Conn, error)
}

// Pool is a bounded set of database connections shared by every request.
type Pool struct {
	db             *gorm.DB
	sqlDB          *sql.DB
	acquireTimeout time.Duration
}

// New wraps an opened gorm handle and applies the pool bounds to it.
func New(db *gorm.DB, opts Options) (*Pool, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql handle")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	timeout := opts.AcquireTimeout
	if timeout <= 0 {
		timeout = defaultAcquireTimeout
	}
	return &Pool{db: db, sqlDB: sqlDB, acquireTimeout: timeout}, nil
}

// Ping verifies that a connection can be established.
func (p *Pool) Ping(ctx context.Context) error {
	return p.sqlDB.PingContext(ctx)
}

// Acquire checks a connection out of the pool, waiting at most the acquire
// timeout. The returned Conn must be released on every path.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	waitCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	raw, err := p.sqlDB.Conn(waitCtx)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	tx := p.db.WithContext(ctx)
	tx.Statement.ConnPool = raw
	return &Conn{DB: tx, raw: raw}, nil
}

// Stats reports the pool's bookkeeping.
func (p *Pool) Stats() sql.DBStats { return p.sqlDB.Stats() }

// Close closes every connection. Pending and later Acquire calls fail.
func (p *Pool) Close() error {
	return p.sqlDB.Close()
}

// Conn is an exclusive connection checked out of a Pool. Every statement
// issued through DB runs on that single connection.
type Conn struct {
	DB *gorm.DB

	raw  *sql.Conn
	once sync.Once
	err  error
}

// Release returns the connection to the pool. It is safe to call more than once.
func (c *Conn) Release() error {
	c.once.Do(func() {
		c.err = c.raw.Close()
	})
	return c.err
}
