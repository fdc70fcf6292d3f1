package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/inkwell/backend/internal/testutil"
	"github.com/anonto42/inkwell/backend/pkg/database"
)

func TestAcquireExhausted(t *testing.T) {
	pool := testutil.NewPool(t, database.Options{MaxOpenConns: 1, AcquireTimeout: 50 * time.Millisecond})
	ctx := context.Background()

	first, err := pool.Acquire(ctx)
	require.NoError(t, err)

	start := time.Now()
	_, err = pool.Acquire(ctx)
	assert.ErrorIs(t, err, database.ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)

	require.NoError(t, first.Release())

	again, err := pool.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseIsIdempotent(t *testing.T) {
	pool := testutil.NewPool(t, database.Options{MaxOpenConns: 1})

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Release())
	require.NoError(t, conn.Release())
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestConnIsExclusive(t *testing.T) {
	pool := testutil.NewPool(t, database.Options{MaxOpenConns: 2})
	ctx := context.Background()

	a, err := pool.Acquire(ctx)
	require.NoError(t, err)
	b, err := pool.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pool.Stats().InUse)

	require.NoError(t, a.Release())
	require.NoError(t, b.Release())
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestConcurrentAcquireRelease(t *testing.T) {
	pool := testutil.NewPool(t, database.Options{MaxOpenConns: 3, AcquireTimeout: 2 * time.Second})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := pool.Acquire(context.Background())
			if err != nil {
				errs <- err
				return
			}
			defer conn.Release()
			var one int
			errs <- conn.DB.Raw("SELECT 1").Scan(&one).Error
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, pool.Stats().MaxOpenConnections, 3)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestAcquireAfterClose(t *testing.T) {
	pool := testutil.NewPool(t, database.Options{})
	require.NoError(t, pool.Close())

	_, err := pool.Acquire(context.Background())
	assert.ErrorIs(t, err, database.ErrUnavailable)
}

func TestConnFromContext(t *testing.T) {
	_, ok := database.ConnFromContext(context.Background())
	assert.False(t, ok)

	pool := testutil.NewPool(t, database.Options{})
	conn := testutil.Acquire(t, pool)
	got, ok := database.ConnFromContext(database.WithConn(context.Background(), conn))
	require.True(t, ok)
	assert.Same(t, conn, got)
}
