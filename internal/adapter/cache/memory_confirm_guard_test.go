package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConfirmGuard_SingleWinnerPerOrder(t *testing.T) {
	g := NewMemoryConfirmGuard()
	ctx := context.Background()

	ok, err := g.TryAcquire(ctx, "ord-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.TryAcquire(ctx, "ord-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.TryAcquire(ctx, "ord-2")
	require.NoError(t, err)
	assert.True(t, ok, "other orders are unaffected")
}

func TestMemoryConfirmGuard_ConcurrentAcquire(t *testing.T) {
	g := NewMemoryConfirmGuard()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := g.TryAcquire(ctx, "ord-1"); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1, "exactly one goroutine may win the token")
}
