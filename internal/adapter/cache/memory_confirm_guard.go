package cache

import (
	"context"
	"sync"

	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
)

// MemoryConfirmGuard is the single-process fallback used when no Redis
// address is configured.
type MemoryConfirmGuard struct {
	mu    sync.Mutex
	taken map[string]struct{}
}

func NewMemoryConfirmGuard() *MemoryConfirmGuard {
	return &MemoryConfirmGuard{taken: make(map[string]struct{})}
}

func (g *MemoryConfirmGuard) TryAcquire(_ context.Context, orderID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.taken[orderID]; ok {
		return false, nil
	}
	g.taken[orderID] = struct{}{}
	return true, nil
}

var _ usecase.ConfirmGuard = (*MemoryConfirmGuard)(nil)
