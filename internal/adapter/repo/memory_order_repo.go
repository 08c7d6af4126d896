package repo

import (
	"context"
	"errors"
	"sync"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
)

var ErrDuplicateID = errors.New("order id already exists")

// MemoryOrderRepo keeps orders in a mutex-guarded map. Used when no MySQL
// DSN is configured (dev, tests). Contents are lost on restart.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return ErrDuplicateID
	}
	r.orders[o.ID] = *o
	return nil
}

func (r *MemoryOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryOrderRepo) UpdateStatusIf(_ context.Context, id string, from, to domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	r.orders[id] = o
	return true, nil
}

var _ usecase.OrderRepo = (*MemoryOrderRepo)(nil)
