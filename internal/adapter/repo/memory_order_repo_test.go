package repo

import (
	"context"
	"testing"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id string) *domain.Order {
	return &domain.Order{
		ID:     id,
		Status: domain.StatusPending,
		Cart:   []domain.Item{{Name: "Candle", Price: decimal.RequireFromString("10.00"), Qty: 1}},
		Total:  decimal.RequireFromString("16.69"),
	}
}

func TestMemoryOrderRepo_CreateAndGet(t *testing.T) {
	r := NewMemoryOrderRepo()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, pendingOrder("ord-1")))

	got, err := r.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "16.69", got.Total.StringFixed(2))

	missing, err := r.GetByID(ctx, "ord-2")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown id reads as absent, not as an error")
}

func TestMemoryOrderRepo_DuplicateIDRejected(t *testing.T) {
	r := NewMemoryOrderRepo()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, pendingOrder("ord-1")))
	require.ErrorIs(t, r.Create(ctx, pendingOrder("ord-1")), ErrDuplicateID)
}

func TestMemoryOrderRepo_UpdateStatusIfIsCompareAndSet(t *testing.T) {
	r := NewMemoryOrderRepo()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, pendingOrder("ord-1")))

	ok, err := r.UpdateStatusIf(ctx, "ord-1", domain.StatusPending, domain.StatusPaid)
	require.NoError(t, err)
	assert.True(t, ok)

	// second transition from PENDING must lose
	ok, err = r.UpdateStatusIf(ctx, "ord-1", domain.StatusPending, domain.StatusPaid)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.UpdateStatusIf(ctx, "ord-1", domain.StatusPaid, domain.StatusNotified)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UpdateStatusIf(ctx, "missing", domain.StatusPending, domain.StatusPaid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOrderRepo_StoredSnapshotIsIsolated(t *testing.T) {
	r := NewMemoryOrderRepo()
	ctx := context.Background()
	o := pendingOrder("ord-1")
	require.NoError(t, r.Create(ctx, o))

	o.Status = domain.StatusPaid // caller mutates its copy

	got, err := r.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}
