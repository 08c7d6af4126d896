package payment

import (
	"testing"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildLineItems_TaxAndShippingAsOwnLines(t *testing.T) {
	cart := []domain.Item{
		{Name: "Candle A", Price: d("10.00"), Qty: 2},
		{Name: "Candle B", Price: d("7.50"), Qty: 1},
	}
	quote := pricing.Quote{Tax: d("1.93"), Shipping: d("5.99")}

	lines := buildLineItems(cart, quote)

	require.Len(t, lines, 4)
	assert.Equal(t, "Candle A", *lines[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(1000), *lines[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *lines[0].Quantity)
	assert.Equal(t, int64(750), *lines[1].PriceData.UnitAmount)

	assert.Equal(t, "Sales Tax", *lines[2].PriceData.ProductData.Name)
	assert.Equal(t, int64(193), *lines[2].PriceData.UnitAmount)
	assert.Equal(t, int64(1), *lines[2].Quantity)

	assert.Equal(t, "Shipping", *lines[3].PriceData.ProductData.Name)
	assert.Equal(t, int64(599), *lines[3].PriceData.UnitAmount)
}

func TestBuildLineItems_ZeroChargesOmitted(t *testing.T) {
	cart := []domain.Item{{Name: "Gift Set", Price: d("60.00"), Qty: 1}}
	quote := pricing.Quote{Tax: decimal.Zero, Shipping: decimal.Zero}

	lines := buildLineItems(cart, quote)

	require.Len(t, lines, 1, "no synthetic lines for zero tax or free shipping")
}

func TestPence(t *testing.T) {
	assert.Equal(t, int64(1000), pence(d("10.00")))
	assert.Equal(t, int64(59), pence(d("0.59")))
	assert.Equal(t, int64(0), pence(decimal.Zero))
}
