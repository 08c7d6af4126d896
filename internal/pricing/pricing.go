// Package pricing turns a cart and a shipping region into the totals that
// both the payment session and the stored order are built from. It is pure:
// same cart, same region, same quote.
package pricing

import (
	"errors"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/shopspring/decimal"
)

// ErrBelowMinimum rejects carts under the processor's minimum charge before
// any external call is made.
var ErrBelowMinimum = errors.New("order total must be at least £0.50")

var (
	minimumCharge     = decimal.RequireFromString("0.50")
	flatShippingFee   = decimal.RequireFromString("5.99")
	freeShippingAbove = decimal.RequireFromString("50")
	defaultTaxRate    = decimal.RequireFromString("0.07")
)

// taxRates is keyed by the customer's "state" field, exact case-sensitive
// match.
//
// TODO: every unlisted jurisdiction, including non-US countries, falls
// through to the flat default rate; this needs a real tax table keyed by
// country and region.
var taxRates = map[string]decimal.Decimal{
	"California": decimal.RequireFromString("0.075"),
	"New York":   decimal.RequireFromString("0.04"),
	"Texas":      decimal.RequireFromString("0.045"),
	"Florida":    decimal.RequireFromString("0.06"),
	"Illinois":   decimal.RequireFromString("0.0625"),
	"Nevada":     decimal.RequireFromString("0.0685"),
	"Washington": decimal.RequireFromString("0.065"),
}

// Quote is the priced breakdown of a cart. Tax and Total are rounded to two
// decimal places; Subtotal is the exact sum of the lines.
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// TaxRate returns the rate for a region, or the default for anything not in
// the table.
func TaxRate(region string) decimal.Decimal {
	if r, ok := taxRates[region]; ok {
		return r
	}
	return defaultTaxRate
}

// Price computes the quote for a cart shipped to region.
func Price(cart []domain.Item, region string) (Quote, error) {
	subtotal := decimal.Zero
	for _, it := range cart {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	if subtotal.LessThan(minimumCharge) {
		return Quote{}, ErrBelowMinimum
	}

	tax := subtotal.Mul(TaxRate(region)).Round(2)

	shipping := decimal.Zero
	if subtotal.LessThanOrEqual(freeShippingAbove) {
		shipping = flatShippingFee
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping).Round(2),
	}, nil
}
