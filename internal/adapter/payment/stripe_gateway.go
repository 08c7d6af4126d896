package payment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const currency = "gbp"

// allowedCountries limits where the processor may collect a shipping
// address.
var allowedCountries = []string{"US", "CA", "GB", "DE"}

// StripeGateway creates hosted Checkout Sessions and verifies their payment
// status. One attempt per call, no retry.
type StripeGateway struct {
	api         *client.API
	frontendURL string
}

func NewStripeGateway(apiKey, frontendURL string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api, frontendURL: frontendURL}
}

func buildLineItems(cart []domain.Item, quote pricing.Quote) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart)+2)
	for _, it := range cart {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(pence(it.Price)),
			},
			Quantity: stripe.Int64(int64(it.Qty)),
		})
	}
	// Tax and shipping become their own single-quantity lines so the
	// processor's receipt breaks out the charge.
	for _, extra := range []struct {
		name   string
		amount int64
	}{
		{"Sales Tax", pence(quote.Tax)},
		{"Shipping", pence(quote.Shipping)},
	} {
		if extra.amount == 0 {
			continue
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(extra.name),
				},
				UnitAmount: stripe.Int64(extra.amount),
			},
			Quantity: stripe.Int64(1),
		})
	}
	return lineItems
}

func (g *StripeGateway) CreateSession(ctx context.Context, cart []domain.Item, customer domain.Customer, quote pricing.Quote, orderID string) (usecase.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          buildLineItems(cart, quote),
		SuccessURL:         stripe.String(fmt.Sprintf("%s/success.html?checkoutId=%s", g.frontendURL, orderID)),
		CancelURL:          stripe.String(g.frontendURL + "/cancel.html"),
		CustomerEmail:      stripe.String(customer.Email),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedCountries),
		},
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) {
			return usecase.Session{}, &usecase.ProcessorError{Message: serr.Msg, Err: err}
		}
		return usecase.Session{}, err
	}
	return usecase.Session{ID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) VerifySession(ctx context.Context, sessionID string) (bool, error) {
	sess, err := g.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return false, err
	}
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}

// pence converts a 2dp pound amount to minor units.
func pence(d decimal.Decimal) int64 { return d.Shift(2).IntPart() }

var _ usecase.PaymentGateway = (*StripeGateway)(nil)
