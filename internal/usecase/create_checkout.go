package usecase

import (
	"context"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/logging"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
	"github.com/google/uuid"
)

type CheckoutInput struct {
	Customer domain.Customer
	Cart     []domain.Item
}

type CheckoutOutput struct {
	OrderID string
	URL     string
}

// CreateCheckout prices the cart, opens a hosted payment session and stores
// the pending order keyed by a fresh id.
type CreateCheckout struct {
	repo OrderRepo
	pay  PaymentGateway
}

func NewCreateCheckout(repo OrderRepo, pay PaymentGateway) *CreateCheckout {
	return &CreateCheckout{repo: repo, pay: pay}
}

func (uc *CreateCheckout) Execute(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	order := &domain.Order{
		Customer: in.Customer,
		Cart:     in.Cart,
		Status:   domain.StatusPending,
	}
	if err := order.Validate(); err != nil {
		return CheckoutOutput{}, err
	}

	// Price before any external call; sub-minimum carts never reach the
	// processor.
	quote, err := pricing.Price(in.Cart, in.Customer.State)
	if err != nil {
		return CheckoutOutput{}, err
	}
	order.ID = uuid.NewString()
	order.Subtotal = quote.Subtotal
	order.Tax = quote.Tax
	order.Shipping = quote.Shipping
	order.Total = quote.Total

	sess, err := uc.pay.CreateSession(ctx, in.Cart, in.Customer, quote, order.ID)
	if err != nil {
		return CheckoutOutput{}, err
	}
	order.SessionID = sess.ID

	if err := uc.repo.Create(ctx, order); err != nil {
		return CheckoutOutput{}, err
	}

	logging.FromCtx(ctx).Info("checkout session created",
		"order_id", order.ID, "total", order.Total.StringFixed(2))
	return CheckoutOutput{OrderID: order.ID, URL: sess.URL}, nil
}
