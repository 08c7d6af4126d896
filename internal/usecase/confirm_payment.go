package usecase

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/logging"
	"github.com/shopspring/decimal"
)

type ConfirmInput struct {
	OrderID     string
	ClientEmail string
}

// ConfirmOutput distinguishes "payment recorded" from each notification
// step, so a failed email can be retried later without redoing the rest.
type ConfirmOutput struct {
	ReceiptSent    bool
	LabelGenerated bool
	LabelSent      bool
}

// ConfirmPayment drives the pending -> paid -> notified transition. The
// transition only happens after the processor confirms funds were captured,
// and exactly once per order: a guard token plus a compare-and-set on the
// stored status make the second confirm a conflict instead of a duplicate
// pair of emails.
type ConfirmPayment struct {
	repo       OrderRepo
	guard      ConfirmGuard
	pay        PaymentGateway
	mailer     Mailer
	labels     LabelRenderer
	adminEmail string
}

func NewConfirmPayment(repo OrderRepo, guard ConfirmGuard, pay PaymentGateway, mailer Mailer, labels LabelRenderer, adminEmail string) *ConfirmPayment {
	return &ConfirmPayment{repo: repo, guard: guard, pay: pay, mailer: mailer, labels: labels, adminEmail: adminEmail}
}

func (uc *ConfirmPayment) Execute(ctx context.Context, in ConfirmInput) (ConfirmOutput, error) {
	log := logging.FromCtx(ctx).With("order_id", in.OrderID)

	order, err := uc.repo.GetByID(ctx, in.OrderID)
	if err != nil {
		return ConfirmOutput{}, err
	}
	if order == nil {
		return ConfirmOutput{}, ErrNotFound
	}
	if order.Status != domain.StatusPending {
		return ConfirmOutput{}, ErrAlreadyConfirmed
	}

	paid, err := uc.pay.VerifySession(ctx, order.SessionID)
	if err != nil {
		return ConfirmOutput{}, err
	}
	if !paid {
		return ConfirmOutput{}, ErrPaymentUnverified
	}

	ok, err := uc.guard.TryAcquire(ctx, order.ID)
	if err != nil {
		return ConfirmOutput{}, err
	}
	if !ok {
		return ConfirmOutput{}, ErrAlreadyConfirmed
	}
	ok, err = uc.repo.UpdateStatusIf(ctx, order.ID, domain.StatusPending, domain.StatusPaid)
	if err != nil {
		return ConfirmOutput{}, err
	}
	if !ok {
		return ConfirmOutput{}, ErrAlreadyConfirmed
	}

	// Payment is recorded. Everything below is best-effort notification,
	// reported in the output instead of failing the request.
	var out ConfirmOutput
	body := receiptHTML(order)

	if err := uc.mailer.Send(ctx, in.ClientEmail, "Your Order Confirmation", body); err != nil {
		log.Error("receipt email failed", "err", err)
	} else {
		out.ReceiptSent = true
	}

	var attachments []string
	labelPath, err := uc.labels.Render(order)
	if err != nil {
		log.Error("label generation failed", "err", err)
	} else {
		out.LabelGenerated = true
		attachments = append(attachments, labelPath)
		defer os.Remove(labelPath)
	}

	subject := fmt.Sprintf("New Order (%s)", order.ID)
	if err := uc.mailer.Send(ctx, uc.adminEmail, subject, body, attachments...); err != nil {
		log.Error("admin email failed", "err", err)
	} else {
		out.LabelSent = out.LabelGenerated
	}

	if _, err := uc.repo.UpdateStatusIf(ctx, order.ID, domain.StatusPaid, domain.StatusNotified); err != nil {
		log.Error("status update to NOTIFIED failed", "err", err)
	}

	log.Info("order confirmed",
		"receipt_sent", out.ReceiptSent,
		"label_generated", out.LabelGenerated,
		"label_sent", out.LabelSent)
	return out, nil
}

func receiptHTML(o *domain.Order) string {
	var items strings.Builder
	for _, it := range o.Cart {
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		fmt.Fprintf(&items, "<li>%d × %s — £%s</li>",
			it.Qty, html.EscapeString(it.Name), line.StringFixed(2))
	}

	return fmt.Sprintf(`
    <h2>Order Confirmation</h2>
    <p>Thank you for your order, %s!</p>
    <p><b>Order ID:</b> %s</p>
    <ul>%s</ul>
    <p>Subtotal: £%s<br>
       Tax: £%s<br>
       Shipping: £%s<br>
       <b>Total: £%s</b></p>
    `,
		html.EscapeString(o.Customer.FullName), o.ID, items.String(),
		o.Subtotal.StringFixed(2), o.Tax.StringFixed(2),
		o.Shipping.StringFixed(2), o.Total.StringFixed(2))
}
