package http

import (
	"context"
	"net/http"
	"time"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckoutService and ConfirmService are what the handler needs from the
// use-case layer; the concrete types in internal/usecase satisfy them.
type CheckoutService interface {
	Execute(ctx context.Context, in usecase.CheckoutInput) (usecase.CheckoutOutput, error)
}

type ConfirmService interface {
	Execute(ctx context.Context, in usecase.ConfirmInput) (usecase.ConfirmOutput, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	confirm  ConfirmService
	orders   usecase.OrderRepo
}

func NewCheckoutHandler(checkout CheckoutService, confirm ConfirmService, orders usecase.OrderRepo) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, confirm: confirm, orders: orders}
}

type itemReq struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Qty   int     `json:"qty" binding:"required,gt=0"`
}

type customerReq struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type checkoutReq struct {
	Customer customerReq `json:"customer" binding:"required"`
	Cart     []itemReq   `json:"cart" binding:"required,min=1,dive"`
	Total    float64     `json:"total" binding:"required,gt=0"`
}

type successReq struct {
	Customer    customerReq `json:"customer" binding:"required"`
	Cart        []itemReq   `json:"cart" binding:"required,min=1,dive"`
	Total       float64     `json:"total" binding:"required,gt=0"`
	CheckoutID  string      `json:"checkoutId" binding:"required"`
	ClientEmail string      `json:"client_email" binding:"required,email"`
}

func (r customerReq) toDomain() domain.Customer {
	return domain.Customer{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Zip:      r.Zip,
		Country:  r.Country,
	}
}

func toCart(items []itemReq) []domain.Item {
	cart := make([]domain.Item, 0, len(items))
	for _, it := range items {
		cart = append(cart, domain.Item{
			Name:  it.Name,
			Price: decimal.NewFromFloat(it.Price),
			Qty:   it.Qty,
		})
	}
	return cart
}

// CreateCheckoutSession prices the cart, stores the pending order and
// returns the processor's redirect URL.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	out, err := h.checkout.Execute(ctx, usecase.CheckoutInput{
		Customer: req.Customer.toDomain(),
		Cart:     toCart(req.Cart),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": out.URL})
}

type orderResp struct {
	ID       string      `json:"id"`
	Status   string      `json:"status"`
	Customer customerReq `json:"customer"`
	Cart     []itemReq   `json:"cart"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Shipping float64     `json:"shipping"`
	Total    float64     `json:"total"`
}

func (h *CheckoutHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("checkoutId")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	order, err := h.orders.GetByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if order == nil {
		writeError(c, usecase.ErrNotFound)
		return
	}

	resp := orderResp{
		ID:     order.ID,
		Status: string(order.Status),
		Customer: customerReq{
			FullName: order.Customer.FullName,
			Email:    order.Customer.Email,
			Phone:    order.Customer.Phone,
			Address:  order.Customer.Address,
			City:     order.Customer.City,
			State:    order.Customer.State,
			Zip:      order.Customer.Zip,
			Country:  order.Customer.Country,
		},
		Subtotal: order.Subtotal.InexactFloat64(),
		Tax:      order.Tax.InexactFloat64(),
		Shipping: order.Shipping.InexactFloat64(),
		Total:    order.Total.InexactFloat64(),
	}
	for _, it := range order.Cart {
		resp.Cart = append(resp.Cart, itemReq{Name: it.Name, Price: it.Price.InexactFloat64(), Qty: it.Qty})
	}
	c.JSON(http.StatusOK, resp)
}

// PaymentSuccess confirms a pending order after the client returns from the
// hosted checkout. The stored order, not the resubmitted payload, drives the
// receipt; the processor is asked whether the session was actually paid.
func (h *CheckoutHandler) PaymentSuccess(c *gin.Context) {
	var req successReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	out, err := h.confirm.Execute(ctx, usecase.ConfirmInput{
		OrderID:     req.CheckoutID,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "Order confirmed and emails sent",
		"receiptSent":    out.ReceiptSent,
		"labelGenerated": out.LabelGenerated,
		"labelSent":      out.LabelSent,
	})
}

const homePage = `<html>
  <head>
    <title>Luminous Candles API</title>
    <style>
      body { font-family: Arial; text-align: center; margin-top: 10%; background: #fafafa; color: #333; }
      h1 { color: #d4a017; }
      p { font-size: 1.1em; }
    </style>
  </head>
  <body>
    <h1>Luminous Candles API</h1>
    <p>Your backend is running successfully!</p>
    <p>Use endpoints like <code>/create-checkout-session</code> to process orders.</p>
  </body>
</html>`

func (h *CheckoutHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}
