package domain

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusNotified Status = "NOTIFIED"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidItem     = errors.New("item needs a name, a positive price and a positive quantity")
	ErrInvalidCustomer = errors.New("customer record incomplete")
	ErrInvalidEmail    = errors.New("malformed email address")
)

// Item is a cart line as submitted by the storefront. Items have no
// identity beyond their position in the cart.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" || i.Qty <= 0 || !i.Price.IsPositive() {
		return ErrInvalidItem
	}
	return nil
}

// Customer holds the shipping contact captured at checkout.
type Customer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

func (c Customer) Validate() error {
	for _, f := range []string{c.FullName, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Country} {
		if strings.TrimSpace(f) == "" {
			return ErrInvalidCustomer
		}
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Order is the snapshot stored at checkout-session creation. Totals are
// fixed at that point; confirmation reads them back from the store rather
// than trusting anything the client resubmits.
type Order struct {
	ID        string          `json:"id"`
	SessionID string          `json:"-"`
	Status    Status          `json:"status"`
	Customer  Customer        `json:"customer"`
	Cart      []Item          `json:"cart"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

func (o *Order) Validate() error {
	if len(o.Cart) == 0 {
		return ErrEmptyCart
	}
	for _, it := range o.Cart {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return o.Customer.Validate()
}
