package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/shopspring/decimal"
)

// MySQLOrderRepo persists orders so they survive restarts. Customer and cart
// snapshots are stored as JSON columns; money columns are DECIMAL(10,2).
//
// Schema:
//
//	CREATE TABLE orders (
//	  id            VARCHAR(36) PRIMARY KEY,
//	  session_id    VARCHAR(128) NOT NULL,
//	  status        VARCHAR(16)  NOT NULL,
//	  customer_json JSON         NOT NULL,
//	  cart_json     JSON         NOT NULL,
//	  subtotal      DECIMAL(10,2) NOT NULL,
//	  tax           DECIMAL(10,2) NOT NULL,
//	  shipping      DECIMAL(10,2) NOT NULL,
//	  total         DECIMAL(10,2) NOT NULL,
//	  created_at    DATETIME NOT NULL,
//	  updated_at    DATETIME NOT NULL
//	);
type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	customerJSON, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	cartJSON, err := json.Marshal(o.Cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO orders (id,session_id,status,customer_json,cart_json,subtotal,tax,shipping,total,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,?,?,NOW(),NOW())
`, o.ID, o.SessionID, string(o.Status), customerJSON, cartJSON,
		o.Subtotal.StringFixed(2), o.Tax.StringFixed(2), o.Shipping.StringFixed(2), o.Total.StringFixed(2))
	return err
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,session_id,status,customer_json,cart_json,subtotal,tax,shipping,total
FROM orders WHERE id=?`, id)

	var o domain.Order
	var status string
	var customerJSON, cartJSON []byte
	var subtotal, tax, shippingStr, total string
	err := row.Scan(&o.ID, &o.SessionID, &status, &customerJSON, &cartJSON,
		&subtotal, &tax, &shippingStr, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Status = domain.Status(status)
	if err := json.Unmarshal(customerJSON, &o.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(cartJSON, &o.Cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	for name, pair := range map[string]struct {
		dst *decimal.Decimal
		raw string
	}{
		"subtotal": {&o.Subtotal, subtotal},
		"tax":      {&o.Tax, tax},
		"shipping": {&o.Shipping, shippingStr},
		"total":    {&o.Total, total},
	} {
		d, err := decimal.NewFromString(pair.raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		*pair.dst = d
	}
	return &o, nil
}

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders SET status = ?, updated_at = NOW()
WHERE id = ? AND status = ?`,
		string(to), id, string(from))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	// rows == 0: not found or status already moved on
	return rows > 0, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
