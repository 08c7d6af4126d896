package usecase

import (
	"context"
	"sync"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
)

// mockRepo implements OrderRepo over a plain map.
type mockRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order

	createErr error
	getErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{orders: make(map[string]*domain.Order)}
}

func (m *mockRepo) Create(_ context.Context, o *domain.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockRepo) UpdateStatusIf(_ context.Context, id string, from, to domain.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

// mockGuard hands out one token per order id.
type mockGuard struct {
	mu    sync.Mutex
	taken map[string]bool
	err   error
}

func newMockGuard() *mockGuard { return &mockGuard{taken: make(map[string]bool)} }

func (m *mockGuard) TryAcquire(_ context.Context, orderID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken[orderID] {
		return false, nil
	}
	m.taken[orderID] = true
	return true, nil
}

// mockGateway records calls so tests can assert the processor was (not)
// reached.
type mockGateway struct {
	createCalls int
	verifyCalls int

	session   Session
	createErr error

	paid      bool
	verifyErr error
}

func (m *mockGateway) CreateSession(_ context.Context, _ []domain.Item, _ domain.Customer, _ pricing.Quote, orderID string) (Session, error) {
	m.createCalls++
	if m.createErr != nil {
		return Session{}, m.createErr
	}
	if m.session.ID == "" {
		return Session{ID: "cs_" + orderID, URL: "https://pay.example/" + orderID}, nil
	}
	return m.session, nil
}

func (m *mockGateway) VerifySession(_ context.Context, _ string) (bool, error) {
	m.verifyCalls++
	return m.paid, m.verifyErr
}

type sentMail struct {
	to, subject, html string
	attachments       []string
}

type mockMailer struct {
	sent []sentMail
	errs map[string]error // keyed by recipient
}

func (m *mockMailer) Send(_ context.Context, to, subject, html string, attachments ...string) error {
	if err := m.errs[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html, attachments: attachments})
	return nil
}

type mockLabeler struct {
	path string
	err  error
}

func (m *mockLabeler) Render(_ *domain.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.path, nil
}
