package moneydashboard

import (
	"context"
	"fmt"

	"github.com/mdash-dev/mdash/internal/model"
)

// MockClient is a test double for Client with per-method hooks and
// call tracking.
type MockClient struct {
	// Functions tests set to control behavior.
	AccountsFn     func(ctx context.Context) (map[string]model.Account, error)
	TransactionsFn func(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	// Call tracking.
	AccountsCalls     int
	TransactionsCalls []TransactionFilter

	cached map[string]model.Account
}

// NewMockClient creates a mock with empty call tracking.
func NewMockClient() *MockClient {
	return &MockClient{TransactionsCalls: []TransactionFilter{}}
}

// Accounts implements the fetcher contract.
func (m *MockClient) Accounts(ctx context.Context) (map[string]model.Account, error) {
	m.AccountsCalls++

	if m.AccountsFn != nil {
		accounts, err := m.AccountsFn(ctx)
		if err == nil {
			m.cached = accounts
		}
		return accounts, err
	}
	m.cached = map[string]model.Account{}
	return m.cached, nil
}

// CachedAccounts mirrors Client's per-instance account cache.
func (m *MockClient) CachedAccounts() map[string]model.Account {
	return m.cached
}

// SetCachedAccounts seeds the cache without counting an Accounts call.
func (m *MockClient) SetCachedAccounts(accounts map[string]model.Account) {
	m.cached = accounts
}

// Transactions implements the fetcher contract. Like the real client
// it rejects invalid filters before recording any fetch.
func (m *MockClient) Transactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFilter, int(filter))
	}
	m.TransactionsCalls = append(m.TransactionsCalls, filter)

	if m.TransactionsFn != nil {
		return m.TransactionsFn(ctx, filter)
	}
	return []model.Transaction{}, nil
}

// Reset clears all call tracking and the cached accounts.
func (m *MockClient) Reset() {
	m.AccountsCalls = 0
	m.TransactionsCalls = []TransactionFilter{}
	m.cached = nil
}
