package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mdash-dev/mdash/internal/model"
	"github.com/mdash-dev/mdash/internal/money"
	"github.com/mdash-dev/mdash/internal/moneydashboard"
)

// Fetcher is the slice of the MoneyDashboard client this package
// consumes. The interface lives here so tests can swap in the mock.
type Fetcher interface {
	Accounts(ctx context.Context) (map[string]model.Account, error)
	CachedAccounts() map[string]model.Account
	Transactions(ctx context.Context, filter moneydashboard.TransactionFilter) ([]model.Transaction, error)
}

var (
	_ Fetcher = (*moneydashboard.Client)(nil)
	_ Fetcher = (*moneydashboard.MockClient)(nil)
)

// Service ties the MoneyDashboard client to the aggregation and
// normalization pipeline. These are the two public operations of the
// application: balances and normalized transactions, both as
// JSON-serializable structures.
type Service struct {
	fetcher   Fetcher
	formatter *money.Formatter
	policy    InclusionPolicy
	logger    *slog.Logger
}

// NewService creates a report service over the given fetcher.
func NewService(fetcher Fetcher, formatter *money.Formatter, policy InclusionPolicy) *Service {
	return &Service{
		fetcher:   fetcher,
		formatter: formatter,
		policy:    policy,
		logger:    slog.Default().With("component", "report"),
	}
}

// Balances fetches the account list and computes the balance summary.
func (s *Service) Balances(ctx context.Context) (*model.BalanceSummary, error) {
	accounts, err := s.fetcher.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	summary := ComputeBalances(accounts, s.formatter, s.policy)
	s.logger.Debug("Computed balance summary", "accounts", len(accounts))
	return &summary, nil
}

// Transactions fetches and normalizes the transaction list for the
// given filter. The account mapping cached on the client instance
// resolves display labels; it is fetched once here only if no earlier
// call populated it.
func (s *Service) Transactions(ctx context.Context, filter moneydashboard.TransactionFilter) ([]model.DisplayTransaction, error) {
	// Reject bad filters before any fetch, including the account one.
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", moneydashboard.ErrInvalidFilter, int(filter))
	}

	accounts := s.fetcher.CachedAccounts()
	if accounts == nil {
		var err error
		if accounts, err = s.fetcher.Accounts(ctx); err != nil {
			return nil, err
		}
	}

	txns, err := s.fetcher.Transactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Normalizing transactions", "count", len(txns))
	return NormalizeTransactions(txns, accounts, s.formatter)
}
