// Package report transforms raw MoneyDashboard records into the
// aggregated, display-ready structures callers consume. The transforms
// are pure; Service adds the fetch-then-transform wiring on top.
package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mdash-dev/mdash/internal/model"
	"github.com/mdash-dev/mdash/internal/money"
)

// InclusionPolicy selects which account flags gate the balance totals.
// Historical revisions of the upstream logic disagreed on this, so
// both behaviors are available.
type InclusionPolicy int

const (
	// RequireBothFlags counts an account only when it is included in
	// cashflow and in calculations. Reference behavior.
	RequireBothFlags InclusionPolicy = iota
	// CashflowFlagOnly matches older revisions that checked just the
	// cashflow flag.
	CashflowFlagOnly
)

// ParseInclusionPolicy maps a config value to a policy. The empty
// string selects the default.
func ParseInclusionPolicy(s string) (InclusionPolicy, error) {
	switch s {
	case "", "both":
		return RequireBothFlags, nil
	case "cashflow":
		return CashflowFlagOnly, nil
	}
	return 0, fmt.Errorf("unknown inclusion policy %q (want both or cashflow)", s)
}

func (p InclusionPolicy) includes(a model.Account) bool {
	if p == CashflowFlagOnly {
		return a.IsIncludedInCashflow
	}
	return a.IsIncludedInCashflow && a.IncludeInCalculations
}

// ComputeBalances classifies non-closed accounts into display buckets
// and sums the qualifying balances. Closed accounts appear nowhere.
// Accounts failing the inclusion policy still appear in their bucket
// but contribute to no total. Go maps iterate in random order, so
// buckets are filled in sorted account ID order to keep output stable
// across runs.
func ComputeBalances(accounts map[string]model.Account, f *money.Formatter, policy InclusionPolicy) model.BalanceSummary {
	var net, positive, negative decimal.Decimal

	buckets := model.BucketedBalances{
		CurrentAccounts: []model.AccountBalance{},
		CreditCards:     []model.AccountBalance{},
		OtherAccounts:   []model.AccountBalance{},
		SavingGoals:     []model.AccountBalance{},
		SavingsAccounts: []model.AccountBalance{},
		Unknown:         []model.AccountBalance{},
	}

	ids := make([]string, 0, len(accounts))
	for id := range accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		a := accounts[id]
		if a.IsClosed {
			continue
		}

		if policy.includes(a) {
			if a.Balance.IsNegative() {
				negative = negative.Add(a.Balance)
			} else {
				positive = positive.Add(a.Balance)
			}
			// Net is the running sum of qualifying balances, never
			// positive minus negative.
			net = net.Add(a.Balance)
		}

		entry := model.AccountBalance{
			Operator:   a.Institution.Name,
			Name:       a.Name,
			Balance:    f.Format(a.Balance),
			Currency:   f.Code(),
			LastUpdate: a.LastRefreshed,
		}
		switch a.AccountTypeID {
		case model.AccountTypeCurrent:
			buckets.CurrentAccounts = append(buckets.CurrentAccounts, entry)
		case model.AccountTypeSavings:
			buckets.SavingsAccounts = append(buckets.SavingsAccounts, entry)
		case model.AccountTypeCreditCard:
			buckets.CreditCards = append(buckets.CreditCards, entry)
		case model.AccountTypeOther:
			buckets.OtherAccounts = append(buckets.OtherAccounts, entry)
		case model.AccountTypeSavingsGoal:
			buckets.SavingGoals = append(buckets.SavingGoals, entry)
		default:
			buckets.Unknown = append(buckets.Unknown, entry)
		}
	}

	return model.BalanceSummary{
		NetBalance:      f.Format(net),
		PositiveBalance: f.Format(positive),
		NegativeBalance: f.Format(negative),
		Balances:        buckets,
	}
}
