package model

// AccountBalance is the display form of one account inside a balance
// bucket. Balance is already rendered as a currency string.
type AccountBalance struct {
	Operator   string `json:"operator"`
	Name       string `json:"name"`
	Balance    string `json:"balance"`
	Currency   string `json:"currency"`
	LastUpdate string `json:"last_update"`
}

// BucketedBalances partitions non-closed accounts by account type.
type BucketedBalances struct {
	CurrentAccounts []AccountBalance `json:"current_accounts"`
	CreditCards     []AccountBalance `json:"credit_cards"`
	OtherAccounts   []AccountBalance `json:"other_accounts"`
	SavingGoals     []AccountBalance `json:"saving_goals"`
	SavingsAccounts []AccountBalance `json:"savings_accounts"`
	Unknown         []AccountBalance `json:"unknown"`
}

// BalanceSummary is the aggregated view returned by the balances
// operation. The three totals are currency-formatted strings.
type BalanceSummary struct {
	NetBalance      string           `json:"net_balance"`
	PositiveBalance string           `json:"positive_balance"`
	NegativeBalance string           `json:"negative_balance"`
	Balances        BucketedBalances `json:"balances"`
}

// DisplayTransaction is the normalized, display-ready form of a raw
// transaction record.
type DisplayTransaction struct {
	Date     string `json:"date"`
	Account  string `json:"account"`
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}
