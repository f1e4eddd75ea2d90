// Package model holds the wire and display types shared across the application.
package model

import "github.com/shopspring/decimal"

// AccountType is the remote service's numeric account classification.
type AccountType int

// Account type codes as sent by the accounts endpoint. Codes outside
// this range land in the unknown bucket.
const (
	AccountTypeCurrent     AccountType = 0
	AccountTypeSavings     AccountType = 1
	AccountTypeCreditCard  AccountType = 2
	AccountTypeOther       AccountType = 3
	AccountTypeSavingsGoal AccountType = 4
)

// Institution identifies the bank or provider behind an account.
type Institution struct {
	Name string `json:"Name"`
}

// Account mirrors one record of GET /api/Account/. Balance is kept as
// an arbitrary-precision decimal so no precision is lost before
// aggregation. LastRefreshed is an opaque timestamp string from the
// service and is passed through untouched.
type Account struct {
	ID                    string          `json:"Id"`
	Institution           Institution     `json:"Institution"`
	Name                  string          `json:"Name"`
	Balance               decimal.Decimal `json:"Balance"`
	IsClosed              bool            `json:"IsClosed"`
	IsIncludedInCashflow  bool            `json:"IsIncludedInCashflow"`
	IncludeInCalculations bool            `json:"IncludeInCalculations"`
	AccountTypeID         AccountType     `json:"AccountTypeId"`
	LastRefreshed         string          `json:"LastRefreshed"`
}
