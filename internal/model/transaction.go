package model

import "github.com/shopspring/decimal"

// Transaction mirrors one record of the widget transactions endpoint.
// Date is the WCF-encoded timestamp string; AccountId may reference an
// account the service no longer reports.
type Transaction struct {
	Date           string          `json:"Date"`
	AccountID      string          `json:"AccountId"`
	IsDebit        bool            `json:"IsDebit"`
	Amount         decimal.Decimal `json:"Amount"`
	NativeCurrency string          `json:"NativeCurrency"`
}
