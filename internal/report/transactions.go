package report

import (
	"fmt"

	"github.com/mdash-dev/mdash/internal/model"
	"github.com/mdash-dev/mdash/internal/money"
	"github.com/mdash-dev/mdash/internal/wcfdate"
)

// unknownAccountLabel is the display label for transactions whose
// account is missing from the account mapping.
const unknownAccountLabel = "Unknown"

// NormalizeTransactions maps raw widget transactions to display form:
// account references resolve to "{institution} - {name}" against the
// given mapping, the debit flag becomes "Debit"/"Credit", amounts are
// currency-formatted and WCF dates are decoded.
//
// Dates without a zone offset are rendered through the same layout in
// UTC. The upstream service returned those unformatted, leaving the
// output type dependent on the input encoding; this implementation
// normalizes to one representation.
func NormalizeTransactions(txns []model.Transaction, accounts map[string]model.Account, f *money.Formatter) ([]model.DisplayTransaction, error) {
	out := make([]model.DisplayTransaction, 0, len(txns))
	for _, t := range txns {
		when, _, err := wcfdate.Parse(t.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction date: %w", err)
		}

		label := unknownAccountLabel
		if a, ok := accounts[t.AccountID]; ok {
			label = a.Institution.Name + " - " + a.Name
		}

		kind := "Credit"
		if t.IsDebit {
			kind = "Debit"
		}

		out = append(out, model.DisplayTransaction{
			Date:     wcfdate.Format(when),
			Account:  label,
			Type:     kind,
			Amount:   f.Format(t.Amount),
			Currency: t.NativeCurrency,
		})
	}
	return out, nil
}
