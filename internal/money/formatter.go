// Package money renders arbitrary-precision amounts as localized
// currency strings. Amounts stay decimal end to end; nothing here
// round-trips through binary floating point.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders decimal amounts for display in one currency and
// locale.
type Formatter struct {
	printer    *message.Printer
	code       string
	unit       currency.Unit
	asCurrency bool
}

// New builds a Formatter for an ISO 4217 currency code and a BCP 47
// locale tag such as "en-GB". When asCurrency is false, Format emits
// plain grouped decimals without a symbol or forced precision.
func New(code, locale string, asCurrency bool) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		printer:    message.NewPrinter(tag),
		code:       code,
		unit:       unit,
		asCurrency: asCurrency,
	}, nil
}

// Code returns the ISO currency code amounts are rendered in.
func (f *Formatter) Code() string {
	return f.code
}

// Format renders d for display. Currency mode rounds half-even to two
// places in decimal space and prefixes the locale's symbol for the
// unit; decimal mode keeps the exact fractional digits.
func (f *Formatter) Format(d decimal.Decimal) string {
	if !f.asCurrency {
		return f.plainDecimal(d)
	}

	r := d.RoundBank(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	units := r.IntPart()
	cents := r.Sub(decimal.NewFromInt(units)).Shift(2).IntPart()
	symbol := f.printer.Sprint(currency.Symbol(f.unit))

	return f.printer.Sprintf("%s%s%d.%02d", sign, symbol, units, cents)
}

// plainDecimal groups the integer digits for the locale and appends
// the fractional digits exactly as stored.
func (f *Formatter) plainDecimal(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	units := d.IntPart()
	out := f.printer.Sprintf("%s%d", sign, units)
	if frac := d.Sub(decimal.NewFromInt(units)); !frac.IsZero() {
		// frac.String() is always "0.<digits>" here.
		out += frac.String()[1:]
	}
	return out
}
