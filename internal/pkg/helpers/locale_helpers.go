package helpers

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers and money for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter builds a Formatter, falling back to pt-BR for unknown tags.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the formatter's language tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Money renders an amount in Brazilian reais ("R$ 50,00").
func (f *Formatter) Money(amount float64) string {
	return f.printer.Sprintf("%v %v", currency.Symbol(currency.BRL), number.Decimal(amount, number.Scale(2)))
}

// Decimal renders v with exactly the given number of fraction digits.
func (f *Formatter) Decimal(v float64, digits int) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(digits)))
}

// Count renders an integer with locale grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}
