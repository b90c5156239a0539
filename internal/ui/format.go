// Package ui holds the view models behind the server-rendered pages: the
// header, the property card and the landing page composition.
package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var locale = language.BrazilianPortuguese

// FormatBRL renders a monthly price in pt-BR currency notation with two
// fraction digits, e.g. 2500 -> "R$ 2.500,00".
func FormatBRL(v float64) string {
	p := message.NewPrinter(locale)
	return "R$ " + p.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// FormatCount groups thousands the pt-BR way: 1247 -> "1.247".
func FormatCount(n int) string {
	p := message.NewPrinter(locale)
	return p.Sprintf("%v", number.Decimal(n))
}

// FormatArea prints square meters without trailing zeros: 75 -> "75".
func FormatArea(v float64) string {
	p := message.NewPrinter(locale)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
