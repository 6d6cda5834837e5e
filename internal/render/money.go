package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/networth/internal/networth"
)

// formatMoney renders amount with the currency's symbol and separators, e.g.
// "$1,234.56". Unknown currency codes print as "1234.56 XYZ" and an empty
// code as a bare "1234.56".
func formatMoney(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return amount.StringFixed(2)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func newPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// formatRatio prints a debt ratio as a localized percentage.
func formatRatio(p *message.Printer, r networth.Ratio) string {
	if r.Infinite {
		return r.String()
	}
	return p.Sprintf("%.2f%%", r.Float64())
}
