package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatReais renders v as "R$25,50".
func FormatReais(v decimal.Decimal) string {
	return "R$" + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// FormatDebit renders v as "25.50".
func FormatDebit(v decimal.Decimal) string {
	return v.StringFixed(2)
}
