package services

import "github.com/shopspring/decimal"

const currencySymbol = "€"

// FormatEuro renders an amount with two decimals and a trailing euro sign
func FormatEuro(amount decimal.Decimal) string {
	return amount.StringFixed(2) + currencySymbol
}

// formatPercent renders a percentage rounded to a whole number
func formatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(0) + "%"
}
