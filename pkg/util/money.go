package util

import (
	"github.com/dustin/go-humanize"
)

// FormatMoney renders an integer amount with thousands separators behind symbol.
func FormatMoney(symbol string, amount int64) string {
	return symbol + humanize.Comma(amount)
}
