package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders a date in the Indonesian display form used on exported
// reports, e.g. "17 Agustus 2025".
func FormatDateID(t time.Time) string {
	return t.Format("2") + " " + indonesianMonths[t.Month()-1] + " " + t.Format("2006")
}

var indonesianMonthsShort = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatMonthID renders a month bucket label in the Indonesian short form used
// on charts, e.g. "Agu 2025".
func FormatMonthID(t time.Time) string {
	return indonesianMonthsShort[t.Month()-1] + " " + t.Format("2006")
}

// FormatRupiah renders an amount as Indonesian Rupiah with dot thousand
// separators, e.g. "Rp 2.500.000". Fractional rupiah are rounded away; amounts
// are whole-rupiah in practice.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.Round(0).String()
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
		if len(digits) > pre {
			b.WriteString(".")
		}
	}
	for i := pre; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
