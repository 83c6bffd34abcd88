package service

import (
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,234,567.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// PrettyPrintStat renders a daily delta in compact form: +0, +512, +1.2k, +3.4M.
func PrettyPrintStat(n int64) string {
	if n <= 0 {
		return "+0"
	}
	return "+" + strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}

// CompactCount is PrettyPrintStat without the sign, used for totals.
func CompactCount(n int64) string {
	if n <= 0 {
		return "0"
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}
