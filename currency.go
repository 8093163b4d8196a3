// FILE: lixenwraith/inifile/currency.go
package inifile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyScale is the number of Currency units in one whole.
const CurrencyScale = 10000

const currencyDigits = 4

// Currency is a fixed-point decimal with four fractional digits.
type Currency int64

// CurrencyFromFloat rounds f to the nearest Currency value.
func CurrencyFromFloat(f float64) Currency {
	return Currency(math.Round(f * CurrencyScale))
}

// Float64 returns the value as a float.
func (c Currency) Float64() float64 {
	return float64(c) / CurrencyScale
}

// String formats the value with a "." decimal separator.
func (c Currency) String() string {
	return formatCurrency(c, ".")
}

// ParseCurrency reads a decimal such as "-12.5" using "." as the separator.
func ParseCurrency(s string) (Currency, error) {
	c, ok := parseCurrency(s, ".")
	if !ok {
		return 0, fmt.Errorf("%w: invalid currency %q", ErrConversion, s)
	}
	return c, nil
}

// numberFormat holds the locale symbols used for decimal text.
type numberFormat struct {
	decimal string
}

// newNumberFormat derives the decimal separator from the locale's CLDR data.
// Locales whose sample does not use ASCII digits fall back to ".".
func newNumberFormat(tag language.Tag) numberFormat {
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1.5))
	if len(sample) > 2 && strings.HasPrefix(sample, "1") && strings.HasSuffix(sample, "5") {
		return numberFormat{decimal: sample[1 : len(sample)-1]}
	}
	return numberFormat{decimal: "."}
}

func (nf numberFormat) formatCurrency(c Currency) string {
	return formatCurrency(c, nf.decimal)
}

func (nf numberFormat) parseCurrency(s string) (Currency, bool) {
	return parseCurrency(s, nf.decimal)
}

// formatCurrency renders c without grouping and without trailing fractional zeros.
func formatCurrency(c Currency, sep string) string {
	magnitude := uint64(c)
	if c < 0 {
		magnitude = -magnitude
	}

	text := strconv.FormatUint(magnitude/CurrencyScale, 10)
	if frac := magnitude % CurrencyScale; frac != 0 {
		digits := strconv.FormatUint(frac+CurrencyScale, 10)[1:]
		text += sep + strings.TrimRight(digits, "0")
	}

	if c < 0 {
		return "-" + text
	}
	return text
}

// parseCurrency reads an optionally signed decimal using sep as the decimal separator.
// Digits beyond the fourth fractional place are rounded half away from zero.
func parseCurrency(s, sep string) (Currency, bool) {
	s = strings.TrimSpace(s)
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, sep)
	if (whole == "" && frac == "") || !isDigits(whole) || !isDigits(frac) {
		return 0, false
	}

	roundUp := false
	if len(frac) > currencyDigits {
		roundUp = frac[currencyDigits] >= '5'
		frac = frac[:currencyDigits]
	}
	frac += strings.Repeat("0", currencyDigits-len(frac))

	var units uint64
	if whole != "" {
		w, err := strconv.ParseUint(whole, 10, 64)
		if err != nil || w > math.MaxInt64/CurrencyScale {
			return 0, false
		}
		units = w * CurrencyScale
	}
	f, _ := strconv.ParseUint(frac, 10, 64)
	units += f
	if roundUp {
		units++
	}
	if units > math.MaxInt64 {
		return 0, false
	}

	if negative {
		return -Currency(units), true
	}
	return Currency(units), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
