// FILE: lixenwraith/inifile/type.go
package inifile

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DateTimeLayout is the persisted form of date-time values.
const DateTimeLayout = "2006/01/02 15:04:05"

// ReadInteger returns the base-10 integer stored for key, or def if absent or unparsable.
func (d *Document) ReadInteger(section, key string, def int64) int64 {
	if v, ok := parseInteger(d.ReadString(section, key, "")); ok {
		return v
	}
	return def
}

// WriteInteger stores value in base 10.
func (d *Document) WriteInteger(section, key string, value int64) {
	d.WriteString(section, key, strconv.FormatInt(value, 10))
}

// ReadBool returns true for any non-zero stored integer.
// Unparsable values fall back to def through the integer path.
func (d *Document) ReadBool(section, key string, def bool) bool {
	var fallback int64
	if def {
		fallback = 1
	}
	return d.ReadInteger(section, key, fallback) != 0
}

// WriteBool stores "1" or "0".
func (d *Document) WriteBool(section, key string, value bool) {
	if value {
		d.WriteInteger(section, key, 1)
		return
	}
	d.WriteInteger(section, key, 0)
}

// ReadChar returns the first character of the stored value, or def if it is empty.
func (d *Document) ReadChar(section, key string, def rune) rune {
	s := d.ReadString(section, key, "")
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// WriteChar stores value as a one-character string.
func (d *Document) WriteChar(section, key string, value rune) {
	d.WriteString(section, key, string(value))
}

// ReadCurrency parses the stored value with the document locale's decimal separator.
func (d *Document) ReadCurrency(section, key string, def Currency) Currency {
	if v, ok := d.numbers.parseCurrency(d.ReadString(section, key, "")); ok {
		return v
	}
	return def
}

// WriteCurrency stores value with the document locale's decimal separator.
func (d *Document) WriteCurrency(section, key string, value Currency) {
	d.WriteString(section, key, d.numbers.formatCurrency(value))
}

// ReadFloat returns the stored floating point value, or def if unparsable.
func (d *Document) ReadFloat(section, key string, def float64) float64 {
	if v, ok := parseFloat(d.ReadString(section, key, "")); ok {
		return v
	}
	return def
}

// WriteFloat stores the shortest text that reads back as value.
func (d *Document) WriteFloat(section, key string, value float64) {
	d.WriteString(section, key, formatFloat(value))
}

// ReadDateTime decodes the fixed-offset layout used by WriteDateTime.
// Non-numeric fields count as zero; an impossible date or time returns def.
func (d *Document) ReadDateTime(section, key string, def time.Time) time.Time {
	if v, ok := parseDateTime(d.ReadString(section, key, ""), d.opts.Location); ok {
		return v
	}
	return def
}

// WriteDateTime stores value in the document location using DateTimeLayout.
// DateTimeLayout holds four-digit years only, so values before year 1 or after
// year 9999 are clamped to the first or last representable second.
func (d *Document) WriteDateTime(section, key string, value time.Time) {
	local := value.In(d.opts.Location)
	switch {
	case local.Year() < 1:
		local = time.Date(1, time.January, 1, 0, 0, 0, 0, d.opts.Location)
	case local.Year() > 9999:
		local = time.Date(9999, time.December, 31, 23, 59, 59, 0, d.opts.Location)
	}
	d.WriteString(section, key, local.Format(DateTimeLayout))
}

func parseInteger(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strings.TrimSpace(strconv.FormatFloat(v, 'g', -1, 64))
}

// parseDateTime reads YYYY/MM/DD HH:MM:SS by character offset.
func parseDateTime(s string, loc *time.Location) (time.Time, bool) {
	year := fieldAt(s, 0, 4)
	month := fieldAt(s, 5, 2)
	day := fieldAt(s, 8, 2)
	hour := fieldAt(s, 11, 2)
	minute := fieldAt(s, 14, 2)
	second := fieldAt(s, 17, 2)

	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}

// fieldAt parses s[start:start+n], clipped to s; anything non-numeric is 0.
func fieldAt(s string, start, n int) int {
	if start >= len(s) {
		return 0
	}
	end := min(start+n, len(s))
	v, err := strconv.Atoi(s[start:end])
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
