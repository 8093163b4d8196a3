// FILE: lixenwraith/inifile/binary.go
package inifile

import (
	"fmt"
	"math"
)

// Binary values are stored as uppercase hex pairs joined by commas: "0A,FF,10".
const binarySeparator = ','

// WriteBinary stores value as comma-separated hex pairs.
func (d *Document) WriteBinary(section, key string, value []byte) {
	d.WriteString(section, key, encodeBinary(value))
}

// ReadBinary decodes up to len(buf) bytes of the stored value into buf.
// It returns 0 when the value is absent, the byte count on success, and
// -1 with ErrCorruptBinary when a digit is not hexadecimal, leaving buf untouched.
func (d *Document) ReadBinary(section, key string, buf []byte) (int, error) {
	raw := d.ReadString(section, key, "")
	if raw == "" {
		return 0, nil
	}

	decoded, ok := decodeBinary(raw, len(buf))
	if !ok {
		return -1, fmt.Errorf("%w: section %q key %q", ErrCorruptBinary, section, key)
	}
	return copy(buf, decoded), nil
}

// ReadBytes decodes every byte of the stored value. An absent value returns nil.
func (d *Document) ReadBytes(section, key string) ([]byte, error) {
	raw := d.ReadString(section, key, "")
	if raw == "" {
		return nil, nil
	}

	decoded, ok := decodeBinary(raw, math.MaxInt)
	if !ok {
		return nil, fmt.Errorf("%w: section %q key %q", ErrCorruptBinary, section, key)
	}
	return decoded, nil
}

func encodeBinary(value []byte) string {
	if len(value) == 0 {
		return ""
	}

	out := make([]byte, 0, len(value)*3-1)
	for i, b := range value {
		if i > 0 {
			out = append(out, binarySeparator)
		}
		out = append(out, hexDigit(b>>4), hexDigit(b&0x0F))
	}
	return string(out)
}

// decodeBinary decodes min(limit, (len(raw)+1)/3) bytes.
// Separator positions are not inspected.
func decodeBinary(raw string, limit int) ([]byte, bool) {
	n := min((len(raw)+1)/3, limit)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		hi, ok := hexValue(raw[i*3])
		if !ok {
			return nil, false
		}
		lo, ok := hexValue(raw[i*3+1])
		if !ok {
			return nil, false
		}
		out[i] = hi<<4 | lo
	}
	return out, true
}

// hexDigit returns the uppercase hex digit for a nibble.
func hexDigit(nibble byte) byte {
	if nibble < 10 {
		return '0' + nibble
	}
	return 'A' + nibble - 10
}

// hexValue returns the nibble for a hex digit of either case.
func hexValue(c byte) (byte, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
