// FILE: lixenwraith/inifile/binary_test.go
package inifile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	doc, _ := newTestDocument(t)

	for size := 0; size <= 64; size++ {
		value := make([]byte, size)
		for i := range value {
			value[i] = byte(i*37 + size)
		}

		doc.WriteBinary("bin", "blob", value)

		buf := make([]byte, size)
		n, err := doc.ReadBinary("bin", "blob", buf)
		require.NoError(t, err)
		assert.Equal(t, size, n)
		assert.Equal(t, value, buf)
	}

	doc.WriteBinary("bin", "empty", nil)
	assert.True(t, doc.KeyExists("bin", "empty"))
	n, err := doc.ReadBinary("bin", "empty", make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBinaryEncoding(t *testing.T) {
	tests := []struct {
		name     string
		value    []byte
		expected string
	}{
		{"Single", []byte{0x0A}, "0A"},
		{"Three", []byte{0xAA, 0xBB, 0xCC}, "AA,BB,CC"},
		{"Extremes", []byte{0x00, 0xFF, 0x10}, "00,FF,10"},
		{"Empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeBinary(tt.value))
		})
	}
}

func TestReadBinary(t *testing.T) {
	doc, _ := newTestDocument(t,
		"[bin]",
		"lower=0a,ff,1b",
		"corrupt=AA,G1,CC",
		"corruptLow=AA,1Z",
		"short=AA,B",
		"loose=AA;BB:CC",
	)

	t.Run("Absent", func(t *testing.T) {
		buf := make([]byte, 4)
		n, err := doc.ReadBinary("bin", "missing", buf)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = doc.ReadBinary("nosection", "lower", buf)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		buf := make([]byte, 3)
		n, err := doc.ReadBinary("bin", "lower", buf)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{0x0A, 0xFF, 0x1B}, buf)
	})

	t.Run("LimitedByBuffer", func(t *testing.T) {
		buf := make([]byte, 2)
		n, err := doc.ReadBinary("bin", "lower", buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []byte{0x0A, 0xFF}, buf)
	})

	t.Run("LimitedByValue", func(t *testing.T) {
		buf := make([]byte, 8)
		n, err := doc.ReadBinary("bin", "lower", buf)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{0x0A, 0xFF, 0x1B}, buf[:n])
	})

	t.Run("Corrupt", func(t *testing.T) {
		for _, key := range []string{"corrupt", "corruptLow"} {
			buf := bytes.Repeat([]byte{0x55}, 3)
			n, err := doc.ReadBinary("bin", key, buf)
			assert.Equal(t, -1, n, key)
			assert.ErrorIs(t, err, ErrCorruptBinary)
			assert.ErrorIs(t, err, ErrConversion)
			assert.Equal(t, bytes.Repeat([]byte{0x55}, 3), buf, "buffer must be untouched")
		}
	})

	t.Run("CorruptBeyondLimitIgnored", func(t *testing.T) {
		buf := make([]byte, 1)
		n, err := doc.ReadBinary("bin", "corrupt", buf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []byte{0xAA}, buf)
	})

	t.Run("TrailingHalfPairDropped", func(t *testing.T) {
		buf := make([]byte, 4)
		n, err := doc.ReadBinary("bin", "short", buf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, byte(0xAA), buf[0])
	})

	t.Run("SeparatorsNotInspected", func(t *testing.T) {
		buf := make([]byte, 3)
		n, err := doc.ReadBinary("bin", "loose", buf)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, buf)
	})

	t.Run("ReadBytes", func(t *testing.T) {
		value, err := doc.ReadBytes("bin", "lower")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x0A, 0xFF, 0x1B}, value)

		value, err = doc.ReadBytes("bin", "missing")
		require.NoError(t, err)
		assert.Nil(t, value)

		_, err = doc.ReadBytes("bin", "corrupt")
		assert.ErrorIs(t, err, ErrCorruptBinary)
	})
}

func TestHexDigits(t *testing.T) {
	for nibble := byte(0); nibble < 16; nibble++ {
		digit := hexDigit(nibble)
		value, ok := hexValue(digit)
		require.True(t, ok)
		assert.Equal(t, nibble, value)
	}

	for _, c := range []byte{'g', 'G', 'z', ' ', ',', '/', ':', '@', '`'} {
		_, ok := hexValue(c)
		assert.False(t, ok, "%q", c)
	}
}
