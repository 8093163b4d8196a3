// FILE: lixenwraith/inifile/decode.go
package inifile

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag used by Scan and WriteStruct.
const TagName = "ini"

// Scan decodes the pairs of section into target, a non-nil pointer to a struct or map.
// Values follow the read rules of the typed accessors: the first pair for a key wins
// and empty values are treated as absent, leaving the target field untouched.
func (d *Document) Scan(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := d.sectionValues(section)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       d.getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", section, target, err)
	}
	return nil
}

// sectionValues collects the readable pairs of a section.
func (d *Document) sectionValues(name string) map[string]any {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	values := make(map[string]any)
	s := d.findSection(name)
	if s == nil {
		return values
	}
	for _, e := range s.entries {
		if e.kind != entryPair || e.value == "" {
			continue
		}
		if _, exists := values[e.key]; !exists {
			values[e.key] = e.value
		}
	}
	return values
}

// getDecodeHook returns the composite decode hook for all type conversions
func (d *Document) getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Document value encodings, ahead of the generic slice hook
		stringToBytesHookFunc(),
		stringToCurrencyHookFunc(d.numbers),
		stringToDateTimeHookFunc(d.opts.Location),
		stringToBoolHookFunc(),

		// Network types
		stringToNetIPHookFunc(),
		stringToURLHookFunc(),

		// Standard hooks
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToBytesHookFunc decodes hex-pair binary values into []byte
func stringToBytesHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]byte(nil)) {
			return data, nil
		}
		decoded, ok := decodeBinary(data.(string), len(data.(string)))
		if !ok {
			return nil, ErrCorruptBinary
		}
		return decoded, nil
	}
}

// stringToCurrencyHookFunc parses locale-formatted decimals into Currency
func stringToCurrencyHookFunc(nf numberFormat) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Currency(0)) {
			return data, nil
		}
		str := data.(string)
		c, ok := nf.parseCurrency(str)
		if !ok {
			return nil, fmt.Errorf("%w: invalid currency %q", ErrConversion, str)
		}
		return c, nil
	}
}

// stringToDateTimeHookFunc parses DateTimeLayout values into time.Time
func stringToDateTimeHookFunc(loc *time.Location) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		str := data.(string)
		v, ok := parseDateTime(str, loc)
		if !ok {
			return nil, fmt.Errorf("%w: invalid date-time %q", ErrConversion, str)
		}
		return v, nil
	}
}

// stringToBoolHookFunc reads integers as booleans the way ReadBool does
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		if v, ok := parseInteger(data.(string)); ok {
			return v != 0, nil
		}
		// Leave "true"/"false" to weak decoding
		return data, nil
	}
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 45 { // Max IPv6 length
			return nil, fmt.Errorf("invalid IP length: %d", len(str))
		}

		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
