// FILE: lixenwraith/inifile/register.go
package inifile

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	currencyType = reflect.TypeOf(Currency(0))
	bytesType    = reflect.TypeOf([]byte(nil))
	ipType       = reflect.TypeOf(net.IP{})
	urlType      = reflect.TypeOf(url.URL{})
)

// WriteStruct writes the exported fields of src into section using `ini` tags.
// Each field is encoded the way its typed accessor would encode it.
// Nested structs are rejected since sections do not nest.
func (d *Document) WriteStruct(section string, src any) error {
	v := reflect.ValueOf(src)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("WriteStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("WriteStruct requires a struct or struct pointer, got %T", src)
	}

	var errors []string
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
		}

		if !isValidKey(key) {
			errors = append(errors, fmt.Sprintf("field %s: %v %q", field.Name, ErrInvalidKey, key))
			continue
		}

		if err := d.writeField(section, key, v.Field(i)); err != nil {
			errors = append(errors, fmt.Sprintf("field %s (key %s): %v", field.Name, key, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to write %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return nil
}

// writeField encodes one struct field through the matching typed writer.
func (d *Document) writeField(section, key string, fv reflect.Value) error {
	switch fv.Type() {
	case timeType:
		d.WriteDateTime(section, key, fv.Interface().(time.Time))
		return nil
	case durationType:
		d.WriteString(section, key, fv.Interface().(time.Duration).String())
		return nil
	case currencyType:
		d.WriteCurrency(section, key, fv.Interface().(Currency))
		return nil
	case bytesType:
		d.WriteBinary(section, key, fv.Bytes())
		return nil
	case ipType:
		d.WriteString(section, key, fv.Interface().(net.IP).String())
		return nil
	case urlType:
		u := fv.Interface().(url.URL)
		d.WriteString(section, key, u.String())
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		d.WriteString(section, key, fv.String())
	case reflect.Bool:
		d.WriteBool(section, key, fv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d.WriteInteger(section, key, fv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		d.WriteString(section, key, strconv.FormatUint(fv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		d.WriteFloat(section, key, fv.Float())
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		items := make([]string, fv.Len())
		for i := range items {
			items[i] = fv.Index(i).String()
		}
		d.WriteString(section, key, strings.Join(items, ","))
	case reflect.Ptr:
		// Nil pointers leave the key untouched
		if fv.IsNil() {
			return nil
		}
		return d.writeField(section, key, fv.Elem())
	case reflect.Struct, reflect.Map:
		return fmt.Errorf("nested value of type %s cannot be stored in a section", fv.Type())
	default:
		return fmt.Errorf("unsupported type %s", fv.Type())
	}
	return nil
}
