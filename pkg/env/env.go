// Package env fills struct fields tagged `env:"KEY"` from an environment
// list in os.Environ form.
package env

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal sets every tagged field of target whose key is present and
// non-empty in environ. Fields whose key is absent keep their value.
//
// Supported field types are encoding.TextUnmarshaler implementations,
// strings, bools and integers.
func Unmarshal(target any, environ []string) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env: target must be a non-nil pointer to a struct")
	}
	v = v.Elem()

	vars := parse(environ)
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		key := sf.Tag.Get("env")
		if key == "" || !sf.IsExported() {
			continue
		}

		val, ok := vars[key]
		if !ok || val == "" {
			continue
		}

		if err := set(v.Field(i), val); err != nil {
			return fmt.Errorf("env: %s: %w", key, err)
		}
	}
	return nil
}

func parse(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, e := range environ {
		if key, val, ok := strings.Cut(e, "="); ok {
			vars[key] = val
		}
	}
	return vars
}

func set(field reflect.Value, s string) error {
	if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(u)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
