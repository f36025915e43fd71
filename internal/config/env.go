package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// envBinding ties one settable config field to its environment variable.
type envBinding struct {
	name  string
	field reflect.Value
}

// EnvVars lists every environment variable LoadConfig honours, in field order.
func EnvVars() []string {
	bindings := collectEnvBindings(reflect.ValueOf(&Config{}).Elem(), EnvPrefix)
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.name)
	}
	return names
}

func collectEnvBindings(v reflect.Value, prefix string) []envBinding {
	var out []envBinding
	t := v.Type()
	for i := range t.NumField() {
		field := v.Field(i)
		if field.Kind() == reflect.Struct && field.Type() != durationType {
			out = append(out, collectEnvBindings(field, prefix)...)
			continue
		}
		if tag := t.Field(i).Tag.Get("env"); tag != "" {
			out = append(out, envBinding{name: prefix + tag, field: field})
		}
	}
	return out
}

// applyEnvOverrides replaces every field whose variable is set.
func applyEnvOverrides(cfg *Config, prefix string) error {
	for _, b := range collectEnvBindings(reflect.ValueOf(cfg).Elem(), prefix) {
		raw, ok := os.LookupEnv(b.name)
		if !ok {
			continue
		}
		if err := parseInto(b.field, raw); err != nil {
			return fmt.Errorf("env var %s: %w", b.name, err)
		}
	}
	return nil
}

func parseInto(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer format: %w", err)
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean format: %w", err)
		}
		field.SetBool(b)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid float format: %w", err)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
