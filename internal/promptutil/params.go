package promptutil

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// FilterParams drops nil and empty-string values.
func FilterParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for key, value := range params {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// PrettifyParam turns a snake_case parameter name into "Snake case".
func PrettifyParam(param string) string {
	return Capitalize(strings.ReplaceAll(param, "_", " "))
}

// PrettifyParams renders the non-empty params as "Key: value" pairs joined
// by ", ", ordered by key.
func PrettifyParams(params map[string]any) string {
	filtered := FilterParams(params)

	keys := make([]string, 0, len(filtered))
	for key := range filtered {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	display := make([]string, 0, len(keys))
	for _, key := range keys {
		display = append(display, fmt.Sprintf("%s: %v", PrettifyParam(key), filtered[key]))
	}
	return strings.Join(display, ", ")
}

// ApplyDefaults returns a copy of request with every nil or missing key
// that defaults knows about filled in.
func ApplyDefaults(request, defaults map[string]any) map[string]any {
	out := make(map[string]any, len(request)+len(defaults))
	for key, value := range request {
		out[key] = value
	}
	for key, value := range defaults {
		if out[key] == nil {
			out[key] = value
		}
	}
	return out
}

// ToBool coerces loosely typed option values. Strings accept true/yes/1 and
// false/no/none/""/0/-1 case-insensitively, other decimal strings by their
// value. Numbers are true unless 0 or -1 (the "unset" seed convention).
// Slices, maps and arrays are judged by length, nil pointers are false, and
// anything else is true.
func ToBool(input any) bool {
	switch v := input.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return stringToBool(v)
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return n != 0 && n != -1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && f != -1 && !math.IsNaN(f)
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func stringToBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	case "false", "no", "none", "", "0", "-1":
		return false
	}
	if isDecimal(s) {
		n, err := strconv.ParseUint(s, 10, 64)
		return err != nil || n != 0
	}
	return true
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
