package config

import (
	"fmt"
	"strconv"
)

// Values is a validated configuration: every declared name mapped to its
// coerced value. It is created once by Validate and read-only afterward.
//
// Values is itself a Source: LookupEnv re-renders each value as a string,
// so a validated set can feed go-simpler/env struct binding (or another
// validation pass, which yields the identical result).
type Values map[string]any

// String returns the named string or enum value. Asking for an undeclared
// name or the wrong kind is a programmer error and panics.
func (vals Values) String(name string) string {
	v, ok := vals[name].(string)
	if !ok {
		panic(fmt.Sprintf("config: %q is not a validated string variable", name))
	}
	return v
}

// Int returns the named number value.
func (vals Values) Int(name string) int64 {
	v, ok := vals[name].(int64)
	if !ok {
		panic(fmt.Sprintf("config: %q is not a validated number variable", name))
	}
	return v
}

// Bool returns the named boolean value.
func (vals Values) Bool(name string) bool {
	v, ok := vals[name].(bool)
	if !ok {
		panic(fmt.Sprintf("config: %q is not a validated boolean variable", name))
	}
	return v
}

// LookupEnv implements Source over the validated set.
func (vals Values) LookupEnv(key string) (string, bool) {
	v, ok := vals[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return fmt.Sprint(t), true
	}
}
