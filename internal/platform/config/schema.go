package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the primitive type a variable's raw string is coerced into.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Variable declares a single environment variable: its name, kind, whether
// absence is acceptable, and the default used when it is. A variable that is
// neither required nor defaulted resolves to its kind's zero value.
type Variable struct {
	Name       string
	Kind       Kind
	Required   bool
	Default    string
	HasDefault bool
	Allowed    []string
	Secret     bool
}

// String declares a string variable.
func String(name string) Variable {
	return Variable{Name: name, Kind: KindString}
}

// Number declares an integer variable.
func Number(name string) Variable {
	return Variable{Name: name, Kind: KindNumber}
}

// Bool declares a boolean variable. Accepted tokens are those of
// strconv.ParseBool (1/0, t/f, true/false in their usual casings).
func Bool(name string) Variable {
	return Variable{Name: name, Kind: KindBool}
}

// Enum declares a variable restricted to a closed set of literal values.
func Enum(name string, allowed ...string) Variable {
	return Variable{Name: name, Kind: KindEnum, Allowed: allowed}
}

// Require marks the variable as mandatory: absence with no default is a
// validation failure.
func (v Variable) Require() Variable {
	v.Required = true
	return v
}

// WithDefault sets the value used when the variable is absent, given in raw
// string form so it passes through the same coercion as real input.
func (v Variable) WithDefault(raw string) Variable {
	v.Default = raw
	v.HasDefault = true
	return v
}

// Masked marks the variable's value as sensitive; Redact replaces it with a
// placeholder instead of rendering it.
func (v Variable) Masked() Variable {
	v.Secret = true
	return v
}

// Schema is the fixed, ordered set of declared variables.
type Schema []Variable

// NewSchema builds a schema from variable declarations. Declarations are a
// build-time artifact, so mistakes in them are programmer errors: a duplicate
// name, an enum with no allowed values, or a default that does not coerce to
// the declared kind all panic here rather than surfacing as runtime errors.
func NewSchema(vars ...Variable) Schema {
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v.Name == "" {
			panic("config: variable declared with empty name")
		}
		if _, dup := seen[v.Name]; dup {
			panic(fmt.Sprintf("config: variable %q declared twice", v.Name))
		}
		seen[v.Name] = struct{}{}
		if v.Kind == KindEnum && len(v.Allowed) == 0 {
			panic(fmt.Sprintf("config: enum variable %q has no allowed values", v.Name))
		}
		if v.HasDefault {
			if _, verr := v.coerce(v.Default); verr != nil {
				panic(fmt.Sprintf("config: default for %q does not coerce: %s", v.Name, verr.Detail))
			}
		}
	}
	return Schema(vars)
}

// Names returns the declared variable names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = v.Name
	}
	return names
}

// Redact renders a validated value set as name to string, replacing
// Masked variables with a placeholder. Used for startup logs and debug
// output so secrets never appear verbatim.
func (s Schema) Redact(vals Values) map[string]string {
	out := make(map[string]string, len(s))
	for _, v := range s {
		raw, ok := vals.LookupEnv(v.Name)
		if !ok {
			continue
		}
		if v.Secret && raw != "" {
			raw = "*****"
		}
		out[v.Name] = raw
	}
	return out
}

func (v Variable) coerce(raw string) (any, *ValidationError) {
	switch v.Kind {
	case KindString:
		return raw, nil
	case KindNumber:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &ValidationError{
				Name:   v.Name,
				Reason: ReasonWrongType,
				Detail: fmt.Sprintf("%q is not a valid number", raw),
			}
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &ValidationError{
				Name:   v.Name,
				Reason: ReasonWrongType,
				Detail: fmt.Sprintf("%q is not a valid boolean (use true or false)", raw),
			}
		}
		return b, nil
	case KindEnum:
		for _, a := range v.Allowed {
			if raw == a {
				return raw, nil
			}
		}
		return nil, &ValidationError{
			Name:   v.Name,
			Reason: ReasonNotInEnum,
			Detail: fmt.Sprintf("%q is not one of: %s", raw, strings.Join(v.Allowed, ", ")),
		}
	default:
		return nil, &ValidationError{
			Name:   v.Name,
			Reason: ReasonWrongType,
			Detail: fmt.Sprintf("unknown kind %d", v.Kind),
		}
	}
}

func (v Variable) zero() any {
	switch v.Kind {
	case KindNumber:
		return int64(0)
	case KindBool:
		return false
	default:
		return ""
	}
}
