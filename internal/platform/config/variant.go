package config

import "fmt"

// Variant names a deployment target. The set is closed: a selector value
// outside it is a configuration error, not a new variant.
type Variant string

const (
	Development Variant = "development"
	Staging     Variant = "staging"
	Production  Variant = "production"
)

// SelectorVar is the environment variable that picks the active variant.
const SelectorVar = "APP_ENV"

// ParseVariant maps a raw selector value onto the closed variant set.
func ParseVariant(raw string) (Variant, error) {
	switch Variant(raw) {
	case Development, Staging, Production:
		return Variant(raw), nil
	default:
		return Development, fmt.Errorf("unknown variant %q (expected %s, %s, or %s)",
			raw, Development, Staging, Production)
	}
}

// CurrentVariant resolves the active variant from the given source. An unset
// or empty selector defaults to Development. On an unrecognized value the
// error is returned along with Development so callers still have a usable
// variant for rendering the failure report.
func CurrentVariant(src Source) (Variant, error) {
	raw, ok := src.LookupEnv(SelectorVar)
	if !ok || raw == "" {
		return Development, nil
	}
	return ParseVariant(raw)
}

// EnvFile returns the conventional dotenv file name for a variant.
func EnvFile(v Variant) string {
	return ".env." + string(v)
}

// IsProduction reports whether v is the production variant. Non-production
// variants get suffixed identifiers in derived static values.
func (v Variant) IsProduction() bool {
	return v == Production
}
