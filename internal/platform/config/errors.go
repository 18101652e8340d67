package config

import (
	"fmt"
	"strings"
)

// Reason classifies a validation failure for a single variable.
type Reason string

const (
	ReasonMissing   Reason = "missing"
	ReasonWrongType Reason = "wrong-type"
	ReasonNotInEnum Reason = "not-in-enum"
)

// ValidationError describes one failed variable: the name, a machine-readable
// reason, and a human-readable detail line.
type ValidationError struct {
	Name   string
	Reason Reason
	Detail string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Detail)
}

// ValidationErrors is the full list of failures from one validation pass.
// Validate never stops at the first problem; the operator gets every broken
// variable in one report and fixes them in a single edit cycle.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("invalid environment configuration: %s (%s)", e[0].Name, e[0].Reason)
	}
	return fmt.Sprintf("invalid environment configuration: %d variables failed validation", len(e))
}

// Report renders the multi-line operator report written to stderr on a fatal
// startup failure: every offending variable with its reason, plus the env
// file for the active variant as the remediation hint.
func (e ValidationErrors) Report(variant Variant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid environment configuration for variant %q:\n\n", variant)
	for _, ve := range e {
		fmt.Fprintf(&b, "  %-16s %-12s %s\n", ve.Name, ve.Reason, ve.Detail)
	}
	fmt.Fprintf(&b, "\nFix the variables above in %s or the process environment, then restart.\n", EnvFile(variant))
	return b.String()
}
