// Package config declares the application's environment schema and exposes
// the one immutable Config value the rest of the service consumes.
//
// Variables are declared once in the schema, loaded from the variant's .env
// file merged under the process environment, batch-validated, and bound to
// the typed Config struct via go-simpler/env tags. Load returns Config by
// value and there is no setter: consumers hold copies, so nothing can mutate
// configuration after startup.
package config
