// Package config provides schema-driven loading of environment configuration.
//
// A Schema declares every recognized variable with its kind, requiredness, and
// default. Raw values come from Sources (the process environment, a dotenv file
// parsed with godotenv, or a plain map) merged with a defined precedence.
// Validate applies the schema in a single pass and collects every failure,
// so a broken environment is reported completely instead of one variable at
// a time. The resulting Values set is itself a Source, which lets it feed
// go-simpler/env struct binding directly.
package config
