package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Source yields raw string values by variable name. The signature matches
// go-simpler/env's Source, so any Source here can also drive struct binding.
type Source interface {
	LookupEnv(key string) (string, bool)
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS returns the process environment as a Source.
func OS() Source {
	return osSource{}
}

type mapSource map[string]string

func (m mapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Map wraps a plain map as a Source. Mostly useful in tests, where it stands
// in for the process environment without touching real process state.
func Map(m map[string]string) Source {
	return mapSource(m)
}

// FileSource parses a dotenv file into a Source via godotenv, without
// mutating the process environment. A missing or unreadable file is not
// fatal: deployments that inject variables directly never ship one. In that
// case the returned Source is empty and the error is surfaced only so the
// caller can log it.
func FileSource(path string) (Source, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return mapSource{}, err
	}
	return mapSource(m), nil
}

type multiSource []Source

func (m multiSource) LookupEnv(key string) (string, bool) {
	// Later sources take precedence.
	for i := len(m) - 1; i >= 0; i-- {
		if v, ok := m[i].LookupEnv(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Merge combines sources with later arguments overriding earlier ones.
// The convention is Merge(file, OS()): the process environment is the more
// specific, late-bound source and wins over file entries for the same key.
func Merge(sources ...Source) Source {
	return multiSource(sources)
}
