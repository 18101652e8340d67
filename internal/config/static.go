package config

import platform "github.com/beaconlabs/beacon/internal/platform/config"

// Build-time identity constants. These never come from the environment; only
// their variant-derived forms vary per deployment.
const (
	appName      = "Beacon"
	appSlug      = "beacon"
	baseBundleID = "com.beaconlabs.beacon"
)

// Static is the bundle of build-time identity values derived from the active
// variant. Non-production variants carry suffixed identifiers so installs and
// dashboards from different targets never collide.
type Static struct {
	AppName     string
	Slug        string
	BundleID    string
	DisplayName string
}

// StaticFor derives the static bundle for a variant. Pure: no I/O, no
// environment access, same output for the same variant.
func StaticFor(v platform.Variant) Static {
	s := Static{
		AppName:     appName,
		Slug:        appSlug,
		BundleID:    baseBundleID,
		DisplayName: appName,
	}
	switch v {
	case platform.Production:
		return s
	case platform.Staging:
		s.BundleID += ".staging"
		s.DisplayName += " (Staging)"
	default:
		s.BundleID += ".dev"
		s.DisplayName += " (Dev)"
	}
	return s
}
