package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	platform "github.com/beaconlabs/beacon/internal/platform/config"
)

func TestStaticFor_Production_UnsuffixedIdentifiers(t *testing.T) {
	s := StaticFor(platform.Production)

	assert.Equal(t, "Beacon", s.AppName)
	assert.Equal(t, "beacon", s.Slug)
	assert.Equal(t, "com.beaconlabs.beacon", s.BundleID)
	assert.Equal(t, "Beacon", s.DisplayName)
}

func TestStaticFor_Staging_SuffixedIdentifiers(t *testing.T) {
	s := StaticFor(platform.Staging)

	assert.Equal(t, "com.beaconlabs.beacon.staging", s.BundleID)
	assert.Equal(t, "Beacon (Staging)", s.DisplayName)
}

func TestStaticFor_Development_SuffixedIdentifiers(t *testing.T) {
	s := StaticFor(platform.Development)

	assert.Equal(t, "com.beaconlabs.beacon.dev", s.BundleID)
	assert.Equal(t, "Beacon (Dev)", s.DisplayName)
}

func TestStaticFor_Pure(t *testing.T) {
	assert.Equal(t, StaticFor(platform.Staging), StaticFor(platform.Staging))
}
