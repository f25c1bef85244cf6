package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "3f2a9c1")
	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "3f2a9c1", info.BuildCommit())

	empty := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", empty.BuildVersion())
	assert.Equal(t, "N/A", empty.BuildDate())
	assert.Equal(t, "N/A", empty.BuildCommit())
}

func TestHealthReport_IsHealthy(t *testing.T) {
	assert.True(t, HealthReport{Status: HealthStatusHealthy, Database: DatabaseConnected}.IsHealthy())
	assert.False(t, HealthReport{Status: HealthStatusUnhealthy, Database: DatabaseDisconnected}.IsHealthy())
	assert.False(t, HealthReport{}.IsHealthy())
}
