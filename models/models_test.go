package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Primary(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   Status
	}{
		{"local only", StatusLocal, StatusLocal},
		{"local and remote", StatusLocal | StatusRemote, StatusLocal},
		{"remote only", StatusRemote, StatusRemote},
		{"none", StatusNone, StatusNone},
		{"zero", 0, StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Primary())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "local|remote", (StatusLocal | StatusRemote).String())
	assert.Equal(t, "remote", StatusRemote.String())
	assert.Equal(t, "unset", Status(0).String())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		state    NetworkState
		override Mode
		want     Mode
	}{
		{NetworkNone, ModeAuto, ModeOffline},
		{NetworkEthernet, ModeAuto, ModeOffline},
		{NetworkUnknown, ModeAuto, ModeOffline},
		{NetworkCellular, ModeAuto, ModeOnline},
		{NetworkWiFi, ModeAuto, ModeOnline},
		{NetworkWiFi, ModeOffline, ModeOffline},
		{NetworkNone, ModeOnline, ModeOnline},
	}

	for _, tt := range tests {
		t.Run(string(tt.state)+"/"+string(tt.override), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.state, tt.override))
		})
	}
}

func TestParseNetworkState(t *testing.T) {
	state, err := ParseNetworkState(" WiFi ")
	require.NoError(t, err)
	assert.Equal(t, NetworkWiFi, state)

	state, err = ParseNetworkState("")
	require.NoError(t, err)
	assert.Equal(t, NetworkUnknown, state)

	_, err = ParseNetworkState("bluetooth")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("auto")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, mode)

	mode, err = ParseMode("ONLINE")
	require.NoError(t, err)
	assert.Equal(t, ModeOnline, mode)

	_, err = ParseMode("sometimes")
	assert.Error(t, err)
}

func TestUserAccess_Expired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, UserAccess{}.Expired(now), "no token means expired")
	assert.False(t, UserAccess{AccessToken: "t", ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, UserAccess{AccessToken: "t", ExpiresAt: now}.Expired(now))
	assert.False(t, UserAccess{AccessToken: "t"}.Expired(now), "no expiry reported")
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
