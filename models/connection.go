package models

import (
	"fmt"
	"strings"
)

// NetworkState is the connectivity reported by the device.
type NetworkState string

const (
	NetworkUnknown  NetworkState = "unknown"
	NetworkNone     NetworkState = "none"
	NetworkCellular NetworkState = "cellular"
	NetworkEthernet NetworkState = "ethernet"
	NetworkWiFi     NetworkState = "wifi"
)

// ParseNetworkState converts a textual network state. An empty string is
// treated as unknown.
func ParseNetworkState(s string) (NetworkState, error) {
	switch state := NetworkState(strings.ToLower(strings.TrimSpace(s))); state {
	case "":
		return NetworkUnknown, nil
	case NetworkUnknown, NetworkNone, NetworkCellular, NetworkEthernet, NetworkWiFi:
		return state, nil
	default:
		return NetworkUnknown, fmt.Errorf("unknown network state %q", s)
	}
}

// Mode selects which connection serves an operation.
type Mode string

const (
	// ModeAuto derives the mode from the network state.
	ModeAuto    Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// ParseMode converts a textual mode override. "auto" and "" both mean
// no override.
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeAuto, "auto":
		return ModeAuto, nil
	case ModeOffline, ModeOnline:
		return mode, nil
	default:
		return ModeAuto, fmt.Errorf("unknown connection mode %q", s)
	}
}

// ResolveMode picks the connection mode for one operation. A non-auto
// override always wins. Otherwise cellular and wifi are online and every
// other state (none, ethernet, unknown) is offline.
func ResolveMode(state NetworkState, override Mode) Mode {
	if override != ModeAuto {
		return override
	}

	switch state {
	case NetworkCellular, NetworkWiFi:
		return ModeOnline
	default:
		return ModeOffline
	}
}
