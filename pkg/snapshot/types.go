// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package snapshot defines the point-in-time system snapshot document and its
// typed section views.
//
// Snapshot files are loosely structured JSON (or YAML) produced by the
// capture subsystem or by external tooling. The loose document is decoded
// once at the boundary into optional typed sections; a nil section pointer
// means the section was absent from the document. Comparators therefore never
// probe raw maps and never need per-field fallback lookups.
package snapshot

import (
	"strconv"
	"time"

	"github.com/fidpa/rebootcheck/pkg/header"
)

const (
	// TypePreReboot marks a snapshot captured before a reboot.
	TypePreReboot = "pre-reboot"
	// TypePostReboot marks a snapshot captured after a reboot.
	TypePostReboot = "post-reboot"

	// TimestampLayout is the fixed layout of snapshot timestamps,
	// e.g. "20260115-031500".
	TimestampLayout = "20060102-150405"
)

// Snapshot is one point-in-time capture of a machine's operational state.
// Every section is optional; absent sections are nil (or empty for maps and
// slices) and are treated as "no data", never as an error.
//
// Snapshots are read-only once parsed: comparators receive shared references
// and must not mutate them.
type Snapshot struct {
	header.Header `mapstructure:",squash" json:",inline" yaml:",inline"`

	// Timestamp is the capture time in TimestampLayout format.
	Timestamp string `json:"timestamp" yaml:"timestamp" mapstructure:"timestamp"`

	// Type distinguishes pre-reboot from post-reboot captures.
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty" mapstructure:"hostname"`

	System           *System                    `json:"system,omitempty" yaml:"system,omitempty" mapstructure:"system"`
	Services         *Services                  `json:"services,omitempty" yaml:"services,omitempty" mapstructure:"services"`
	Docker           *Docker                    `json:"docker,omitempty" yaml:"docker,omitempty" mapstructure:"docker"`
	Network          *Network                   `json:"network,omitempty" yaml:"network,omitempty" mapstructure:"network"`
	USBDevices       []string                   `json:"usb_devices,omitempty" yaml:"usb_devices,omitempty" mapstructure:"usb_devices"`
	RouteGuardian    *RouteGuardian             `json:"route_guardian,omitempty" yaml:"route_guardian,omitempty" mapstructure:"route_guardian"`
	Fleet            map[string]FleetDevice     `json:"pi_zero_fleet,omitempty" yaml:"pi_zero_fleet,omitempty" mapstructure:"pi_zero_fleet"`
	NetworkManager   *NetworkManager            `json:"networkmanager,omitempty" yaml:"networkmanager,omitempty" mapstructure:"networkmanager"`
	WireGuard        *WireGuard                 `json:"wireguard,omitempty" yaml:"wireguard,omitempty" mapstructure:"wireguard"`
	Hardware         *Hardware                  `json:"hardware,omitempty" yaml:"hardware,omitempty" mapstructure:"hardware"`
	CriticalServices map[string]CriticalService `json:"critical_services,omitempty" yaml:"critical_services,omitempty" mapstructure:"critical_services"`
	ConfigChecksums  map[string]string          `json:"config_checksums,omitempty" yaml:"config_checksums,omitempty" mapstructure:"config_checksums"`
	MemoryDetail     *MemoryDetail              `json:"memory_detail,omitempty" yaml:"memory_detail,omitempty" mapstructure:"memory_detail"`
	CronJobs         []string                   `json:"cron_jobs,omitempty" yaml:"cron_jobs,omitempty" mapstructure:"cron_jobs"`
	BootInfo         *BootInfo                  `json:"boot_info,omitempty" yaml:"boot_info,omitempty" mapstructure:"boot_info"`

	// Custom holds host-specific extension readings, e.g. cpu_temp_celsius
	// on boards whose primary temperature source reads zero.
	Custom map[string]any `json:"custom,omitempty" yaml:"custom,omitempty" mapstructure:"custom"`
}

// System holds host-level metrics.
type System struct {
	Kernel           string  `json:"kernel,omitempty" yaml:"kernel,omitempty" mapstructure:"kernel"`
	Uptime           string  `json:"uptime,omitempty" yaml:"uptime,omitempty" mapstructure:"uptime"`
	DiskUsagePercent float64 `json:"disk_usage_percent,omitempty" yaml:"disk_usage_percent,omitempty" mapstructure:"disk_usage_percent"`
	CPUTemp          float64 `json:"cpu_temp,omitempty" yaml:"cpu_temp,omitempty" mapstructure:"cpu_temp"`
	LoadAverage      string  `json:"load_average,omitempty" yaml:"load_average,omitempty" mapstructure:"load_average"`
}

// Services holds systemd unit name sets.
type Services struct {
	Running []string `json:"running,omitempty" yaml:"running,omitempty" mapstructure:"running"`
	Enabled []string `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled"`
	Failed  []string `json:"failed,omitempty" yaml:"failed,omitempty" mapstructure:"failed"`
}

// Docker holds container runtime state.
type Docker struct {
	Containers []Container `json:"containers,omitempty" yaml:"containers,omitempty" mapstructure:"containers"`
}

// Container is one container's identity and state.
type Container struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	State string `json:"state,omitempty" yaml:"state,omitempty" mapstructure:"state"`
	Image string `json:"image,omitempty" yaml:"image,omitempty" mapstructure:"image"`
}

// Network holds link and routing state.
type Network struct {
	Interfaces     []Interface `json:"interfaces,omitempty" yaml:"interfaces,omitempty" mapstructure:"interfaces"`
	DefaultGateway string      `json:"default_gateway,omitempty" yaml:"default_gateway,omitempty" mapstructure:"default_gateway"`
}

// Interface mirrors the shape of `ip -j addr` entries.
type Interface struct {
	Name      string     `json:"ifname" yaml:"ifname" mapstructure:"ifname"`
	OperState string     `json:"operstate,omitempty" yaml:"operstate,omitempty" mapstructure:"operstate"`
	MAC       string     `json:"address,omitempty" yaml:"address,omitempty" mapstructure:"address"`
	AddrInfo  []AddrInfo `json:"addr_info,omitempty" yaml:"addr_info,omitempty" mapstructure:"addr_info"`
}

// AddrInfo is one address assigned to an interface.
type AddrInfo struct {
	Family    string `json:"family,omitempty" yaml:"family,omitempty" mapstructure:"family"`
	Local     string `json:"local,omitempty" yaml:"local,omitempty" mapstructure:"local"`
	PrefixLen int    `json:"prefixlen,omitempty" yaml:"prefixlen,omitempty" mapstructure:"prefixlen"`
}

// IPv4Addresses returns the set of inet family addresses on the interface.
func (i Interface) IPv4Addresses() map[string]bool {
	addrs := make(map[string]bool)
	for _, a := range i.AddrInfo {
		if a.Family == "inet" && a.Local != "" {
			addrs[a.Local] = true
		}
	}
	return addrs
}

// RouteGuardian holds the state of the optional failover subsystem found on
// router/gateway hosts.
type RouteGuardian struct {
	ServiceActive   bool   `json:"service_active" yaml:"service_active" mapstructure:"service_active"`
	ActiveGateway   string `json:"active_gateway,omitempty" yaml:"active_gateway,omitempty" mapstructure:"active_gateway"`
	DSLRoutePresent bool   `json:"dsl_route_present" yaml:"dsl_route_present" mapstructure:"dsl_route_present"`
	LTERoutePresent bool   `json:"lte_route_present" yaml:"lte_route_present" mapstructure:"lte_route_present"`
}

// FleetDevice is one fleet node's reachability record.
type FleetDevice struct {
	Reachable bool   `json:"reachable" yaml:"reachable" mapstructure:"reachable"`
	IP        string `json:"ip,omitempty" yaml:"ip,omitempty" mapstructure:"ip"`
}

// NetworkManager holds active connection state.
type NetworkManager struct {
	ActiveConnections []Connection `json:"active_connections,omitempty" yaml:"active_connections,omitempty" mapstructure:"active_connections"`
}

// Connection is one NetworkManager connection.
type Connection struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	State string `json:"state,omitempty" yaml:"state,omitempty" mapstructure:"state"`
}

// WireGuard holds VPN interface state.
type WireGuard struct {
	InterfaceActive bool `json:"interface_active" yaml:"interface_active" mapstructure:"interface_active"`
	PeersCount      int  `json:"peers_count" yaml:"peers_count" mapstructure:"peers_count"`
}

// Hardware holds single-board-computer health flags.
type Hardware struct {
	ThrottleEvents *ThrottleEvents `json:"throttle_events,omitempty" yaml:"throttle_events,omitempty" mapstructure:"throttle_events"`
}

// ThrottleEvents decodes the firmware throttle flags.
type ThrottleEvents struct {
	UnderVoltage       bool `json:"under_voltage" yaml:"under_voltage" mapstructure:"under_voltage"`
	CurrentlyThrottled bool `json:"currently_throttled" yaml:"currently_throttled" mapstructure:"currently_throttled"`
	SoftTempLimit      bool `json:"soft_temp_limit" yaml:"soft_temp_limit" mapstructure:"soft_temp_limit"`
}

// CriticalService is the health record of one must-run service.
type CriticalService struct {
	Active   string `json:"active,omitempty" yaml:"active,omitempty" mapstructure:"active"`
	Restarts int    `json:"restarts" yaml:"restarts" mapstructure:"restarts"`
}

// MemoryDetail holds swap usage.
type MemoryDetail struct {
	SwapUsagePercent float64 `json:"swap_usage_percent" yaml:"swap_usage_percent" mapstructure:"swap_usage_percent"`
	SwapTotalMB      float64 `json:"swap_total_mb,omitempty" yaml:"swap_total_mb,omitempty" mapstructure:"swap_total_mb"`
}

// BootInfo records boot phase completion, written by the autostart
// collaborator rather than the snapshot script, so it is frequently absent.
type BootInfo struct {
	// Available is a tri-state: a missing key means available (the section
	// was written by a completed boot), an explicit false marks a pre-reboot
	// placeholder.
	Available *bool `json:"available,omitempty" yaml:"available,omitempty" mapstructure:"available"`

	PhasesCompleted int `json:"phases_completed" yaml:"phases_completed" mapstructure:"phases_completed"`

	// BootDurationSeconds is numeric on healthy captures but may carry the
	// literal "unknown"; comparators parse it leniently.
	BootDurationSeconds any `json:"boot_duration_seconds,omitempty" yaml:"boot_duration_seconds,omitempty" mapstructure:"boot_duration_seconds"`
}

// IsAvailable reports whether the boot info section carries usable data.
// A missing available key counts as available.
func (b *BootInfo) IsAvailable() bool {
	if b == nil {
		return false
	}
	return b.Available == nil || *b.Available
}

// DurationSeconds parses the boot duration leniently, returning ok=false for
// absent, "unknown", or otherwise non-numeric values.
func (b *BootInfo) DurationSeconds() (int, bool) {
	if b == nil || b.BootDurationSeconds == nil {
		return 0, false
	}
	switch v := b.BootDurationSeconds.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// IsPostReboot reports whether the snapshot is a post-reboot capture.
func (s *Snapshot) IsPostReboot() bool {
	return s != nil && s.Type == TypePostReboot
}

// ParsedTimestamp parses the snapshot timestamp in TimestampLayout.
func (s *Snapshot) ParsedTimestamp() (time.Time, error) {
	return time.Parse(TimestampLayout, s.Timestamp)
}

// CPUTemp returns the CPU temperature from the primary system reading,
// falling back to the custom cpu_temp_celsius extension when the primary
// reads zero. Returns 0 when neither source has data.
func (s *Snapshot) CPUTemp() float64 {
	if s == nil {
		return 0
	}
	if s.System != nil && s.System.CPUTemp != 0 {
		return s.System.CPUTemp
	}
	if s.Custom == nil {
		return 0
	}
	switch v := s.Custom["cpu_temp_celsius"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
