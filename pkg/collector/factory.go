// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSystemCollector() Collector
	CreateServicesCollector() Collector
	CreateDockerCollector() Collector
	CreateNetworkCollector() Collector
	CreateUSBCollector() Collector
	CreateRouteGuardianCollector() Collector
	CreateFleetCollector() Collector
	CreateNetworkManagerCollector() Collector
	CreateWireGuardCollector() Collector
	CreateHardwareCollector() Collector
	CreateChecksumCollector() Collector
	CreateMemoryCollector() Collector
	CreateCronCollector() Collector
	CreateBootInfoCollector() Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// CriticalServices are the systemd units checked for active state and
	// restart counts.
	CriticalServices []string

	// ConfigFiles are the paths hashed into the config_checksums section.
	ConfigFiles []string

	// FleetDevices maps fleet node names to their IP addresses.
	FleetDevices map[string]string

	// RouteGuardianUnit is the failover service unit name.
	RouteGuardianUnit string

	// BootInfoPath is the marker file written by the autostart sequence.
	BootInfoPath string
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithCriticalServices overrides the critical service unit list.
func WithCriticalServices(services []string) Option {
	return func(f *DefaultFactory) {
		f.CriticalServices = services
	}
}

// WithConfigFiles overrides the hashed config file list.
func WithConfigFiles(files []string) Option {
	return func(f *DefaultFactory) {
		f.ConfigFiles = files
	}
}

// WithFleetDevices overrides the fleet device map.
func WithFleetDevices(devices map[string]string) Option {
	return func(f *DefaultFactory) {
		f.FleetDevices = devices
	}
}

// WithBootInfoPath overrides the boot info marker file path.
func WithBootInfoPath(path string) Option {
	return func(f *DefaultFactory) {
		f.BootInfoPath = path
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		CriticalServices: []string{
			"sshd.service",
			"dnsmasq.service",
			"NetworkManager.service",
		},
		ConfigFiles: []string{
			"/etc/dnsmasq.conf",
			"/etc/dhcpcd.conf",
			"/etc/wireguard/wg0.conf",
		},
		FleetDevices: map[string]string{
			"watchdog":      "10.0.0.11",
			"security":      "10.0.0.12",
			"dns_gateway":   "10.0.0.13",
			"gpio_bedroom":  "10.0.0.14",
			"gpio_bathroom": "10.0.0.15",
		},
		RouteGuardianUnit: "route-guardian.service",
		BootInfoPath:      "/var/run/autostart/boot_info.json",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateSystemCollector creates a host metrics collector.
func (f *DefaultFactory) CreateSystemCollector() Collector {
	return &SystemCollector{}
}

// CreateServicesCollector creates a systemd unit state collector.
func (f *DefaultFactory) CreateServicesCollector() Collector {
	return &ServicesCollector{CriticalServices: f.CriticalServices}
}

// CreateDockerCollector creates a container state collector.
func (f *DefaultFactory) CreateDockerCollector() Collector {
	return &DockerCollector{}
}

// CreateNetworkCollector creates a link and routing state collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &NetworkCollector{}
}

// CreateUSBCollector creates a USB device inventory collector.
func (f *DefaultFactory) CreateUSBCollector() Collector {
	return &USBCollector{}
}

// CreateRouteGuardianCollector creates a failover subsystem collector.
func (f *DefaultFactory) CreateRouteGuardianCollector() Collector {
	return &RouteGuardianCollector{Unit: f.RouteGuardianUnit}
}

// CreateFleetCollector creates a fleet reachability collector.
func (f *DefaultFactory) CreateFleetCollector() Collector {
	return &FleetCollector{Devices: f.FleetDevices}
}

// CreateNetworkManagerCollector creates an active connection collector.
func (f *DefaultFactory) CreateNetworkManagerCollector() Collector {
	return &NetworkManagerCollector{}
}

// CreateWireGuardCollector creates a VPN state collector.
func (f *DefaultFactory) CreateWireGuardCollector() Collector {
	return &WireGuardCollector{}
}

// CreateHardwareCollector creates a throttle flag collector.
func (f *DefaultFactory) CreateHardwareCollector() Collector {
	return &HardwareCollector{}
}

// CreateChecksumCollector creates a config file hash collector.
func (f *DefaultFactory) CreateChecksumCollector() Collector {
	return &ChecksumCollector{Files: f.ConfigFiles}
}

// CreateMemoryCollector creates a swap usage collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &MemoryCollector{}
}

// CreateCronCollector creates a cron job inventory collector.
func (f *DefaultFactory) CreateCronCollector() Collector {
	return &CronCollector{}
}

// CreateBootInfoCollector creates a boot marker file collector.
func (f *DefaultFactory) CreateBootInfoCollector() Collector {
	return &BootInfoCollector{Path: f.BootInfoPath}
}

// All returns every collector the factory knows how to build.
func (f *DefaultFactory) All() []Collector {
	return []Collector{
		f.CreateSystemCollector(),
		f.CreateServicesCollector(),
		f.CreateDockerCollector(),
		f.CreateNetworkCollector(),
		f.CreateUSBCollector(),
		f.CreateRouteGuardianCollector(),
		f.CreateFleetCollector(),
		f.CreateNetworkManagerCollector(),
		f.CreateWireGuardCollector(),
		f.CreateHardwareCollector(),
		f.CreateChecksumCollector(),
		f.CreateMemoryCollector(),
		f.CreateCronCollector(),
		f.CreateBootInfoCollector(),
	}
}
