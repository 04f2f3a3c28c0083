package enrichment

import (
	ua "github.com/mileusna/useragent"
)

// Device labels.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// DeviceDetector detects device type from User-Agent strings.
type DeviceDetector struct{}

// NewDeviceDetector creates a new DeviceDetector.
func NewDeviceDetector() *DeviceDetector {
	return &DeviceDetector{}
}

// DetectDevice returns desktop, mobile, tablet, bot or unknown.
// Bots are reported as bots whatever device they claim.
func (d *DeviceDetector) DetectDevice(userAgent string) string {
	if userAgent == "" {
		return DeviceUnknown
	}

	parsed := ua.Parse(userAgent)

	switch {
	case parsed.Bot:
		return DeviceBot
	case parsed.Tablet:
		return DeviceTablet
	case parsed.Mobile:
		return DeviceMobile
	case parsed.Desktop:
		return DeviceDesktop
	default:
		return DeviceUnknown
	}
}
