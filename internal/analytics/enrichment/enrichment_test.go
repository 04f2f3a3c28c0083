package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefererClassifier_ClassifySource(t *testing.T) {
	classifier := NewRefererClassifier()

	tests := []struct {
		referer string
		want    string
	}{
		{referer: "", want: SourceDirect},
		{referer: "://bad", want: SourceDirect},
		{referer: "https://www.google.com/search?q=go", want: SourceSearch},
		{referer: "https://duckduckgo.com/", want: SourceSearch},
		{referer: "https://news.ycombinator.com/item?id=1", want: SourceReferral},
		{referer: "https://t.co/abc", want: SourceSocial},
		{referer: "https://m.facebook.com/", want: SourceSocial},
		{referer: "https://gemini.google.com/app", want: SourceAI},
		{referer: "https://claude.ai/chat/1", want: SourceAI},
		// suffix match only, not substring
		{referer: "https://notgoogle.com/", want: SourceReferral},
	}

	for _, tc := range tests {
		t.Run(tc.referer, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.ClassifySource(tc.referer))
		})
	}
}

func TestDeviceDetector_DetectDevice(t *testing.T) {
	detector := NewDeviceDetector()

	tests := []struct {
		name string
		ua   string
		want string
	}{
		{name: "empty", ua: "", want: DeviceUnknown},
		{name: "desktop chrome", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", want: DeviceDesktop},
		{name: "iphone", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", want: DeviceMobile},
		{name: "ipad", ua: "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", want: DeviceTablet},
		{name: "googlebot", ua: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", want: DeviceBot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detector.DetectDevice(tc.ua))
		})
	}
}

func TestGeoIPResolver_NoDatabase_ReturnsUnknown(t *testing.T) {
	resolver, err := NewGeoIPResolver("")
	require.NoError(t, err)
	defer resolver.Close()

	assert.Equal(t, LocationUnknown, resolver.ResolveLocation("8.8.8.8"))
	assert.Equal(t, LocationUnknown, resolver.ResolveLocation("not-an-ip"))
}

func TestNewGeoIPResolver_MissingFile_ReturnsError(t *testing.T) {
	_, err := NewGeoIPResolver(t.TempDir() + "/missing.mmdb")

	assert.Error(t, err)
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "Berlin, Germany", formatLocation("Berlin", "Germany", "DE"))
	assert.Equal(t, "Germany", formatLocation("", "Germany", "DE"))
	assert.Equal(t, "DE", formatLocation("", "", "DE"))
	assert.Equal(t, LocationUnknown, formatLocation("Berlin", "", ""))
	assert.Equal(t, LocationUnknown, formatLocation("", "", ""))
}
