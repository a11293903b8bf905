package config

// PlaceholderAPIKey is the value shipped in example configs instead of a real key.
const PlaceholderAPIKey = "YOUR_HUBSPOT_API_KEY"

type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

func (m Mode) String() string {
	return string(m)
}

// SelectMode decides once, at startup, whether requests go to HubSpot or to the
// mock fixtures. The result must not change for the lifetime of the process.
func SelectMode(cfg HubSpot) Mode {
	if cfg.UseMockData || cfg.APIKey == "" || cfg.APIKey == PlaceholderAPIKey {
		return ModeMock
	}

	return ModeLive
}
