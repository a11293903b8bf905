package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/pkg/config"
)

func TestSelectMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.HubSpot
		want config.Mode
	}{
		{name: "no key", cfg: config.HubSpot{}, want: config.ModeMock},
		{name: "placeholder key", cfg: config.HubSpot{APIKey: config.PlaceholderAPIKey}, want: config.ModeMock},
		{name: "override", cfg: config.HubSpot{APIKey: "pat-na1-123", UseMockData: true}, want: config.ModeMock},
		{name: "real key", cfg: config.HubSpot{APIKey: "pat-na1-123"}, want: config.ModeLive},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, config.SelectMode(tt.cfg))
		})
	}
}

//nolint:paralleltest
func TestNew_Defaults(t *testing.T) {
	t.Setenv("HUBSPOT_API_KEY", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := config.New("testdata/does-not-exist.env")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "https://api.hubapi.com", cfg.HubSpot.BaseURL)
	require.Equal(t, config.ModeMock, config.SelectMode(cfg.HubSpot))
	require.False(t, cfg.Kafka.Enabled())
}
