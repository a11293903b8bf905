package widget_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/internal/widget"
)

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "reach me at john.doe@example.com please", want: "john.doe@example.com"},
		{text: "first a_b@x.io then c@d.org", want: "a_b@x.io"},
		{text: "no address here", want: ""},
		{text: "broken@address", want: ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, widget.ExtractEmail(tt.text), tt.text)
	}
}

func TestEmailDomain(t *testing.T) {
	t.Parallel()

	require.Equal(t, "techcorp.com", widget.EmailDomain("jane@TechCorp.com"))
	require.Empty(t, widget.EmailDomain("nodomain"))
}

func TestFormatChatDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0:00", widget.FormatChatDuration(0))
	require.Equal(t, "1:05", widget.FormatChatDuration(65))
	require.Equal(t, "12:30", widget.FormatChatDuration(750))
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"vip", "q4 webinar"}, widget.SplitTags(" vip,, q4 webinar ,"))
	require.Empty(t, widget.SplitTags(" , "))
}

func TestSettings_LoadSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crmwidget", "settings.yaml")

	s, err := widget.LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, widget.DefaultSettings(), s)

	s.DefaultDealAmount = 2500.5
	s.AutoRefresh = false
	require.NoError(t, widget.SaveSettings(path, s))

	loaded, err := widget.LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, s, loaded)

	require.NoError(t, os.WriteFile(path, []byte("defaultDealAmount: 42\n"), 0o600))

	partial, err := widget.LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 42.0, partial.DefaultDealAmount)
	require.Equal(t, "appointmentscheduled", partial.DefaultDealStage)
	require.True(t, partial.AutoRefresh)

	require.NoError(t, os.WriteFile(path, []byte("defaultDealAmount: [oops"), 0o600))

	_, err = widget.LoadSettings(path)
	require.Error(t, err)
}
