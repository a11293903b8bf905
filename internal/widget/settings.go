package widget

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

const settingsFile = "crmwidget/settings.yaml"

type Settings struct {
	DefaultDealAmount float64 `yaml:"defaultDealAmount"`
	DefaultDealStage  string  `yaml:"defaultDealStage"`
	AutoRefresh       bool    `yaml:"autoRefresh"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultDealAmount: 1000,
		DefaultDealStage:  entity.DefaultDealStage,
		AutoRefresh:       true,
	}
}

// SettingsPath returns the settings file location under the XDG config dir.
func SettingsPath() (string, error) {
	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return path, nil
}

// LoadSettings reads the file at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	err = yaml.Unmarshal(b, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	if s.DefaultDealStage == "" {
		s.DefaultDealStage = entity.DefaultDealStage
	}

	return s, nil
}

func SaveSettings(path string, s Settings) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	err = os.WriteFile(path, b, 0o600)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}
