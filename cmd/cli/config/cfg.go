package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kweitzel/clockface/internal/clock"
	"gopkg.in/yaml.v2"
)

// Cfg is the resolved screen configuration. The file is optional: without
// one the screen starts dark, 24-hour, silent, with a 60s battery poll.
type Cfg struct {
	DarkMode       bool
	HourFormat     clock.Format
	Announce       bool
	Voice          string
	BatteryRefresh time.Duration
	LogLevel       string
}

type ConfigData struct {
	DarkMode              *bool  `yaml:"dark_mode"`
	HourFormat            string `yaml:"hour_format"`
	Announce              bool   `yaml:"announce"`
	Voice                 string `yaml:"voice"`
	BatteryRefreshSeconds *int   `yaml:"battery_refresh_seconds"`
	LogLevel              string `yaml:"log_level"`
}

func defaults() *Cfg {
	return &Cfg{
		DarkMode:       true,
		HourFormat:     clock.FormatTwentyFour,
		Announce:       false,
		BatteryRefresh: time.Minute,
		LogLevel:       "info",
	}
}

func Path() (string, error) {
	dir, err := os.UserConfigDir()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("config: error getting config dir. %v", err)
	}

	return filepath.Join(dir, "clockface", "config.yaml"), nil
}

func ReadYaml() (*Cfg, error) {
	path, err := Path()

	if err != nil {
		return nil, err
	}

	yamlData, err := os.ReadFile(path)

	if errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not read file. %v", err)
	}

	return FromYaml(yamlData)
}

func FromYaml(yamlData []byte) (*Cfg, error) {
	var configData ConfigData

	err := yaml.Unmarshal(yamlData, &configData)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	cfg := defaults()

	if configData.DarkMode != nil {
		cfg.DarkMode = *configData.DarkMode
	}

	if configData.HourFormat != "" {
		format, err := clock.ParseFormat(configData.HourFormat)
		if err != nil {
			return nil, err
		}
		cfg.HourFormat = format
	}

	cfg.Announce = configData.Announce
	cfg.Voice = configData.Voice

	if configData.BatteryRefreshSeconds != nil {
		cfg.BatteryRefresh = time.Duration(*configData.BatteryRefreshSeconds) * time.Second
	}

	if configData.LogLevel != "" {
		cfg.LogLevel = configData.LogLevel
	}

	return cfg, nil
}
