package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/matrix-scoreboard/internal/poller"
)

// TimingConfig holds the second-mark schedules and the button dead time.
type TimingConfig struct {
	Cadences poller.Cadences
	Debounce time.Duration
}

// cadenceFile is the YAML layout of CADENCE_FILE, e.g.
//
//	list: [10]
//	detail: [10, 20, 40, 50]
//	baseball_detail: [20, 50]
//	reconnect: [30]
//	debounce: 400ms
type cadenceFile struct {
	poller.Cadences `yaml:",inline"`
	Debounce        string `yaml:"debounce"`
}

// loadTiming layers defaults, then the optional YAML file, then individual env vars.
func loadTiming() (TimingConfig, error) {
	timing := TimingConfig{
		Cadences: poller.DefaultCadences(),
		Debounce: defaultDebounce,
	}

	if path := os.Getenv(envCadenceFile); path != "" {
		if err := applyCadenceFile(&timing, path); err != nil {
			return TimingConfig{}, err
		}
	}

	timing.Debounce = durationEnvOrDefault(envDebounce, timing.Debounce)

	overrides := []struct {
		key    string
		target *poller.Cadence
	}{
		{envListCadence, &timing.Cadences.List},
		{envDetailCadence, &timing.Cadences.Detail},
		{envBaseballCad, &timing.Cadences.BaseballDetail},
		{envReconnectCad, &timing.Cadences.Reconnect},
	}
	for _, o := range overrides {
		raw, err := intListEnvOrDefault(o.key, *o.target)
		if err != nil {
			return TimingConfig{}, err
		}
		c, err := poller.NewCadence(raw...)
		if err != nil {
			return TimingConfig{}, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.target = c
	}
	return timing, nil
}

func applyCadenceFile(timing *TimingConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read cadence file: %w", err)
	}
	parsed := cadenceFile{Cadences: timing.Cadences}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse cadence file %s: %w", path, err)
	}
	timing.Cadences = parsed.Cadences
	if parsed.Debounce != "" {
		d, err := time.ParseDuration(parsed.Debounce)
		if err != nil || d <= 0 {
			return fmt.Errorf("cadence file %s: invalid debounce %q", path, parsed.Debounce)
		}
		timing.Debounce = d
	}
	return nil
}
