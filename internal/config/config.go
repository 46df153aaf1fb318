package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/matrix-scoreboard/internal/buttons"
)

// Config holds runtime configuration for the scoreboard.
type Config struct {
	Provider     string
	ESPNBaseURL  string
	FetchTimeout Duration
	FetchRetries int
	StartupView  string
	PollInterval Duration
	Timezone     string
	Timing       TimingConfig
	Cache        CacheConfig
	Link         LinkConfig
	Buttons      ButtonsConfig
	Metrics      MetricsConfig
}

// CacheConfig controls the on-disk scoreboard cache and its boot warm-up.
type CacheConfig struct {
	Dir          string
	Warm         bool
	WarmMaxAge   time.Duration
	WarmInterval time.Duration
}

// LinkConfig controls the connectivity probe and the Wi-Fi credentials used to rejoin.
type LinkConfig struct {
	SSID          string
	Passphrase    string
	ProbeAddr     string
	ProbeInterval time.Duration
}

// ButtonsConfig maps each physical button to a GPIO line offset.
type ButtonsConfig struct {
	Enabled bool
	Chip    string
	Offsets map[buttons.Button]int
}

// Load reads configuration from environment variables with sensible defaults.
// Scalar values fall back to defaults when malformed; schedules and enumerations
// return an error instead.
func Load() (Config, error) {
	timing, err := loadTiming()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Provider:     strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		ESPNBaseURL:  envOrDefault(envESPNBaseURL, ""),
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		FetchRetries: intEnvOrDefault(envFetchRetries, defaultFetchRetries),
		StartupView:  strings.ToLower(envOrDefault(envStartupView, defaultStartupView)),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		Timing:       timing,
		Cache: CacheConfig{
			Dir:          envOrDefault(envCacheDir, defaultCacheDir),
			Warm:         boolEnvOrDefault(envCacheWarm, defaultCacheWarm),
			WarmMaxAge:   durationEnvOrDefault(envCacheWarmAge, defaultCacheWarmAge),
			WarmInterval: durationEnvOrDefault(envCacheWarmRate, defaultCacheWarmRate),
		},
		Link: LinkConfig{
			SSID:          envOrDefault(envWifiSSID, ""),
			Passphrase:    envOrDefault(envWifiPassphrase, ""),
			ProbeAddr:     envOrDefault(envProbeAddr, defaultProbeAddr),
			ProbeInterval: durationEnvOrDefault(envProbeInterval, defaultProbeInterval),
		},
		Buttons: loadButtons(),
		Metrics: loadMetrics(),
	}

	switch cfg.Provider {
	case "espn", "fixture":
	default:
		return Config{}, fmt.Errorf("%s: unknown provider %q", envProvider, cfg.Provider)
	}
	return cfg, nil
}

func loadButtons() ButtonsConfig {
	return ButtonsConfig{
		Enabled: boolEnvOrDefault(envButtonsOn, defaultButtonsOn),
		Chip:    envOrDefault(envGPIOChip, defaultGPIOChip),
		Offsets: map[buttons.Button]int{
			buttons.Left:   offsetEnvOrDefault(envButtonLeft, defaultButtonLeft),
			buttons.Right:  offsetEnvOrDefault(envButtonRight, defaultButtonRight),
			buttons.Select: offsetEnvOrDefault(envButtonSelect, defaultButtonSelect),
			buttons.Back:   offsetEnvOrDefault(envButtonBack, defaultButtonBack),
		},
	}
}
