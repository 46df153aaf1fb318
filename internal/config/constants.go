package config

import "time"

const (
	envProvider       = "PROVIDER"
	envESPNBaseURL    = "ESPN_BASE_URL"
	envFetchTimeout   = "FETCH_TIMEOUT"
	envFetchRetries   = "FETCH_RETRIES"
	envCacheDir       = "CACHE_DIR"
	envCacheWarm      = "CACHE_WARM"
	envCacheWarmAge   = "CACHE_WARM_MAX_AGE"
	envCacheWarmRate  = "CACHE_WARM_INTERVAL"
	envStartupView    = "STARTUP_VIEW"
	envPollInterval   = "POLL_INTERVAL"
	envDebounce       = "DEBOUNCE"
	envCadenceFile    = "CADENCE_FILE"
	envListCadence    = "LIST_CADENCE"
	envDetailCadence  = "DETAIL_CADENCE"
	envBaseballCad    = "BASEBALL_DETAIL_CADENCE"
	envReconnectCad   = "RECONNECT_CADENCE"
	envTimezone       = "TIMEZONE"
	envWifiSSID       = "WIFI_SSID"
	envWifiPassphrase = "WIFI_PASSPHRASE"
	envProbeAddr      = "PROBE_ADDR"
	envProbeInterval  = "PROBE_INTERVAL"
	envButtonsOn      = "BUTTONS_ENABLED"
	envGPIOChip       = "GPIO_CHIP"
	envButtonLeft     = "BUTTON_LEFT"
	envButtonRight    = "BUTTON_RIGHT"
	envButtonSelect   = "BUTTON_SELECT"
	envButtonBack     = "BUTTON_BACK"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider     = "espn"
	defaultFetchTimeout = 10 * Duration(time.Second)
	defaultFetchRetries = 2
	defaultCacheDir     = "data/cache"
	defaultCacheWarm    = true
	// Cached scoreboards older than this are refetched at boot.
	defaultCacheWarmAge  = 6 * Duration(time.Hour)
	defaultCacheWarmRate = 2 * Duration(time.Second)
	defaultStartupView   = "menu"
	// Button poll period of the main loop.
	defaultPollInterval  = 50 * Duration(time.Millisecond)
	defaultDebounce      = 400 * Duration(time.Millisecond)
	defaultTimezone      = "UTC"
	defaultProbeAddr     = "1.1.1.1:53"
	defaultProbeInterval = 5 * Duration(time.Second)
	defaultButtonsOn     = false
	defaultGPIOChip      = "gpiochip0"
	defaultButtonLeft    = 5
	defaultButtonRight   = 6
	defaultButtonSelect  = 13
	defaultButtonBack    = 19
	defaultMetricsPort   = "9090"
	defaultServiceName   = "matrix-scoreboard"
)
