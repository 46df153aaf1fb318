package server

import "time"

// The metrics port only serves scrapes and the health document.
const (
	metricsReadTimeout  = 5 * time.Second
	metricsWriteTimeout = 10 * time.Second
	metricsIdleTimeout  = 30 * time.Second
)

// shutdownTimeout bounds the metrics and link shutdown; a var so tests can shorten it.
var shutdownTimeout = 5 * time.Second
