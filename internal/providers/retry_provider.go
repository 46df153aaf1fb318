package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 250 * time.Millisecond
)

// retryingProvider wraps a SportProvider with retry/backoff behavior.
// Malformed responses are not retried; the same payload would come back.
type retryingProvider struct {
	inner        SportProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/base are <= 0, defaults are used.
func NewRetryingProvider(inner SportProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, base time.Duration) SportProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	if name == "" {
		name = providerName(inner)
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = base
			b.MaxInterval = 4 * base
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
	}
}

func (r *retryingProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	if r.inner == nil {
		return nil, &FetchError{Kind: KindUnreachable, Sport: sport, Err: ErrProviderUnavailable}
	}

	var (
		result  []domaingames.Game
		attempt int
	)
	op := func() error {
		attempt++
		start := time.Now()
		games, err := r.inner.FetchSport(ctx, sport)
		r.metrics.RecordProviderAttempt(r.providerName, string(sport), time.Since(start), err)
		if err != nil {
			if KindOf(err) == KindMalformedResponse {
				return backoff.Permanent(err)
			}
			return err
		}
		result = games
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			logging.FieldSport, string(sport),
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			logging.FieldSport, string(sport),
			"attempts", attempt,
			"error", err,
		)
		return nil, Classify(sport, err)
	}
	return result, nil
}

func providerName(p SportProvider) string {
	if p == nil {
		return "provider"
	}
	return strings.ToLower(fmt.Sprintf("%T", p))
}
