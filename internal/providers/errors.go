package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// FetchErrorKind classifies why a fetch did not produce games.
type FetchErrorKind string

const (
	KindTimeout           FetchErrorKind = "timeout"
	KindMalformedResponse FetchErrorKind = "malformed_response"
	KindUnreachable       FetchErrorKind = "unreachable"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrEmptyResult marks a feed that decoded fine but listed no games.
	ErrEmptyResult = errors.New("feed returned no games")
)

// FetchError captures a failed upstream fetch for one sport.
type FetchError struct {
	Kind       FetchErrorKind
	Sport      domaingames.Sport
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Sport, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// KindOf classifies any error returned by a provider.
func KindOf(err error) FetchErrorKind {
	if fetchErr, ok := AsFetchError(err); ok {
		return fetchErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, ErrEmptyResult) {
		return KindMalformedResponse
	}
	return KindUnreachable
}

// Classify wraps err in a FetchError for sport, keeping an existing FetchError as is.
func Classify(sport domaingames.Sport, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsFetchError(err); ok {
		return err
	}
	return &FetchError{Kind: KindOf(err), Sport: sport, Err: err}
}
