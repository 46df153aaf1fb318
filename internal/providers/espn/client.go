package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
)

// Config controls how the ESPN client reaches the public scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboards from ESPN and maps them to domain games.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchSport retrieves today's scoreboard for sport, in feed order.
func (c *Client) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	req, err := c.buildRequest(ctx, sport)
	if err != nil {
		return nil, &providers.FetchError{Kind: providers.KindUnreachable, Sport: sport, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.Classify(sport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.FetchError{
			Kind:       providers.KindUnreachable,
			Sport:      sport,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("espn: unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		kind := providers.KindOf(err)
		if kind == providers.KindUnreachable {
			// A body that cannot be decoded is malformed unless the read itself timed out.
			kind = providers.KindMalformedResponse
		}
		return nil, &providers.FetchError{Kind: kind, Sport: sport, Err: err}
	}

	games := make([]domaingames.Game, 0, len(payload.Events))
	for _, e := range payload.Events {
		if g, ok := mapEvent(sport, e); ok {
			games = append(games, g)
		}
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, sport domaingames.Sport) (*http.Request, error) {
	path, err := sportPath(sport)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
