package server

import (
	"encoding/json"
	"net/http"
	"time"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/store"
)

type statusSource interface {
	Statuses() map[domaingames.Sport]store.Status
}

type linkSource interface {
	IsConnected() bool
}

type sportHealth struct {
	Ready               bool       `json:"ready"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	LastError           string     `json:"lastError,omitempty"`
	LastSuccess         *time.Time `json:"lastSuccess,omitempty"`
}

type healthResponse struct {
	Status    string                            `json:"status"`
	Connected bool                              `json:"connected"`
	Sports    map[domaingames.Sport]sportHealth `json:"sports"`
}

// healthHandler reports link state and per-sport fetch health. The device is "ok"
// whenever the link is up; sports that were never opened are simply not ready.
func healthHandler(statuses statusSource, link linkSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		resp := healthResponse{Status: "ok", Sports: map[domaingames.Sport]sportHealth{}}
		if link != nil {
			resp.Connected = link.IsConnected()
		}
		if !resp.Connected {
			resp.Status = "offline"
		}
		if statuses != nil {
			for sport, st := range statuses.Statuses() {
				h := sportHealth{
					Ready:               st.IsReady(),
					ConsecutiveFailures: st.ConsecutiveFailures,
					LastError:           st.LastError,
				}
				if !st.LastSuccess.IsZero() {
					ts := st.LastSuccess
					h.LastSuccess = &ts
				}
				resp.Sports[sport] = h
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
