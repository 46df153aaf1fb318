package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
	Situation   *situationResponse   `json:"situation"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    *flexString  `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation   string `json:"abbreviation"`
	Color          string `json:"color"`
	AlternateColor string `json:"alternateColor"`
}

type statusResponse struct {
	Period int                `json:"period"`
	Type   statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Completed   bool   `json:"completed"`
	ShortDetail string `json:"shortDetail"`
}

type situationResponse struct {
	OnFirst  bool `json:"onFirst"`
	OnSecond bool `json:"onSecond"`
	OnThird  bool `json:"onThird"`
	Balls    int  `json:"balls"`
	Strikes  int  `json:"strikes"`
	Outs     int  `json:"outs"`
}

// flexString accepts either a JSON string or a JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
