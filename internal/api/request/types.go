package request

import (
	"encoding/json"
	"strconv"
)

// StartSessionRequest is the request body for starting a round
type StartSessionRequest struct {
	PlayerCount   Count  `json:"player_count"`
	ImposterCount Count  `json:"imposter_count"`
	CustomWord    string `json:"custom_word,omitempty"`
	Category      string `json:"category,omitempty"`
}

// Count is a player or imposter count as the client sent it. Numbers and
// strings are both accepted and kept as text; the handler decides whether
// the value is a valid count.
type Count string

// NewCount returns the Count for n
func NewCount(n int) Count {
	return Count(strconv.Itoa(n))
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Count) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Count(s)
		return nil
	}
	*c = Count(data)
	return nil
}

// MarshalJSON implements json.Marshaler. Integer counts are sent as numbers.
func (c Count) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(c)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(c))
}

// RoundRequest is the optional request body for reveal and advance. When
// RoundID is set it must name the round in play.
type RoundRequest struct {
	RoundID string `json:"round_id,omitempty"`
}
