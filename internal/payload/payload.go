package payload

import (
	"encoding/json"
	"math"
	"time"
)

// SourceError is the source identifier carried by total-failure payloads.
const SourceError = "error"

// Payload is the single result record a run emits. On total failure Vix is
// NaN, Source is "error" and Error holds the terminal failure's message.
type Payload struct {
	Timestamp string  `json:"timestamp"`
	Vix       float64 `json:"vix"`
	Threshold float64 `json:"threshold"`
	Exceeded  bool    `json:"exceeded"`
	Source    string  `json:"source"`
	Error     string  `json:"error,omitempty"`
}

// Build assembles the payload for a fetched value. Exceeded is the plain
// comparison value >= threshold; for a NaN value that comparison is false,
// which is exactly the contract for the total-failure path.
func Build(value float64, source string, threshold float64) Payload {
	return Payload{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Vix:       value,
		Threshold: threshold,
		Exceeded:  value >= threshold,
		Source:    source,
	}
}

// BuildError assembles the payload for the total-failure path
func BuildError(threshold float64, errMsg string) Payload {
	p := Build(math.NaN(), SourceError, threshold)
	p.Error = errMsg
	return p
}

// MarshalJSON serializes a NaN value as null so the emitted line is always
// valid JSON. encoding/json refuses bare NaN.
func (p Payload) MarshalJSON() ([]byte, error) {
	vix := &p.Vix
	if math.IsNaN(p.Vix) {
		vix = nil
	}
	return json.Marshal(struct {
		Timestamp string   `json:"timestamp"`
		Vix       *float64 `json:"vix"`
		Threshold float64  `json:"threshold"`
		Exceeded  bool     `json:"exceeded"`
		Source    string   `json:"source"`
		Error     string   `json:"error,omitempty"`
	}{p.Timestamp, vix, p.Threshold, p.Exceeded, p.Source, p.Error})
}
