package pudo

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/terminal"
)

// terminalRecord is one element of GET /lockers-data.
type terminalRecord struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Place   struct {
		Town string `json:"town"`
	} `json:"place"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

// coordinate accepts a JSON number, a numeric string or null.
type coordinate struct {
	value float64
	valid bool
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = coordinate{}
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*c = coordinate{}
		return nil //nolint:nilerr // unusable coordinates are dropped, not fatal
	}
	*c = coordinate{value: v, valid: true}
	return nil
}

// toTerminals drops records without a code; coordinates out of range are
// treated as missing.
func toTerminals(records []terminalRecord) []terminal.Terminal {
	result := make([]terminal.Terminal, 0, len(records))
	for _, r := range records {
		var location kernel.GeoPoint
		if r.Latitude.valid && r.Longitude.valid {
			if p, err := kernel.NewGeoPoint(r.Latitude.value, r.Longitude.value); err == nil {
				location = p
			}
		}

		t, err := terminal.NewTerminal(r.Code, r.Name, r.Address, r.Place.Town, location)
		if err != nil {
			continue
		}
		result = append(result, t)
	}
	return result
}
