package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BuildingID identifies a building. Clients send it either as a JSON number or
// as a numeric string; zero means "not assigned".
type BuildingID int64

// ParseBuildingID coerces a raw identifier to a BuildingID. Empty input yields
// 0 with ok=true so callers can tell "absent" apart from "not a number".
func ParseBuildingID(raw string) (BuildingID, bool) {
	n, ok := parseWholeNumber(raw)
	return BuildingID(n), ok
}

// parseWholeNumber reads a decimal integer, also accepting float notation for
// whole values ("3.0"). Blank input is 0.
func parseWholeNumber(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// jsonNumberText returns the text of a JSON number or string value, with
// null mapped to "".
func jsonNumberText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] != '"' {
		return string(data), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

func (id BuildingID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the id is unset.
func (id BuildingID) IsZero() bool { return id == 0 }

// UnmarshalJSON accepts numbers, numeric strings and null.
func (id *BuildingID) UnmarshalJSON(data []byte) error {
	raw, err := jsonNumberText(data)
	if err != nil {
		return err
	}
	parsed, ok := ParseBuildingID(raw)
	if !ok {
		return fmt.Errorf("invalid building id %q", raw)
	}
	*id = parsed
	return nil
}

// Building is a single record of the building directory.
type Building struct {
	ID             BuildingID `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Representative string     `json:"representative"`
	Phone          string     `json:"phone"`
	CCCD           string     `json:"cccd"`
	CCCDDate       string     `json:"cccdDate"`
	Lat            *float64   `json:"lat,omitempty"`
	Lng            *float64   `json:"lng,omitempty"`
}

// Coordinate returns a pointer to v, for building literals.
func Coordinate(v float64) *float64 { return &v }
