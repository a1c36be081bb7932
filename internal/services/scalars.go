package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stringish accepts a JSON string, number or bool and keeps its text form.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*s = ""
		return nil
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	case b[0] == '{' || b[0] == '[':
		return fmt.Errorf("expected a scalar, got %s", b)
	default:
		*s = Stringish(b)
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

// Intish accepts a whole JSON number or a string holding one, e.g. 2, 2.0 or "2".
type Intish int

func (n *Intish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}
	v, err := parseWhole(raw)
	if err != nil {
		return err
	}
	*n = Intish(v)
	return nil
}

func parseWhole(raw string) (int, error) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := json.Number(raw).Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return int(f), nil
}
