package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/yacobolo/fluidcss"
)

// ParseBreakpoints parses "viewport:value" pairs separated by commas or
// whitespace, e.g. "320:16, 1280:24". Empty fields become NaN so the generator
// reports them as incomplete instead of failing here.
func ParseBreakpoints(s string) ([]fluidcss.Breakpoint, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	breakpoints := make([]fluidcss.Breakpoint, 0, len(tokens))
	for _, token := range tokens {
		bp, err := ParseBreakpoint(token)
		if err != nil {
			return nil, err
		}
		breakpoints = append(breakpoints, bp)
	}
	return breakpoints, nil
}

// ParseBreakpoint parses a single "viewport:value" pair. A "px" suffix is
// allowed on either side.
func ParseBreakpoint(token string) (fluidcss.Breakpoint, error) {
	viewport, value, ok := strings.Cut(token, ":")
	if !ok || strings.Contains(value, ":") {
		return fluidcss.Breakpoint{}, fmt.Errorf("breakpoint %q: want viewport:value", token)
	}

	vw, err := parseNumber(viewport)
	if err != nil {
		return fluidcss.Breakpoint{}, fmt.Errorf("breakpoint %q viewport: %w", token, err)
	}
	rv, err := parseNumber(value)
	if err != nil {
		return fluidcss.Breakpoint{}, fmt.Errorf("breakpoint %q value: %w", token, err)
	}

	return fluidcss.Breakpoint{ViewportWidth: vw, ResultingValue: rv}, nil
}

// parseNumber reads a pixel number, "" meaning not filled in.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// breakpointFromValue converts a decoded sheet entry into a Breakpoint.
// Entries may be a [viewport, value] pair, a {viewport, value} map or a
// "viewport:value" string.
func breakpointFromValue(v interface{}) (fluidcss.Breakpoint, error) {
	switch entry := v.(type) {
	case string:
		return ParseBreakpoint(entry)

	case []interface{}:
		if len(entry) != 2 {
			return fluidcss.Breakpoint{}, fmt.Errorf("breakpoint pair must have 2 elements, got %d", len(entry))
		}
		vw, err := toNumber(entry[0])
		if err != nil {
			return fluidcss.Breakpoint{}, fmt.Errorf("viewport: %w", err)
		}
		rv, err := toNumber(entry[1])
		if err != nil {
			return fluidcss.Breakpoint{}, fmt.Errorf("value: %w", err)
		}
		return fluidcss.Breakpoint{ViewportWidth: vw, ResultingValue: rv}, nil

	case map[string]interface{}:
		vw, err := toNumber(entry["viewport"])
		if err != nil {
			return fluidcss.Breakpoint{}, fmt.Errorf("viewport: %w", err)
		}
		rv, err := toNumber(entry["value"])
		if err != nil {
			return fluidcss.Breakpoint{}, fmt.Errorf("value: %w", err)
		}
		return fluidcss.Breakpoint{ViewportWidth: vw, ResultingValue: rv}, nil

	default:
		return fluidcss.Breakpoint{}, fmt.Errorf("unsupported breakpoint %v (%T)", v, v)
	}
}

// toNumber converts YAML and TOML scalars to float64. A missing field is NaN.
func toNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		return parseNumber(n)
	default:
		return 0, fmt.Errorf("not a number: %v (%T)", v, v)
	}
}
