package fluidcss

import (
	"fmt"
	"math"
	"strings"
)

// Breakpoint is a viewport width, in CSS pixels, paired with the value the
// property takes at that width.
type Breakpoint struct {
	ViewportWidth  float64 `json:"viewport"`
	ResultingValue float64 `json:"value"`
}

// String formats the breakpoint as "<value>px at <viewport>px".
func (b Breakpoint) String() string {
	return fmt.Sprintf("%spx at %spx", FormatNumber(b.ResultingValue), FormatNumber(b.ViewportWidth))
}

func (b Breakpoint) finite() bool {
	return isFinite(b.ViewportWidth) && isFinite(b.ResultingValue)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClampMode controls which ends of a segment are held constant outside the
// segment's viewport range.
type ClampMode int

const (
	// ClampNone lets the value keep scaling on both sides.
	ClampNone ClampMode = iota
	// ClampFrom prevents the value from scaling before the first breakpoint.
	ClampFrom
	// ClampTo prevents the value from scaling past the second breakpoint.
	ClampTo
	// ClampBoth combines ClampFrom and ClampTo.
	ClampBoth
)

var clampModeNames = [...]string{
	ClampNone: "none",
	ClampFrom: "from",
	ClampTo:   "to",
	ClampBoth: "both",
}

func (m ClampMode) String() string {
	if m < 0 || int(m) >= len(clampModeNames) {
		return fmt.Sprintf("ClampMode(%d)", int(m))
	}
	return clampModeNames[m]
}

// ParseClampMode converts "none", "from", "to" or "both" to a ClampMode.
// The empty string means ClampNone.
func ParseClampMode(s string) (ClampMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ClampNone, nil
	case "from":
		return ClampFrom, nil
	case "to":
		return ClampTo, nil
	case "both":
		return ClampBoth, nil
	default:
		return ClampNone, fmt.Errorf("unknown clamp mode %q (want none|from|to|both)", s)
	}
}

// Direction describes how the resulting value changes across a segment.
type Direction int

const (
	Constant Direction = iota
	Increasing
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "constant"
	}
}

// DirectionOf classifies the segment from source to target by the sign of
// the change in resulting value.
func DirectionOf(source, target Breakpoint) Direction {
	d := target.ResultingValue - source.ResultingValue
	switch {
	case d == 0:
		return Constant
	case d > 0:
		return Increasing
	default:
		return Decreasing
	}
}
