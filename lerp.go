package fluidcss

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroSpan is returned when both breakpoints share a viewport width, which
	// leaves the slope undefined.
	ErrZeroSpan = errors.New("breakpoints share the same viewport width")

	// ErrNonFinite is returned when a breakpoint field is NaN or infinite.
	ErrNonFinite = errors.New("breakpoint values must be finite numbers")
)

// Line is the linear mapping value = N + M*viewport through two breakpoints.
// M is the change in value per pixel of viewport width.
type Line struct {
	M float64
	N float64
}

// At evaluates the line at a viewport width.
func (l Line) At(viewport float64) float64 {
	return l.N + l.M*viewport
}

// Segment computes the line through source and target.
func Segment(source, target Breakpoint) (Line, error) {
	if !source.finite() || !target.finite() {
		return Line{}, ErrNonFinite
	}

	dValue := target.ResultingValue - source.ResultingValue
	dViewport := target.ViewportWidth - source.ViewportWidth
	if dViewport == 0 {
		return Line{}, fmt.Errorf("%w (%spx)", ErrZeroSpan, FormatNumber(source.ViewportWidth))
	}

	m := dValue / dViewport
	return Line{M: m, N: source.ResultingValue - source.ViewportWidth*m}, nil
}

// Formula renders the unclamped expression "<n>px + <m*100>vw".
func (l Line) Formula() string {
	return fmt.Sprintf("%spx + %svw", FormatRounded(l.N), FormatRounded(l.M*100))
}

// Lerp returns a CSS value that interpolates linearly from source to target.
//
// Source is treated as the lower end of the viewport range. The mode decides
// which ends are bounded:
//   - ClampNone wraps the formula in calc().
//   - ClampBoth bounds it on both sides with clamp().
//   - ClampFrom and ClampTo bound a single side with max() or min(), picked
//     from the segment's direction.
//
// Constant segments always use calc().
func Lerp(source, target Breakpoint, mode ClampMode) (string, error) {
	line, err := Segment(source, target)
	if err != nil {
		return "", err
	}

	lo := FormatNumber(math.Min(source.ResultingValue, target.ResultingValue))
	hi := FormatNumber(math.Max(source.ResultingValue, target.ResultingValue))
	formula := line.Formula()
	direction := DirectionOf(source, target)

	switch {
	case direction == Constant || mode == ClampNone:
		return fmt.Sprintf("calc(%s)", formula), nil
	case mode == ClampBoth:
		return fmt.Sprintf("clamp(%spx, %s, %spx)", lo, formula, hi), nil
	case (mode == ClampFrom && direction == Increasing) || (mode == ClampTo && direction == Decreasing):
		return fmt.Sprintf("max(%spx, %s)", lo, formula), nil
	default:
		return fmt.Sprintf("min(%spx, %s)", hi, formula), nil
	}
}
