package fluidcss

import (
	"fmt"
	"math"
	"strings"
)

// Reason identifies why a breakpoint sequence could not be turned into CSS.
// Reasons are listed in the order the checks run.
type Reason int

const (
	ReasonMissingProperty Reason = iota
	ReasonTooFewBreakpoints
	// ReasonIncomplete covers empty (NaN) and infinite fields. An infinite
	// viewport width lands here rather than under the negative or
	// non-integer reasons.
	ReasonIncomplete
	ReasonNegativeViewport
	ReasonUnordered
	ReasonNonIntegerViewport
)

type reasonInfo struct {
	code        string
	message     string
	placeholder string
}

var reasons = [...]reasonInfo{
	ReasonMissingProperty:    {"missing-property", "specify a property name", "/* Specify a property name. */"},
	ReasonTooFewBreakpoints:  {"too-few-breakpoints", "add more breakpoints", "/* Add more breakpoints. */"},
	ReasonIncomplete:         {"incomplete", "fill in all fields", "/* Fill in all fields. */"},
	ReasonNegativeViewport:   {"negative-viewport", "viewport values must be positive", "/* Make sure viewport values are positive. */"},
	ReasonUnordered:          {"unordered", "viewport values must be in ascending order", "/* Make sure viewport values are in ascending order. */"},
	ReasonNonIntegerViewport: {"non-integer-viewport", "viewport values must be integers", "/* Viewport values must be integers. */"},
}

func (r Reason) info() reasonInfo {
	if r < 0 || int(r) >= len(reasons) {
		return reasonInfo{code: "unknown", message: fmt.Sprintf("Reason(%d)", int(r)), placeholder: "/* Unknown error. */"}
	}
	return reasons[r]
}

// String returns a short human-readable description.
func (r Reason) String() string { return r.info().message }

// Code returns a stable kebab-case identifier for machine-readable output.
func (r Reason) Code() string { return r.info().code }

// Placeholder returns the CSS comment shown in place of generated code.
func (r Reason) Placeholder() string { return r.info().placeholder }

// GenerationFailure is returned by Generate when validation fails.
type GenerationFailure struct {
	Reason Reason
	Index  int // First offending breakpoint, -1 when the failure is not about one breakpoint
}

func (f *GenerationFailure) Error() string {
	if f.Index >= 0 {
		return fmt.Sprintf("breakpoint %d: %s", f.Index+1, f.Reason)
	}
	return f.Reason.String()
}

func fail(reason Reason, index int) *GenerationFailure {
	return &GenerationFailure{Reason: reason, Index: index}
}

// Options controls how a Generation is rendered.
type Options struct {
	// MediaType prefixes media queries ("screen" gives
	// "@media screen and (min-width: ...)"). Empty omits it.
	MediaType string
	// OmitComment drops the explanatory header comment.
	OmitComment bool
}

// DefaultOptions returns the options Generate uses.
func DefaultOptions() Options {
	return Options{MediaType: "screen"}
}

// Rule is one generated declaration, covering the segment between
// breakpoints Segment-1 and Segment.
type Rule struct {
	Segment  int
	Clamp    ClampMode
	Media    bool    // Gated by a min-width media query
	MinWidth float64 // Media query threshold, the segment's starting viewport width
	Value    string
}

// Declaration renders "property: value;".
func (r Rule) Declaration(property string) string {
	return fmt.Sprintf("%s: %s;", property, r.Value)
}

// MediaQuery renders the rule's media query prelude, or "" for ungated rules.
func (r Rule) MediaQuery(mediaType string) string {
	if !r.Media {
		return ""
	}
	if mediaType == "" {
		return fmt.Sprintf("@media (min-width: %spx)", FormatNumber(r.MinWidth))
	}
	return fmt.Sprintf("@media %s and (min-width: %spx)", mediaType, FormatNumber(r.MinWidth))
}

// Generation is the result of a successful Generate call.
type Generation struct {
	Property    string
	Breakpoints []Breakpoint
	Rules       []Rule

	options Options
}

// Generate validates the breakpoints and interpolates every consecutive pair.
// Validation failures are returned as *GenerationFailure.
func Generate(property string, breakpoints []Breakpoint) (*Generation, error) {
	return GenerateWithOptions(property, breakpoints, DefaultOptions())
}

// GenerateWithOptions is Generate with explicit rendering options.
func GenerateWithOptions(property string, breakpoints []Breakpoint, opts Options) (*Generation, error) {
	property = strings.TrimSpace(property)
	if err := validate(property, breakpoints); err != nil {
		return nil, err
	}

	gen := &Generation{
		Property:    property,
		Breakpoints: append([]Breakpoint(nil), breakpoints...),
		Rules:       make([]Rule, 0, len(breakpoints)-1),
		options:     opts,
	}

	last := len(breakpoints) - 1
	for i := 1; i <= last; i++ {
		from, to := breakpoints[i-1], breakpoints[i]

		rule := Rule{Segment: i, MinWidth: from.ViewportWidth}
		switch {
		case last == 1:
			// A single segment spans the whole viewport range.
			rule.Clamp = ClampBoth
		case i == 1:
			rule.Clamp = ClampFrom
		case i == last:
			rule.Clamp, rule.Media = ClampTo, true
		default:
			rule.Clamp, rule.Media = ClampNone, true
		}

		value, err := Lerp(from, to, rule.Clamp)
		if err != nil {
			// Unreachable after validate.
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		rule.Value = value
		gen.Rules = append(gen.Rules, rule)
	}

	return gen, nil
}

// validate runs the checks in a fixed order; the first failure wins.
func validate(property string, breakpoints []Breakpoint) error {
	if property == "" {
		return fail(ReasonMissingProperty, -1)
	}

	if len(breakpoints) < 2 {
		return fail(ReasonTooFewBreakpoints, -1)
	}

	for i, bp := range breakpoints {
		if !bp.finite() {
			return fail(ReasonIncomplete, i)
		}
	}

	for i, bp := range breakpoints {
		if bp.ViewportWidth < 0 {
			return fail(ReasonNegativeViewport, i)
		}
	}

	previous := -1.0
	for i, bp := range breakpoints {
		if bp.ViewportWidth <= previous {
			return fail(ReasonUnordered, i)
		}
		previous = bp.ViewportWidth
	}

	for i, bp := range breakpoints {
		if bp.ViewportWidth != math.Trunc(bp.ViewportWidth) {
			return fail(ReasonNonIntegerViewport, i)
		}
	}

	return nil
}

// Options returns the rendering options the generation was built with.
func (g *Generation) Options() Options {
	return g.options
}

// Comment renders the header comment listing every breakpoint.
func (g *Generation) Comment() string {
	first, last := g.Breakpoints[0], g.Breakpoints[len(g.Breakpoints)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "/* Interpolates %s from %spx to %spx\n", g.Property,
		FormatNumber(first.ResultingValue), FormatNumber(last.ResultingValue))
	b.WriteString(" * based on the following steps:")
	for _, bp := range g.Breakpoints {
		fmt.Fprintf(&b, "\n * %s viewport width", bp)
	}
	b.WriteString("\n */")
	return b.String()
}

// CSS renders the header comment followed by one declaration or media block
// per segment.
func (g *Generation) CSS() string {
	parts := make([]string, 0, len(g.Rules)+1)
	if !g.options.OmitComment {
		parts = append(parts, g.Comment())
	}

	for _, rule := range g.Rules {
		decl := rule.Declaration(g.Property)
		if rule.Media {
			parts = append(parts, fmt.Sprintf("%s {\n  %s\n}", rule.MediaQuery(g.options.MediaType), decl))
		} else {
			parts = append(parts, decl)
		}
	}

	return strings.Join(parts, "\n")
}

// Code returns the generated CSS for the breakpoints, or a comment
// placeholder describing the first validation failure. It never fails.
func Code(property string, breakpoints []Breakpoint) string {
	return CodeWithOptions(property, breakpoints, DefaultOptions())
}

// CodeWithOptions is Code with explicit rendering options.
func CodeWithOptions(property string, breakpoints []Breakpoint, opts Options) string {
	gen, err := GenerateWithOptions(property, breakpoints, opts)
	if err != nil {
		return placeholderFor(err)
	}
	return gen.CSS()
}

func placeholderFor(err error) string {
	if failure, ok := err.(*GenerationFailure); ok {
		return failure.Reason.Placeholder()
	}
	return fmt.Sprintf("/* %s */", err)
}
