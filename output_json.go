package fluidcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string           `json:"version"`
	Timestamp   string           `json:"timestamp"`
	Property    string           `json:"property"`
	OK          bool             `json:"ok"`
	CSS         string           `json:"css"`
	Failure     *JSONFailure     `json:"failure,omitempty"`
	Breakpoints []JSONBreakpoint `json:"breakpoints"`
	Rules       []JSONRule       `json:"rules"`
}

// JSONFailure describes why generation failed
type JSONFailure struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Index   *int   `json:"index,omitempty"` // Offending breakpoint (0-based)
}

// JSONBreakpoint is a breakpoint as entered; non-finite fields are null
type JSONBreakpoint struct {
	Viewport *float64 `json:"viewport"`
	Value    *float64 `json:"value"`
}

// JSONRule is one generated declaration
type JSONRule struct {
	Segment int    `json:"segment"`
	Clamp   string `json:"clamp"`
	Media   string `json:"media,omitempty"`
	Value   string `json:"value"`
}

// WriteJSON writes a generation result as JSON. Exactly one of gen and
// failure is expected to be non-nil.
func WriteJSON(w io.Writer, property string, breakpoints []Breakpoint, gen *Generation, failure *GenerationFailure) error {
	output := buildJSONOutput(property, breakpoints, gen, failure)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a generation result to JSONOutput
func buildJSONOutput(property string, breakpoints []Breakpoint, gen *Generation, failure *GenerationFailure) JSONOutput {
	jsonBreakpoints := make([]JSONBreakpoint, len(breakpoints))
	for i, bp := range breakpoints {
		jsonBreakpoints[i] = JSONBreakpoint{
			Viewport: finitePtr(bp.ViewportWidth),
			Value:    finitePtr(bp.ResultingValue),
		}
	}

	output := JSONOutput{
		Version:     "1.0",
		Timestamp:   time.Now().Format(time.RFC3339),
		Property:    property,
		Breakpoints: jsonBreakpoints,
		Rules:       []JSONRule{},
	}

	if failure != nil {
		output.CSS = failure.Reason.Placeholder()
		output.Failure = &JSONFailure{
			Reason:  failure.Reason.Code(),
			Message: failure.Reason.String(),
		}
		if failure.Index >= 0 {
			index := failure.Index
			output.Failure.Index = &index
		}
		return output
	}

	output.OK = true
	output.Property = gen.Property
	output.CSS = gen.CSS()
	for _, rule := range gen.Rules {
		output.Rules = append(output.Rules, JSONRule{
			Segment: rule.Segment,
			Clamp:   rule.Clamp.String(),
			Media:   rule.MediaQuery(gen.options.MediaType),
			Value:   rule.Value,
		})
	}
	return output
}

func finitePtr(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}
