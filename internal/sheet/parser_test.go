package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/fluidcss"
)

func TestParseBreakpoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []fluidcss.Breakpoint
		wantErr string
	}{
		{
			name:  "comma separated",
			input: "0:10,100:50",
			want:  []fluidcss.Breakpoint{{ViewportWidth: 0, ResultingValue: 10}, {ViewportWidth: 100, ResultingValue: 50}},
		},
		{
			name:  "whitespace and px suffixes",
			input: "  320px:16px\n1280:24 ",
			want:  []fluidcss.Breakpoint{{ViewportWidth: 320, ResultingValue: 16}, {ViewportWidth: 1280, ResultingValue: 24}},
		},
		{
			name:  "fractions and negatives",
			input: "50.5:-2.25",
			want:  []fluidcss.Breakpoint{{ViewportWidth: 50.5, ResultingValue: -2.25}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []fluidcss.Breakpoint{},
		},
		{
			name:    "missing separator",
			input:   "320",
			wantErr: "want viewport:value",
		},
		{
			name:    "too many separators",
			input:   "1:2:3",
			wantErr: "want viewport:value",
		},
		{
			name:    "not a number",
			input:   "abc:10",
			wantErr: `invalid number "abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBreakpoints(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBreakpoint_EmptyFieldsAreNaN(t *testing.T) {
	bp, err := ParseBreakpoint("320:")
	require.NoError(t, err)
	assert.InDelta(t, 320.0, bp.ViewportWidth, 0)
	assert.True(t, math.IsNaN(bp.ResultingValue))

	// The generator reports the gap instead of the parser.
	_, err = fluidcss.Generate("width", []fluidcss.Breakpoint{bp, {ViewportWidth: 640, ResultingValue: 1}})
	var failure *fluidcss.GenerationFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, fluidcss.ReasonIncomplete, failure.Reason)
}

func TestBreakpointFromValue(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    fluidcss.Breakpoint
		wantErr bool
	}{
		{"yaml pair", []interface{}{320, 16}, fluidcss.Breakpoint{ViewportWidth: 320, ResultingValue: 16}, false},
		{"toml pair", []interface{}{int64(320), 16.5}, fluidcss.Breakpoint{ViewportWidth: 320, ResultingValue: 16.5}, false},
		{"map", map[string]interface{}{"viewport": 768, "value": "20px"}, fluidcss.Breakpoint{ViewportWidth: 768, ResultingValue: 20}, false},
		{"string", "1024:22", fluidcss.Breakpoint{ViewportWidth: 1024, ResultingValue: 22}, false},
		{"short pair", []interface{}{320}, fluidcss.Breakpoint{}, true},
		{"bool element", []interface{}{true, 1}, fluidcss.Breakpoint{}, true},
		{"scalar", 42, fluidcss.Breakpoint{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := breakpointFromValue(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBreakpointFromValue_MissingMapField(t *testing.T) {
	got, err := breakpointFromValue(map[string]interface{}{"viewport": 320})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.ResultingValue))
}
