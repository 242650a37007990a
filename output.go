package fluidcss

import (
	"errors"
	"fmt"
	"io"
)

// OutputFormat represents how a generation result is written.
type OutputFormat string

const (
	// OutputCSS writes the generated CSS, or the placeholder comment on failure.
	OutputCSS OutputFormat = "css"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown writes a breakpoint table and a fenced css block.
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps a flag value to an OutputFormat.
// Unknown values fall back to OutputCSS.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputCSS
	}
}

// WriteOutput generates CSS for the breakpoints and writes it in the given
// format. A validation failure is part of the output, not an error; only
// write errors are returned.
func WriteOutput(w io.Writer, property string, breakpoints []Breakpoint, format OutputFormat, opts Options) error {
	gen, err := GenerateWithOptions(property, breakpoints, opts)

	var failure *GenerationFailure
	if err != nil && !errors.As(err, &failure) {
		return err
	}

	switch format {
	case OutputJSON:
		return WriteJSON(w, property, breakpoints, gen, failure)
	case OutputMarkdown:
		return WriteMarkdown(w, property, breakpoints, gen, failure)
	default:
		var code string
		if failure != nil {
			code = failure.Reason.Placeholder()
		} else {
			code = gen.CSS()
		}
		_, err := fmt.Fprintln(w, code)
		return err
	}
}
