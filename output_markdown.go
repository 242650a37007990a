package fluidcss

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes a generation result as a shareable Markdown snippet:
// a breakpoint table followed by the CSS in a fenced block.
func WriteMarkdown(w io.Writer, property string, breakpoints []Breakpoint, gen *Generation, failure *GenerationFailure) error {
	var b strings.Builder

	title := strings.TrimSpace(property)
	if title == "" {
		title = "(no property)"
	}
	fmt.Fprintf(&b, "## Fluid `%s`\n\n", title)

	if len(breakpoints) > 0 {
		b.WriteString("| # | Viewport | Value |\n")
		b.WriteString("|---:|---:|---:|\n")
		for i, bp := range breakpoints {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, markdownCell(bp.ViewportWidth), markdownCell(bp.ResultingValue))
		}
		b.WriteString("\n")
	}

	var code string
	if failure != nil {
		fmt.Fprintf(&b, "> **Not generated:** %s\n\n", failure.Error())
		code = failure.Reason.Placeholder()
	} else {
		code = gen.CSS()
	}

	b.WriteString("```css\n")
	b.WriteString(code)
	b.WriteString("\n```\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func markdownCell(v float64) string {
	if !isFinite(v) {
		return "_empty_"
	}
	return FormatNumber(v) + "px"
}
