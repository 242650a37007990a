package sheet

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting build results
type Reporter struct {
	w          io.Writer
	useColors  bool
	printLines bool
}

// NewReporter creates a new reporter. Colors are used when forced or when
// stdout is a terminal.
func NewReporter(w io.Writer, forceColors, printLines bool) *Reporter {
	return &Reporter{
		w:          w,
		useColors:  shouldUseColors(forceColors),
		printLines: printLines,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs rules that could not be generated, one per line:
// file:rule N: selector { property }: message (code)
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort a copy; the caller's result keeps build order.
	issues = append([]Issue(nil), issues...)
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Rule < issues[j].Rule
	})

	for _, issue := range issues {
		location := fmt.Sprintf("%s:rule %d:", issue.File, issue.Rule)

		target := issue.Selector
		if issue.Property != "" {
			target = strings.TrimSpace(fmt.Sprintf("%s { %s }", issue.Selector, issue.Property))
		}
		if target != "" {
			target += ": "
		}

		fmt.Fprintf(r.w, "%s %s%s%s\n",
			RenderStyle(StyleLocation, location, r.useColors),
			target,
			RenderStyle(StyleError, issue.Text, r.useColors),
			RenderStyle(StyleMuted, fmt.Sprintf(" (%s)", issue.Code), r.useColors))
	}
}

// PrintDiagnostics outputs lexer diagnostics with the offending line and a
// caret under the reported column.
func (r *Reporter) PrintDiagnostics(diags []Diagnostic) {
	for _, d := range diags {
		location := fmt.Sprintf("%s:%d:%d:", d.File, d.Line, d.Column)
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleLocation, location, r.useColors), d.Text)

		if r.printLines && d.Source != "" {
			fmt.Fprintf(r.w, "\t%s\n", d.Source)
			caret := r.buildCaretIndicator(d.Source, d.Column)
			fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleCaret, caret, r.useColors))
		}
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tabbed source.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	// Extract the prefix up to the column (0-based index = column - 1)
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintWarnings outputs sheets that could not be loaded
func (r *Reporter) PrintWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCaret, "warning:", r.useColors), w)
	}
}

// PrintSummary outputs rule and problem counts
func (r *Reporter) PrintSummary(result BuildResult) {
	problems := len(result.Issues) + len(result.Diagnostics)

	fmt.Fprintln(r.w, "")
	summary := fmt.Sprintf("%s from %s",
		pluralizeCount(result.RulesGenerated, "rule", "rules"),
		pluralizeCount(result.FilesScanned, "sheet", "sheets"))
	if result.FilesSkipped > 0 {
		summary += fmt.Sprintf(" (%d ignored)", result.FilesSkipped)
	}

	if problems == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleSuccess, summary, r.useColors))
	} else {
		fmt.Fprintln(r.w, summary)
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			RenderStyle(StyleError, pluralizeCount(problems, "problem", "problems"), r.useColors),
			pluralizeCount(len(result.Issues), "failed rule", "failed rules"),
			pluralizeCount(len(result.Diagnostics), "diagnostic", "diagnostics"))
	}

	if result.OutputPath != "" {
		fmt.Fprintf(r.w, "Wrote %s\n", result.OutputPath)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
