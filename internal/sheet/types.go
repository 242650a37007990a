// Package sheet builds stylesheets from breakpoint sheet files.
//
// A sheet lists rules, each naming a selector, a property and the breakpoints
// the property passes through. Build discovers sheets, generates every rule
// with fluidcss, verifies the emitted CSS and writes one combined stylesheet.
package sheet

import (
	"github.com/charmbracelet/log"
	"github.com/yacobolo/fluidcss"
)

// Sheet is a loaded breakpoint sheet
type Sheet struct {
	Path  string
	Media *string // Media type for generated queries, nil uses the build default
	Rules []Rule
}

// Rule is one fluid property on one selector
type Rule struct {
	Selector    string // "h1", ".hero__title"
	Property    string // "font-size"
	Breakpoints []fluidcss.Breakpoint
}

// BuildConfig holds build configuration
type BuildConfig struct {
	SourceDir  string   // "styles/fluid"
	Includes   []string // ["**/*.yaml", "**/*.toml"]
	OutputDir  string   // "web/static/css"
	OutputFile string   // "fluid.gen.css"
	MediaType  string   // Default media type, "" for bare min-width queries
	Comments   bool     // Keep the interpolation comment above each rule
	Verify     bool     // Lex emitted CSS and report problems
	DryRun     bool     // Build in memory only, do not write OutputFile
	Logger     *log.Logger
}

// BuildResult contains build stats
type BuildResult struct {
	FilesScanned   int
	FilesSkipped   int // Matched but gitignored
	RulesGenerated int
	OutputPath     string // Empty on dry runs
	CSS            string
	Issues         []Issue
	Diagnostics    []Diagnostic
	Warnings       []string
}

// Issue is a rule that could not be generated
type Issue struct {
	File     string
	Rule     int    // 1-based position in the sheet
	Selector string
	Property string
	Code     string // fluidcss.Reason code or IssueMissingSelector
	Text     string
	Index    int // Offending breakpoint (0-based), -1 if none
}

// Diagnostic is a problem found while lexing emitted CSS
type Diagnostic struct {
	File   string
	Line   int // 1-based
	Column int // 1-based
	Text   string
	Source string // The offending line
}

// IssueMissingSelector is the Issue code for rules without a selector.
const IssueMissingSelector = "missing-selector"
