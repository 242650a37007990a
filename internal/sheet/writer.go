package sheet

import (
	"fmt"
	"strings"

	"github.com/yacobolo/fluidcss"
)

// Banner opens every generated stylesheet.
const Banner = "/* Code generated by fluidcss. DO NOT EDIT. */"

// RenderRule renders a generation as standalone CSS for selector. Ungated
// declarations go into a plain style rule; each media-gated declaration gets
// its own media block wrapping the selector, so no CSS nesting is needed.
func RenderRule(selector string, gen *fluidcss.Generation) string {
	opts := gen.Options()
	blocks := make([]string, 0, len(gen.Rules)+1)

	if !opts.OmitComment {
		blocks = append(blocks, gen.Comment())
	}

	for _, rule := range gen.Rules {
		decl := rule.Declaration(gen.Property)
		if !rule.Media {
			blocks = append(blocks, fmt.Sprintf("%s {\n  %s\n}", selector, decl))
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s {\n  %s {\n    %s\n  }\n}",
			rule.MediaQuery(opts.MediaType), selector, decl))
	}

	return strings.Join(blocks, "\n")
}

// renderStylesheet joins per-sheet sections under the banner. Each section
// starts with a comment naming its source file.
func renderStylesheet(sections []section) string {
	var b strings.Builder
	b.WriteString(Banner)
	b.WriteString("\n")

	for _, s := range sections {
		if len(s.blocks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n/* source: %s */\n", s.path)
		b.WriteString(strings.Join(s.blocks, "\n\n"))
		b.WriteString("\n")
	}

	return b.String()
}

type section struct {
	path   string
	blocks []string
}
