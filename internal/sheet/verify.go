package sheet

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// nonFinite matches NaN and infinities as Go and JavaScript print them,
// with an optional unit.
var nonFinite = regexp.MustCompile(`^[-+]?(NaN|Inf|Infinity)([a-z]+|%)?$`)

// opener tracks an unclosed brace or parenthesis
type opener struct {
	char   byte
	offset int
}

// verifier maintains context while lexing emitted CSS
type verifier struct {
	content string
	stack   []opener
	diags   []Diagnostic
}

// Verify lexes css and reports unbalanced braces and parentheses, malformed
// strings or URLs, and numbers that rendered as NaN or Infinity.
func Verify(content string) []Diagnostic {
	v := &verifier{content: content}

	lexer := css.NewLexer(parse.NewInputString(content))
	offset := 0
	inValue := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			if err := lexer.Err(); err != nil && err != io.EOF {
				v.report(offset, "lexer error: %v", err)
			}
			break
		}

		switch tt {
		case css.BadStringToken:
			v.report(offset, "unterminated string")
		case css.BadURLToken:
			v.report(offset, "malformed url")
		case css.LeftBraceToken:
			v.stack = append(v.stack, opener{'{', offset})
		case css.LeftParenthesisToken, css.FunctionToken:
			// Function tokens include their opening parenthesis: "calc("
			v.stack = append(v.stack, opener{'(', offset + len(text) - 1})
		case css.RightBraceToken:
			v.close('{', '}', offset)
		case css.RightParenthesisToken:
			v.close('(', ')', offset)
		case css.ColonToken:
			inValue = true
		case css.SemicolonToken:
			inValue = false
		case css.IdentToken, css.DimensionToken:
			// Selectors like .NaNoBanner are not values
			if inValue && nonFinite.Match(text) {
				v.report(offset, "non-finite number %q", text)
			}
		}
		if tt == css.LeftBraceToken || tt == css.RightBraceToken {
			inValue = false
		}

		offset += len(text)
	}

	for _, o := range v.stack {
		v.report(o.offset, "unclosed %q", o.char)
	}

	return v.diags
}

func (v *verifier) close(open, closing byte, offset int) {
	if len(v.stack) == 0 {
		v.report(offset, "unexpected %q", closing)
		return
	}

	top := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	if top.char != open {
		line, col := position(v.content, top.offset)
		v.report(offset, "%q does not match %q at %d:%d", closing, top.char, line, col)
	}
}

func (v *verifier) report(offset int, format string, args ...interface{}) {
	line, col := position(v.content, offset)
	v.diags = append(v.diags, Diagnostic{
		Line:   line,
		Column: col,
		Text:   fmt.Sprintf(format, args...),
		Source: sourceLine(v.content, line),
	})
}

// position converts a byte offset to a 1-based line and column.
func position(content string, offset int) (int, int) {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return line, col
}

// sourceLine returns the 1-based line of content, without its newline.
func sourceLine(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
