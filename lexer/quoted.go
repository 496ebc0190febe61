package lexer

import "github.com/cero-lang/cero/report"

// eatQuotedSequence consumes bytes up to and including the matching
// closing quote, having already consumed the opening one. `\` toggles
// an escape flag so that an escaped quote does not close the literal; a
// bare `\\` flips the flag back off without escaping anything else. A
// newline before the literal closes reports MissingClosingQuote and
// ends the literal at the newline (without consuming it).
func (l *lexer) eatQuotedSequence(quote byte) {
	ignoreQuote := false
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if c == '\n' {
			l.report(report.MissingClosingQuote, l.pos)
			return
		}

		l.pos++

		switch {
		case c == '\\':
			ignoreQuote = !ignoreQuote
		case c == quote && !ignoreQuote:
			return
		case ignoreQuote:
			ignoreQuote = false
		}
	}
}
