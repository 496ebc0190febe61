package lexer

import "github.com/cero-lang/cero/report"

// eatLineComment consumes up to (but not including) the closing
// newline, having already consumed the opening `//`.
func (l *lexer) eatLineComment() {
	for l.pos < len(l.text) && l.text[l.pos] != '\n' {
		l.pos++
	}
}

// eatBlockComment consumes a nested block comment, having already
// consumed the opening `/*`, tracking nesting depth so that `/* /* */
// */` closes only once its outer `*/` is reached. begin is the offset
// of the comment's opening `/`, used to locate an unterminated-comment
// diagnostic.
func (l *lexer) eatBlockComment(begin int) {
	depth := 1
	for l.pos < len(l.text) {
		switch {
		case l.match('*'):
			if l.match('/') {
				depth--
				if depth == 0 {
					return
				}
			}
		case l.match('/'):
			if l.match('*') {
				depth++
			}
		default:
			l.pos++
		}
	}

	l.report(report.UnterminatedBlockComment, begin)
}
