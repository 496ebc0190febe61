package lexer

import "github.com/cero-lang/cero/token"

// lexNumber lexes a numeric literal starting at the already-consumed
// digit c. A leading 0 followed by x/b/o selects a specific int base;
// otherwise it is decimal, with an optional float suffix.
//
// Note that bin and oct literals are lexed with the plain decimal-digit
// predicate, not base-specific ones: digit-range validation (rejecting
// an `8` in an octal literal, say) is left to a later compilation phase
// that is out of scope here, so the lexer accepts any decimal digit
// after a 0b/0o prefix.
func (l *lexer) lexNumber(c byte) token.Kind {
	if c == '0' {
		backup := l.pos
		switch l.peekByte(0) {
		case 'x':
			l.pos++
			l.eatNumberLiteral(isHexDigit)
			return token.HexIntLiteral
		case 'b':
			l.pos++
			l.eatNumberLiteral(isDecDigit)
			return token.BinIntLiteral
		case 'o':
			l.pos++
			l.eatNumberLiteral(isDecDigit)
			return token.OctIntLiteral
		}
		l.pos = backup
	}

	l.eatNumberLiteral(isDecDigit)
	posAtIntEnd := l.pos

	for l.pos < len(l.text) && isWhitespaceByte(l.text[l.pos]) {
		l.pos++
	}
	posAtDot := l.pos

	if l.pos < len(l.text) && l.text[l.pos] == '.' {
		l.pos++
		if l.eatDecimalNumber() {
			return token.FloatLiteral
		}
		l.pos = posAtDot // no fractional digits: back off before the dot
	} else {
		l.pos = posAtIntEnd
	}

	return token.DecIntLiteral
}

// eatNumberLiteral consumes a run of digits matching predicate, allowing
// interior whitespace between digits to be silently absorbed: it only
// commits to the position after whitespace once another matching digit
// is actually found, via a lookahead cursor that the real cursor only
// catches up to on a match.
func (l *lexer) eatNumberLiteral(predicate func(byte) bool) {
	lookahead := l.pos

	for lookahead < len(l.text) {
		c := l.text[lookahead]
		switch {
		case predicate(c):
			lookahead++
			l.pos = lookahead
		case isWhitespaceByte(c):
			lookahead++
		default:
			return
		}
	}
}

// eatDecimalNumber is eatNumberLiteral specialized to report whether it
// matched at least one digit, for the float-suffix lookahead.
func (l *lexer) eatDecimalNumber() bool {
	matched := false
	lookahead := l.pos

	for lookahead < len(l.text) {
		c := l.text[lookahead]
		switch {
		case isDecDigit(c):
			lookahead++
			l.pos = lookahead
			matched = true
		case isWhitespaceByte(c):
			lookahead++
		default:
			return matched
		}
	}
	return matched
}
