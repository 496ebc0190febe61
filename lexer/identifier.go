package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/token"
)

// lexWord consumes the rest of an ASCII-or-UTF-8 word starting at
// begin (whose first byte is already consumed) and classifies it
// as a keyword or a plain Name.
func (l *lexer) lexWord(begin int) token.Kind {
	l.eatWordRest()
	lexeme := l.text[begin:l.pos]
	if kind, ok := token.LookupKeyword(string(lexeme)); ok {
		return kind
	}
	return token.Name
}

// eatWordRest consumes ASCII word characters and UTF-8 XID-continue
// code points until neither matches.
func (l *lexer) eatWordRest() {
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if c < utf8.RuneSelf {
			if !isAsciiWordChar(c) {
				return
			}
			l.pos++
			continue
		}
		if !l.eatMultibyte(isXIDContinue) {
			return
		}
	}
}

// eatUnicodeToken handles an identifier that starts with a non-ASCII
// byte: decode it as UTF-8 and require XID-start, then continue lexing
// the rest of the word on success.
func (l *lexer) eatUnicodeToken(begin int) {
	if l.eatMultibyteAt(begin, isXIDStart) {
		l.eatWordRest()
	}
}

// eatMultibyte decodes the UTF-8 code point starting at l.pos (which
// must be >= utf8.RuneSelf), validates it with predicate, and advances
// past it on success. It mirrors the original lexer's leading-byte
// decode: the number of continuation bytes to consume is derived from
// the count of leading 1-bits in the first byte (2..4), not from a
// UTF-8 library, so that an invalid encoding is caught the same way.
func (l *lexer) eatMultibyte(predicate func(rune) bool) bool {
	return l.eatMultibyteAt(l.pos, predicate)
}

func (l *lexer) eatMultibyteAt(begin int, predicate func(rune) bool) bool {
	leading := l.text[begin]
	leadingOnes := countLeadingOnes(leading)

	if leadingOnes < 2 || leadingOnes > 4 || begin+leadingOnes > len(l.text) {
		l.report(report.UnexpectedCharacter, begin, uint32(leading))
		l.pos = begin + 1
		return false
	}

	r, size := utf8.DecodeRune(l.text[begin : begin+leadingOnes])
	if r == utf8.RuneError || size != leadingOnes || !predicate(r) {
		l.report(report.UnexpectedCharacter, begin, uint32(r))
		l.pos = begin + 1
		return false
	}

	l.pos = begin + leadingOnes
	return true
}

// countLeadingOnes counts the number of consecutive 1-bits starting
// from the most significant bit of an encoded UTF-8 leading byte.
func countLeadingOnes(b byte) int {
	n := 0
	for mask := byte(0x80); b&mask != 0; mask >>= 1 {
		n++
	}
	return n
}

// isXIDStart and isXIDContinue approximate Unicode's XID_Start/
// XID_Continue properties with the standard unicode tables, which have no
// ready-made XID table: a start is any unicode.IsLetter rune, and a
// continuation is additionally any unicode.IsDigit rune or any nonspacing
// (Mn) or spacing combining (Mc) mark.
func isXIDStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isXIDContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
