// Package lexer turns Cero source text into a token.Stream.
package lexer

import (
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/source"
	"github.com/cero-lang/cero/token"
)

// Lex scans src completely and returns the resulting token stream,
// reporting any lexical errors to rep. The returned stream always ends
// with an EndOfFile token.
func Lex(src *source.Source, rep report.Reporter) *token.Stream {
	l := &lexer{
		src:    src,
		rep:    rep,
		text:   src.Text(),
		stream: token.NewStream(src.Text()),
	}
	l.run()
	return l.stream
}

type lexer struct {
	src    *source.Source
	rep    report.Reporter
	text   []byte
	pos    int
	stream *token.Stream
}

func (l *lexer) run() {
	if l.src.TooLarge() {
		l.report(report.SourceInputTooLarge, 0, source.MaxLength)
		l.stream.Push(token.EndOfFile, 0)
		return
	}

	for l.pos < len(l.text) {
		l.lexOne()
	}

	l.stream.Push(token.EndOfFile, len(l.text))
}

func (l *lexer) report(kind report.Kind, offset int, args ...any) {
	l.rep.Report(kind, l.src.Locate(offset), args...)
}

// peekByte returns the byte at l.pos+ahead, or 0 past the end of text.
func (l *lexer) peekByte(ahead int) byte {
	i := l.pos + ahead
	if i >= len(l.text) {
		return 0
	}
	return l.text[i]
}

// match consumes the current byte if it equals c, reporting whether it did.
func (l *lexer) match(c byte) bool {
	if l.peekByte(0) == c {
		l.pos++
		return true
	}
	return false
}

// lexOne either skips a single whitespace byte without emitting anything,
// or consumes and emits exactly one token. run calls it until the text is
// exhausted.
func (l *lexer) lexOne() {
	switch l.text[l.pos] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		l.pos++
		return
	}

	begin := l.pos
	c := l.text[l.pos]
	l.pos++

	var kind token.Kind
	variableLength := false

	switch {
	case isAsciiLetter(c) || c == '_':
		kind = l.lexWord(begin)
		variableLength = kind == token.Name
	case isDecDigit(c):
		kind = l.lexNumber(c)
		variableLength = true
	default:
		switch c {
		case '.':
			kind = l.matchDot()
			variableLength = kind == token.FloatLiteral
		case ':':
			kind = token.Colon
			if l.match(':') {
				kind = token.ColonColon
			}
		case ',':
			kind = token.Comma
		case ';':
			kind = token.Semicolon
		case '{':
			kind = token.LBrace
		case '}':
			kind = token.RBrace
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		case '<':
			kind = l.matchLeftAngle()
		case '>':
			kind = l.matchRightAngle()
		case '=':
			switch {
			case l.match('='):
				kind = token.EqEq
			case l.match('>'):
				kind = token.ThickArrow
			default:
				kind = token.Eq
			}
		case '+':
			switch {
			case l.match('+'):
				kind = token.PlusPlus
			case l.match('='):
				kind = token.PlusEq
			default:
				kind = token.Plus
			}
		case '-':
			switch {
			case l.match('>'):
				kind = token.ThinArrow
			case l.match('-'):
				kind = token.MinusMinus
			case l.match('='):
				kind = token.MinusEq
			default:
				kind = token.Minus
			}
		case '*':
			if l.match('*') {
				kind = token.StarStar
				if l.match('=') {
					kind = token.StarStarEq
				}
			} else if l.match('=') {
				kind = token.StarEq
			} else {
				kind = token.Star
			}
		case '/':
			switch {
			case l.match('/'):
				l.eatLineComment()
				kind, variableLength = token.LineComment, true
			case l.match('*'):
				l.eatBlockComment(begin)
				kind, variableLength = token.BlockComment, true
			case l.match('='):
				kind = token.SlashEq
			default:
				kind = token.Slash
			}
		case '%':
			kind = token.Percent
			if l.match('=') {
				kind = token.PercentEq
			}
		case '!':
			kind = token.Bang
			if l.match('=') {
				kind = token.BangEq
			}
		case '&':
			switch {
			case l.match('&'):
				kind = token.AmpAmp
			case l.match('='):
				kind = token.AmpEq
			default:
				kind = token.Amp
			}
		case '|':
			switch {
			case l.match('|'):
				kind = token.PipePipe
			case l.match('='):
				kind = token.PipeEq
			default:
				kind = token.Pipe
			}
		case '~':
			kind = token.Tilde
			if l.match('=') {
				kind = token.TildeEq
			}
		case '^':
			kind = token.Caret
		case '?':
			kind = token.Quest
		case '@':
			kind = token.At
		case '$':
			kind = token.Dollar
		case '#':
			kind = token.Hash
		case '"':
			l.eatQuotedSequence('"')
			kind, variableLength = token.StringLiteral, true
		case '\'':
			l.eatQuotedSequence('\'')
			kind, variableLength = token.CharLiteral, true
		default:
			l.eatUnicodeToken(begin)
			kind, variableLength = token.Name, true
		}
	}

	if variableLength {
		l.stream.PushVariable(kind, begin, l.pos-begin)
	} else {
		l.stream.Push(kind, begin)
	}
}

func isAsciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAsciiWordChar(c byte) bool {
	return isAsciiLetter(c) || isDecDigit(c) || c == '_'
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t'
}

func (l *lexer) matchDot() token.Kind {
	backup := l.pos
	if l.match('.') {
		if l.match('.') {
			return token.Ellipsis
		}
		l.pos = backup // the extra dot must not be consumed
	} else if isDecDigit(l.peekByte(0)) {
		l.eatNumberLiteral(isDecDigit)
		return token.FloatLiteral
	}
	return token.Dot
}

func (l *lexer) matchLeftAngle() token.Kind {
	if l.match('<') {
		if l.match('=') {
			return token.LAngleAngleEq
		}
		return token.LAngleAngle
	}
	if l.match('=') {
		return token.LAngleEq
	}
	return token.LAngle
}

// matchRightAngle never produces a standalone `>>`: the parser fuses two
// adjacent single `>` tokens into a right-shift itself, using
// open_angles to decide whether it is instead closing a generic-argument
// list. Only `>>=` is lexed as a single token here.
func (l *lexer) matchRightAngle() token.Kind {
	backup := l.pos
	if l.match('>') {
		if l.match('=') {
			return token.RAngleAngleEq
		}
		l.pos = backup
	} else if l.match('=') {
		return token.RAngleEq
	}
	return token.RAngle
}
