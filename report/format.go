package report

import (
	"fmt"
	"strings"
)

// format expands a catalog format string against args, substituting each
// `{}` with fmt.Sprint(args[i]) and each `{:x}` with a lowercase-hex
// rendering of args[i]. `{{` and `}}` escape to literal braces.
//
// A mismatch between the number of placeholders and len(args) is a
// programmer error (spec §4.2): it panics rather than silently truncating
// or padding the message.
func format(pattern string, args []any) string {
	var b strings.Builder
	argi := 0

	next := func() any {
		if argi >= len(args) {
			panic(fmt.Sprintf("report: format %q expects more arguments than the %d given", pattern, len(args)))
		}
		a := args[argi]
		argi++
		return a
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{' && i+1 < len(pattern) && pattern[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(pattern) && pattern[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{' && i+1 < len(pattern) && pattern[i+1] == '}':
			fmt.Fprint(&b, next())
			i++
		case c == '{' && strings.HasPrefix(pattern[i:], "{:x}"):
			fmt.Fprintf(&b, "%x", next())
			i += 3
		default:
			b.WriteByte(c)
		}
	}

	if argi != len(args) {
		panic(fmt.Sprintf("report: format %q expects %d arguments, but %d were given", pattern, argi, len(args)))
	}

	return b.String()
}
