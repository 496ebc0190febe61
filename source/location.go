package source

import "fmt"

// String renders the canonical "file:line:column" text form of a Location.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Zero reports whether this is the zero Location.
func (l Location) Zero() bool {
	return l == Location{}
}
