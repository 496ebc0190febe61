package report

import "github.com/cero-lang/cero/source"

// Diagnostic is one fully-formed report: the kind that produced it, the
// severity it resolved to (after the warnings-as-errors policy), where it
// occurred, and its formatted text.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Location source.Location
	Text     string
}

// Reporter is the lexer and parser's only way of surfacing diagnostics. It
// is an interface, not a concrete sink: formatting a Diagnostic for a
// terminal or a language-server protocol is a concern of the caller, not of
// this package.
type Reporter interface {
	// Report records one diagnostic. args must match the Kind's format
	// string placeholder count exactly.
	Report(kind Kind, loc source.Location, args ...any)

	// HasErrors reports whether any diagnostic delivered to this Reporter
	// has ever finalized at severity Error. Once true, it never reverts to
	// false; this is the single signal the lexer/parser pipeline relies on.
	HasErrors() bool

	// SetWarningsAsErrors toggles whether a Warning-severity Kind is
	// upgraded to Error before it is counted and delivered.
	SetWarningsAsErrors(bool)
}

// Handler is the default, in-memory Reporter: it stores every diagnostic it
// receives, in the order received, and tracks HasErrors.
//
// A zero Handler is ready to use.
type Handler struct {
	Diagnostics      []Diagnostic
	warningsAsErrors bool
	hasErrors        bool
}

var _ Reporter = (*Handler)(nil)

// NewHandler returns a ready-to-use Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Report implements Reporter.
func (h *Handler) Report(kind Kind, loc source.Location, args ...any) {
	severity := kind.DefaultSeverity()
	if severity == Warning && h.warningsAsErrors {
		severity = Error
	}
	if severity == Error {
		h.hasErrors = true
	}

	h.Diagnostics = append(h.Diagnostics, Diagnostic{
		Kind:     kind,
		Severity: severity,
		Location: loc,
		Text:     format(kind.Format(), args),
	})
}

// HasErrors implements Reporter.
func (h *Handler) HasErrors() bool { return h.hasErrors }

// SetWarningsAsErrors implements Reporter.
func (h *Handler) SetWarningsAsErrors(b bool) { h.warningsAsErrors = b }
