package report

import "fmt"

// Report is an accumulator for diagnostics produced over the course of
// lexing and/or parsing a single document. The lexer and the parser both
// stop at their first fatal error: the lexer's Report holds that error
// plus one diagnostic per delimiter still unclosed, and the parser's holds
// at most one diagnostic, returned alongside a partial tree. "Tentative"
// parse failures, which only make the parser try another alternative, are
// never added to a Report.
type Report struct {
	diagnostics []*Diagnostic
}

// Add appends a diagnostic to the report.
func (r *Report) Add(d *Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Errorf is shorthand for constructing and adding an Error-level diagnostic
// with no annotations.
func (r *Report) Errorf(tag, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Level: Error, Tag: tag, Message: fmt.Sprintf(format, args...)}
	r.Add(d)
	return d
}

// Diagnostics returns every diagnostic added to the report, in the order
// they were added.
func (r *Report) Diagnostics() []*Diagnostic {
	return r.diagnostics
}

// Len returns the number of diagnostics in the report.
func (r *Report) Len() int { return len(r.diagnostics) }

// HasErrors reports whether any diagnostic in the report is at Error level
// or above.
func (r *Report) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}
