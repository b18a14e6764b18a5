package config

import (
	"fmt"
	"strings"
)

// ValidationError is one problem found while resolving configuration:
// a structural issue inside a document, an unresolved cross-document
// reference, a global ID collision, or a fetch failure (empty path).
type ValidationError struct {
	Document string `json:"document"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

// String renders the error in the form consumed by diagnostic displays
func (e ValidationError) String() string {
	return fmt.Sprintf("[%s at %s] %s", e.Document, e.Path, e.Message)
}

// FormatErrors renders a list of validation errors as one line per error,
// or "No errors" for an empty list. Callers display this text verbatim.
func FormatErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return "No errors"
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
