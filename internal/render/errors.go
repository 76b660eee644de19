package render

import (
	"fmt"
	"strings"
)

// MissingTemplatesError aggregates every required template absent from
// the template source. Reporting all names at once saves the caller a
// round-trip per missing file.
type MissingTemplatesError struct {
	Names []string
}

func (e *MissingTemplatesError) Error() string {
	return "missing required templates: " + strings.Join(e.Names, ", ")
}

// RenderError reports a substitution failure, naming the template the
// malformed marker was found in.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
