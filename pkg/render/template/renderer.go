package template

import (
	"io"
)

// TemplateRenderer renders a named template from the bundle, copying the
// output to any writers given.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
