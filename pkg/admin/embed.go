package admin

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/widgets/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// override individual partials.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
