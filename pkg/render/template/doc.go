// Package template defines the template renderer seam used by the admin
// renderer. The gotemplate subpackage provides a pongo2-backed engine.
package template
