// internal/app/resources/resources.go
//
// Package resources holds the layout partials every page shares: the page
// head and foot, the icon sprite reference, and the loading and error
// placeholders swapped into dashboard panels.
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

// Partials are the template names defined by the shared set.
var Partials = []string{"page_head", "page_foot", "icon", "panel_loading", "panel_error"}

var registerOnce sync.Once

// LoadSharedTemplates registers the shared set. Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
