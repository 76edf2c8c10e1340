// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/strataadmin/internal/app/system/htmlsanitize"
	nav "github.com/dalemusser/waffle/toolkit/ui/nav"
)

// DefaultSiteName is shown when no site_name is configured.
const DefaultSiteName = "Platform Admin"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	SiteName   string
	FooterHTML template.HTML

	Title       string
	CurrentPath string
}

// Site holds the site-wide values every page shows.
type Site struct {
	Name       string
	FooterHTML string
}

var (
	mu   sync.RWMutex
	site = Site{Name: DefaultSiteName}
)

// Init sets the site-wide values. Call this once at startup from bootstrap.
// The footer may be plain text or HTML; it is rendered and sanitized here so
// templates can emit it as-is.
func Init(s Site) {
	if s.Name == "" {
		s.Name = DefaultSiteName
	}
	s.FooterHTML = string(htmlsanitize.PrepareForDisplay(s.FooterHTML))

	mu.Lock()
	site = s
	mu.Unlock()
}

// CurrentSite returns the values set by Init.
func CurrentSite() Site {
	mu.RLock()
	defer mu.RUnlock()
	return site
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := CurrentSite()
	return BaseVM{
		SiteName:    s.Name,
		FooterHTML:  template.HTML(s.FooterHTML),
		Title:       title,
		CurrentPath: nav.CurrentPath(r),
	}
}
