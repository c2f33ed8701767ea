package assets

// Default asset names.
const (
	DefaultStyleName       = "default"
	DefaultTemplateSetName = "default"
)

// Template file names inside a template set directory.
const (
	pageTemplateFile  = "page.html"
	chartTemplateFile = "chart.html"
)

// AssetLoader loads stylesheets and template sets by name.
type AssetLoader interface {
	// LoadStyle returns the CSS for name (without extension).
	LoadStyle(name string) (string, error)
	// LoadTemplateSet returns the page and chart templates for name.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the two templates a notebook render needs.
type TemplateSet struct {
	Name  string
	Page  string // notebook page, receives the rendered cells
	Chart string // standalone chart page
}
