package pipeline

import "github.com/microcosm-cc/bluemonday"

// PolicySanitizer filters text/html outputs through a bluemonday policy.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer returns a sanitizer that keeps user-generated-content
// markup plus the table styling that dataframe outputs rely on, and drops
// scripts, event handlers and unsafe URLs.
func NewPolicySanitizer() *PolicySanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowStyling()
	p.AllowAttrs("border").OnElements("table")
	p.AllowAttrs("style").OnElements("th", "td", "tr", "span", "div")
	p.AllowStyles("text-align", "vertical-align", "color", "background-color", "font-weight", "font-style").Globally()
	return &PolicySanitizer{policy: p}
}

// Sanitize implements HTMLSanitizer.
func (s *PolicySanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

var _ HTMLSanitizer = (*PolicySanitizer)(nil)
