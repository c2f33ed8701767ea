package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// PageData feeds the page template.
type PageData struct {
	Title     string
	Heading   string
	Subtitle  string
	Date      string
	BackLink  *Link
	PlotlyURL string
	Cells     template.HTML
}

// PageAssembler renders the page template around the cell fragments.
type PageAssembler struct {
	tmpl *template.Template
}

// NewPageAssembler parses the page template.
func NewPageAssembler(tmplContent string) (*PageAssembler, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: page: %v", ErrTemplateParse, err)
	}
	return &PageAssembler{tmpl: tmpl}, nil
}

// Assemble executes the template. Cells are inserted verbatim; every other
// field is escaped by html/template.
func (a *PageAssembler) Assemble(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: page: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
