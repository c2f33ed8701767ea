package pipeline

import (
	"context"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/htmlutil"
	"github.com/alnah/go-nb2html/internal/notebook"
)

// DefaultLanguage labels code cells when the notebook names no language.
const DefaultLanguage = "python"

// CellRenderer renders one cell to one fragment.
type CellRenderer struct {
	// Markdown renders markdown cells. Nil uses BasicEngine.
	Markdown MarkdownEngine
	// Highlighter, when set, highlights code cell input. A failing
	// highlighter falls back to escaped text.
	Highlighter Highlighter
	// Outputs renders code cell outputs. Nil uses a zero OutputRenderer.
	Outputs *OutputRenderer
	// Language is the class of code input elements. Empty uses DefaultLanguage.
	Language string
}

// Render returns the fragment for cell, or "" for cell types that are not
// displayed. Chart container ids are drawn from ids.
func (r *CellRenderer) Render(ctx context.Context, cell notebook.Cell, ids *ChartIDs) (string, error) {
	switch cell.Type {
	case notebook.CellMarkdown:
		body, err := r.markdown().RenderMarkdown(ctx, cell.Source)
		if err != nil {
			return "", err
		}
		return htmlutil.WrapClass(atom.Div, "cell markdown-cell", body), nil
	case notebook.CellCode:
		return htmlutil.WrapClass(atom.Div, "cell code-cell", r.input(cell.Source)+r.outputs(cell.Outputs, ids)), nil
	default:
		return "", nil
	}
}

func (r *CellRenderer) input(src string) string {
	lang := r.language()
	preOpen := htmlutil.Open(atom.Pre)
	body := htmlutil.Escape(src)
	if r.Highlighter != nil {
		if hl, err := r.Highlighter.Highlight(src, lang); err == nil {
			preOpen = htmlutil.OpenAttrs(atom.Pre, "class", "chroma")
			body = hl
		}
	}
	code := htmlutil.OpenAttrs(atom.Code, "class", lang) + body + htmlutil.Close(atom.Code)
	return htmlutil.WrapClass(atom.Div, "input", preOpen+code+htmlutil.Close(atom.Pre))
}

// outputs renders every output in order. The container is omitted when no
// output produced a fragment.
func (r *CellRenderer) outputs(outs []notebook.Output, ids *ChartIDs) string {
	or := r.Outputs
	if or == nil {
		or = &OutputRenderer{}
	}
	var b strings.Builder
	for _, out := range outs {
		b.WriteString(or.Render(out, ids))
	}
	if b.Len() == 0 {
		return ""
	}
	return htmlutil.WrapClass(atom.Div, "outputs", b.String())
}

func (r *CellRenderer) markdown() MarkdownEngine {
	if r.Markdown == nil {
		return BasicEngine{}
	}
	return r.Markdown
}

func (r *CellRenderer) language() string {
	if r.Language == "" {
		return DefaultLanguage
	}
	return r.Language
}

// RenderCells renders every cell of doc in order and concatenates the
// fragments. Each call numbers charts from one.
func RenderCells(ctx context.Context, r *CellRenderer, doc *notebook.Document) (string, *ChartIDs, error) {
	ids := &ChartIDs{}
	var b strings.Builder
	for _, cell := range doc.Cells {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		frag, err := r.Render(ctx, cell, ids)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(frag)
	}
	return b.String(), ids, nil
}
