package notebook

import "github.com/tidwall/gjson"

// CellType discriminates notebook cells.
type CellType string

// Known cell types. Any other value is carried through and ignored by renderers.
const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
	CellRaw      CellType = "raw"
)

// OutputType discriminates code cell outputs.
type OutputType string

// Known output types.
const (
	OutputStream        OutputType = "stream"
	OutputExecuteResult OutputType = "execute_result"
	OutputDisplayData   OutputType = "display_data"
	OutputError         OutputType = "error"
)

// MIME types the renderers look for in rich output bundles.
const (
	MIMEPlotly = "application/vnd.plotly.v1+json"
	MIMEHTML   = "text/html"
	MIMEPlain  = "text/plain"
)

// Document is a decoded notebook. Cells keep their file order.
type Document struct {
	Cells    []Cell
	Metadata Metadata
}

// Metadata holds the notebook-level fields used for rendering.
type Metadata struct {
	// Language is language_info.name, falling back to kernelspec.language.
	Language string
	// Kernel is kernelspec.name.
	Kernel string
	// Title is the optional top-level title field.
	Title string
}

// Cell is one notebook cell. Outputs is only populated for code cells.
type Cell struct {
	Type    CellType
	Source  string
	Outputs []Output
}

// Output is one code cell output. Which fields are set depends on Type:
// stream outputs carry Name and Text, execute_result and display_data carry
// Data, and error outputs carry EName, EValue and Traceback.
type Output struct {
	Type      OutputType
	Name      string
	Text      string
	Data      Bundle
	EName     string
	EValue    string
	Traceback []string
}

// Bundle maps MIME types to payloads.
type Bundle map[string]Payload

// Lookup returns the payload stored under mime.
func (b Bundle) Lookup(mime string) (Payload, bool) {
	p, ok := b[mime]
	return p, ok
}

// Has reports whether the bundle carries mime.
func (b Bundle) Has(mime string) bool {
	_, ok := b[mime]
	return ok
}

// Payload is one MIME-typed value. Text payloads are strings or string
// arrays; other payloads are arbitrary JSON values.
type Payload struct {
	value gjson.Result
}

// Text returns the payload as text. String arrays are concatenated.
func (p Payload) Text() string {
	return text(p.value)
}

// JSON returns the payload as it appeared in the document.
func (p Payload) JSON() string {
	return p.value.Raw
}

// IsObject reports whether the payload is a JSON object.
func (p Payload) IsObject() bool {
	return p.value.IsObject()
}

// CodeCells returns the number of code cells in the document.
func (d *Document) CodeCells() int {
	n := 0
	for _, c := range d.Cells {
		if c.Type == CellCode {
			n++
		}
	}
	return n
}
