// Package pipeline renders decoded notebooks to HTML.
//
// The stages, leaf first:
//   - OutputRenderer: one cell output to one fragment, by output type and
//     MIME priority (chart, HTML, plain text)
//   - CellRenderer: markdown cells through a MarkdownEngine, code cells as
//     escaped or highlighted input plus their outputs
//   - RenderCells: every cell in order with one ChartIDs sequence per document
//   - PageAssembler: the cell fragments inside the page template
//   - ChartExtractor: one standalone page per chart output
//
// Rendering is deterministic: the same document always yields the same
// bytes. Content problems never fail a render; errors come only from
// templates, cancellation or an optional engine.
package pipeline
