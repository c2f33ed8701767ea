// Package markup renders the small markdown subset used in notebook text cells.
//
// Inline rules (applied in order to each line): **bold**, *italic*,
// [label](target). Block rules: fenced code, horizontal rules, ATX headings,
// "-" and "*" bullet lists, paragraphs. Everything else is passed through as
// raw text: notebook markdown is trusted, so embedded HTML survives.
//
// Rendering never fails. Unterminated markers stay literal and an unclosed
// code fence is dropped.
package markup
