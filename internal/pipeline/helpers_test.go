package pipeline

import (
	"testing"

	"github.com/alnah/go-nb2html/internal/notebook"
)

// mustParse decodes a notebook literal or fails the test.
func mustParse(t *testing.T, src string) *notebook.Document {
	t.Helper()
	doc, err := notebook.Parse([]byte(src))
	if err != nil {
		t.Fatalf("notebook.Parse() error = %v", err)
	}
	return doc
}

// mustOutput decodes a single output record.
func mustOutput(t *testing.T, output string) notebook.Output {
	t.Helper()
	doc := mustParse(t, `{"cells": [{"cell_type": "code", "outputs": [`+output+`]}]}`)
	return doc.Cells[0].Outputs[0]
}
