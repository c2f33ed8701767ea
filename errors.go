package nb2html

import (
	"errors"

	"github.com/alnah/go-nb2html/internal/assets"
	"github.com/alnah/go-nb2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNotebookNotFound = errors.New("notebook not found")
	ErrInvalidNotebook  = errors.New("invalid notebook")
	ErrEmptyNotebook    = errors.New("notebook cannot be nil")
	ErrHTMLRender       = errors.New("HTML rendering failed")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrPoolClosed       = errors.New("converter pool is closed")

	// Input validation errors.
	ErrInvalidChartLabel = errors.New("invalid chart label")
	ErrInvalidLink       = errors.New("invalid link")
	ErrInvalidDate       = errors.New("invalid dateline")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")

	// Asset and option errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateSetNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidEngine    = pipeline.ErrUnknownEngine
)
