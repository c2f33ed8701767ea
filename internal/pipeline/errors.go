package pipeline

import "errors"

// Sentinel errors for pipeline stages.
var (
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrUnknownEngine  = errors.New("unknown markdown engine")
)
