package orchestrator

import (
	"time"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/sections"
)

// Result is either a successful Output or the errors that stopped the render.
type Result struct {
	Success bool               `json:"success"`
	Output  *Output            `json:"output,omitempty"`
	Errors  []*rendererr.Error `json:"errors,omitempty"`
}

// Err joins the result errors, or returns nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return rendererr.Join(r.Errors)
}

func failure(errs ...*rendererr.Error) Result {
	return Result{Success: false, Errors: errs}
}

// RenderedSection is one rendered section, positioned in layout order.
type RenderedSection struct {
	ID      string            `json:"id"`
	Type    model.SectionType `json:"type"`
	Title   string            `json:"title,omitempty"`
	Blocks  []blocks.Block    `json:"blocks"`
	Visible bool              `json:"visible"`
	Order   int               `json:"order"`
}

type Metadata struct {
	TemplateID       string              `json:"templateId"`
	TemplateName     string              `json:"templateName,omitempty"`
	TemplateVersion  string              `json:"templateVersion,omitempty"`
	RenderedAt       time.Time           `json:"renderedAt"`
	Duration         time.Duration       `json:"duration"`
	SectionsRendered int                 `json:"sectionsRendered"`
	SectionsSkipped  int                 `json:"sectionsSkipped"`
	Warnings         []rendererr.Warning `json:"warnings,omitempty"`
}

type Output struct {
	Sections []RenderedSection      `json:"sections"`
	Metadata Metadata               `json:"metadata"`
	Context  sections.RenderContext `json:"context"`
}

// Complexity is a coarse label derived from the enabled section count.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Analysis summarises a template without rendering it.
type Analysis struct {
	TemplateID       string                    `json:"templateId"`
	TotalSections    int                       `json:"totalSections"`
	EnabledSections  int                       `json:"enabledSections"`
	DisabledSections int                       `json:"disabledSections"`
	SectionTypes     map[model.SectionType]int `json:"sectionTypes"`
	Complexity       Complexity                `json:"complexity"`
}
