// Package readmegen renders GitHub profile README templates into a typed
// block IR. The root package re-exports the orchestrator and offers one-call
// entry points; the pipeline itself lives under pkg/.
package readmegen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/templates"
)

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// Output aliases orchestrator.Output.
type Output = orchestrator.Output

// Hooks aliases orchestrator.Hooks for callers observing a render.
type Hooks = orchestrator.Hooks

type (
	Template    = model.Template
	UserProfile = model.UserProfile
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render renders tpl for profile with a default orchestrator.
func Render(ctx context.Context, tpl Template, profile UserProfile, opts ...orchestrator.RenderOption) Result {
	return orchestrator.New().Render(ctx, tpl, profile, opts...)
}

// RenderBuiltin looks up one of the embedded templates by id and renders it.
// An unknown id yields a failed result carrying TEMPLATE_NOT_FOUND.
func RenderBuiltin(ctx context.Context, templateID string, profile UserProfile, opts ...orchestrator.RenderOption) (Result, error) {
	catalog, err := templates.Builtin()
	if err != nil {
		return Result{}, err
	}
	tpl, err := catalog.Get(templateID)
	if err != nil {
		return Result{}, err
	}
	return Render(ctx, tpl, profile, opts...), nil
}

// RenderDocuments decodes JSON or YAML template and profile documents and
// renders them.
func RenderDocuments(ctx context.Context, templateDoc, profileDoc []byte, opts ...orchestrator.RenderOption) (Result, error) {
	tpl, err := templates.DecodeTemplate(templateDoc, "template")
	if err != nil {
		return Result{}, err
	}
	profile, err := templates.DecodeProfile(profileDoc, "profile")
	if err != nil {
		return Result{}, err
	}
	return Render(ctx, tpl, profile, opts...), nil
}

// EmbeddedTemplates exposes the built-in template documents so callers can
// reuse or extend them without importing the templates package directly.
func EmbeddedTemplates() fs.FS {
	return templates.EmbeddedFS()
}
