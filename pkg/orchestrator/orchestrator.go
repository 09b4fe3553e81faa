package orchestrator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/sections"
	"github.com/goliatone/go-readmegen/pkg/validation"
)

// Orchestrator drives templates through validation and the section registry.
// It is safe for concurrent use once constructed.
type Orchestrator struct {
	registry      *sections.Registry
	logger        *slog.Logger
	themeSelector theme.ThemeSelector
	now           func() time.Time
	concurrency   int
	idPrefix      string
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the built-in registry, a discarding logger and
// the wall clock.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.registry == nil {
		o.registry = sections.NewRegistry()
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}

// Registry exposes the section registry in use.
func (o *Orchestrator) Registry() *sections.Registry {
	return o.registry
}

type outcome struct {
	section model.Section
	blocks  []blocks.Block
	err     *rendererr.Error
}

// Render turns tpl and profile into block IR. It never panics.
func (o *Orchestrator) Render(ctx context.Context, tpl model.Template, profile model.UserProfile, opts ...RenderOption) (result Result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			o.logger.Error("render panicked", "template", tpl.ID(), "panic", recovered)
			result = failure(rendererr.Unknown(recovered))
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return failure(rendererr.Unknown(err))
	}

	started := o.now()
	cfg := newRenderConfig(opts)
	rc := o.renderContext(tpl, cfg, started)
	logger := o.logger.With("template", rc.TemplateID)

	var warnings []rendererr.Warning
	if cfg.hooks.OnBeforeRender != nil {
		warnings = o.callHook(logger, warnings, "onBeforeRender", func() { cfg.hooks.OnBeforeRender(rc) })
	}

	if !cfg.skipValidation {
		if res := validation.Validate(tpl, profile); !res.Valid {
			logger.Warn("template validation failed", "errors", len(res.Errors))
			return failure(res.Errors...)
		}
	}

	ordered := orderSections(tpl)
	outcomes, err := o.renderSections(ctx, ordered, profile, rc)
	if err != nil {
		return failure(rendererr.Unknown(err))
	}

	out := Output{Context: rc, Sections: make([]RenderedSection, 0, len(outcomes))}
	var errs []*rendererr.Error
	for _, oc := range outcomes {
		if !oc.section.Enabled {
			out.Metadata.SectionsSkipped++
			logger.Debug("section disabled", "section", oc.section.ID)
			continue
		}
		if oc.err != nil {
			if cfg.hooks.OnError != nil {
				failed := oc.err
				warnings = o.callHook(logger, warnings, "onError", func() { cfg.hooks.OnError(failed) })
			}
			if cfg.continueOnError {
				logger.Warn("section skipped", "section", oc.section.ID, "code", oc.err.Code, "error", oc.err.Message)
				warnings = append(warnings, oc.err.AsWarning())
				out.Metadata.SectionsSkipped++
				continue
			}
			logger.Error("section failed", "section", oc.section.ID, "code", oc.err.Code, "error", oc.err.Message)
			errs = append(errs, oc.err)
			continue
		}

		rendered := RenderedSection{
			ID:      oc.section.ID,
			Type:    oc.section.Type(),
			Title:   sections.Interpolate(oc.section.Title, profile),
			Blocks:  oc.blocks,
			Visible: true,
			Order:   len(out.Sections),
		}
		out.Sections = append(out.Sections, rendered)
		out.Metadata.SectionsRendered++
		logger.Debug("section rendered", "section", rendered.ID, "blocks", len(rendered.Blocks))
		if cfg.hooks.OnSectionRendered != nil {
			warnings = o.callHook(logger, warnings, "onSectionRendered", func() { cfg.hooks.OnSectionRendered(rendered) })
		}
	}

	if len(errs) > 0 && !cfg.continueOnError {
		return failure(errs...)
	}

	out.Metadata.TemplateID = rc.TemplateID
	out.Metadata.TemplateName = tpl.Name()
	out.Metadata.TemplateVersion = tpl.Version()
	out.Metadata.RenderedAt = started
	out.Metadata.Duration = o.now().Sub(started)

	if cfg.hooks.OnAfterRender != nil {
		snapshot := out
		snapshot.Metadata.Warnings = append([]rendererr.Warning(nil), warnings...)
		warnings = o.callHook(logger, warnings, "onAfterRender", func() { cfg.hooks.OnAfterRender(snapshot) })
	}
	out.Metadata.Warnings = warnings

	logger.Debug("render complete",
		"rendered", out.Metadata.SectionsRendered,
		"skipped", out.Metadata.SectionsSkipped,
		"warnings", len(warnings),
	)
	return Result{Success: true, Output: &out}
}

// renderSections renders every enabled section, returning outcomes in the
// order of ordered. Disabled sections produce an empty outcome. Each section
// builds with its own id generator; ids are then reassigned in layout order
// from the render's generator, so concurrency never changes the output.
func (o *Orchestrator) renderSections(ctx context.Context, ordered []model.Section, profile model.UserProfile, rc sections.RenderContext) ([]outcome, error) {
	outcomes := make([]outcome, len(ordered))
	for i, section := range ordered {
		outcomes[i].section = section
	}
	render := func(oc *outcome) {
		local := rc
		local.Blocks = blocks.NewBuilder(blocks.NewIDGenerator(o.idPrefix))
		oc.blocks, oc.err = o.registry.Render(oc.section, profile, local)
	}

	if o.concurrency < 2 {
		for i := range outcomes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if outcomes[i].section.Enabled {
				render(&outcomes[i])
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.concurrency)
		for i := range outcomes {
			if !outcomes[i].section.Enabled {
				continue
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				render(&outcomes[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	ids := rc.Blocks.IDs()
	for i := range outcomes {
		oc := &outcomes[i]
		if !oc.section.Enabled || oc.err != nil {
			continue
		}
		if err := blocks.Renumber(oc.blocks, ids); err != nil {
			oc.blocks = nil
			oc.err = rendererr.SectionRenderFailed(oc.section.ID, string(oc.section.Type()), err)
		}
	}
	return outcomes, nil
}

// callHook runs fn, converting a panic into a HOOK_FAILED warning.
func (o *Orchestrator) callHook(logger *slog.Logger, warnings []rendererr.Warning, name string, fn func()) (out []rendererr.Warning) {
	out = warnings
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Warn("hook failed", "hook", name, "panic", recovered)
			out = append(out, rendererr.HookFailed(name, recovered).AsWarning())
		}
	}()
	fn()
	return out
}

func (o *Orchestrator) renderContext(tpl model.Template, cfg renderConfig, started time.Time) sections.RenderContext {
	styles := tpl.Styles
	if styles.BadgeStyle == "" {
		styles.BadgeStyle = tpl.Defaults.BadgeStyle
	}

	features := model.Features{Animations: true, GitHubStats: true, Integrations: true, CustomHTML: true, DarkMode: true}
	if tpl.Capabilities != nil {
		features = tpl.Capabilities.Features
	}

	rc := sections.RenderContext{
		TemplateID:   tpl.ID(),
		Theme:        firstNonEmpty(cfg.theme, tpl.Defaults.Theme, DefaultTheme),
		ThemeVariant: cfg.variant,
		Locale:       firstNonEmpty(cfg.locale, tpl.Defaults.Locale, DefaultLocale),
		Timestamp:    started,
		Styles:       styles,
		Features:     features,
		Blocks:       blocks.NewBuilder(blocks.NewIDGenerator(o.idPrefix)),
	}
	o.applyTheme(&rc)
	return rc
}

// applyTheme resolves the theme through the selector, merging the manifest
// tokens with the selected variant's tokens. Selection failures keep the
// requested theme name.
func (o *Orchestrator) applyTheme(rc *sections.RenderContext) {
	if o.themeSelector == nil {
		return
	}
	selection, err := o.themeSelector.Select(rc.Theme, rc.ThemeVariant)
	if err != nil || selection == nil {
		o.logger.Warn("theme selection failed", "theme", rc.Theme, "variant", rc.ThemeVariant, "error", err)
		return
	}

	if selection.Theme != "" {
		rc.Theme = selection.Theme
	}
	if selection.Variant != "" {
		rc.ThemeVariant = selection.Variant
	}
	if selection.Manifest == nil {
		return
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[rc.ThemeVariant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	rc.Tokens = tokens
}

// Validate runs the validation gate only.
func (o *Orchestrator) Validate(tpl model.Template, profile model.UserProfile) validation.Result {
	return validation.Validate(tpl, profile)
}

const singleSectionTemplateID = "single-section"

// RenderSingleSection renders one section through a wrapper template that
// supports every section type.
func (o *Orchestrator) RenderSingleSection(ctx context.Context, section model.Section, profile model.UserProfile, opts ...RenderOption) Result {
	tpl := model.Template{
		Metadata: &model.Metadata{ID: singleSectionTemplateID, Name: "Single section", Version: "1.0.0"},
		Layout:   &model.Layout{},
		Capabilities: &model.Capabilities{
			SupportedSections: model.AllSectionTypes(),
			MaxSections:       1,
			Features:          model.Features{Animations: true, GitHubStats: true, Integrations: true, CustomHTML: true, DarkMode: true},
		},
		Sections: []model.Section{section},
	}
	return o.Render(ctx, tpl, profile, opts...)
}

// AnalyzeTemplate counts sections and labels complexity: low up to 3 enabled
// sections, medium up to 7, high beyond.
func (o *Orchestrator) AnalyzeTemplate(tpl model.Template) Analysis {
	return AnalyzeTemplate(tpl)
}

func AnalyzeTemplate(tpl model.Template) Analysis {
	analysis := Analysis{
		TemplateID:    tpl.ID(),
		TotalSections: len(tpl.Sections),
		SectionTypes:  make(map[model.SectionType]int),
	}
	for _, section := range tpl.Sections {
		analysis.SectionTypes[section.Type()]++
		if section.Enabled {
			analysis.EnabledSections++
		} else {
			analysis.DisabledSections++
		}
	}
	switch {
	case analysis.EnabledSections <= 3:
		analysis.Complexity = ComplexityLow
	case analysis.EnabledSections <= 7:
		analysis.Complexity = ComplexityMedium
	default:
		analysis.Complexity = ComplexityHigh
	}
	return analysis
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
