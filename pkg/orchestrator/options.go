package orchestrator

import (
	"log/slog"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/sections"
)

const (
	DefaultTheme  = "system"
	DefaultLocale = "en"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a section renderer registry.
func WithRegistry(registry *sections.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithThemeSelector resolves the requested theme and variant through go-theme
// so renderers receive the selected manifest tokens.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithClock overrides the time source used for timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithConcurrency renders up to n sections in parallel. Values below 2 keep
// rendering sequential.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// WithIDPrefix sets the prefix of generated block ids.
func WithIDPrefix(prefix string) Option {
	return func(o *Orchestrator) {
		o.idPrefix = prefix
	}
}

// Hooks are optional observers invoked synchronously at fixed pipeline points.
type Hooks struct {
	OnBeforeRender    func(rc sections.RenderContext)
	OnAfterRender     func(out Output)
	OnSectionRendered func(section RenderedSection)
	OnError           func(err *rendererr.Error)
}

type renderConfig struct {
	theme           string
	variant         string
	locale          string
	skipValidation  bool
	continueOnError bool
	hooks           Hooks
}

// RenderOption customises a single render call.
type RenderOption func(*renderConfig)

func WithTheme(name string) RenderOption {
	return func(c *renderConfig) {
		c.theme = name
	}
}

func WithVariant(variant string) RenderOption {
	return func(c *renderConfig) {
		c.variant = variant
	}
}

func WithLocale(locale string) RenderOption {
	return func(c *renderConfig) {
		c.locale = locale
	}
}

// WithSkipValidation bypasses the validation gate.
func WithSkipValidation(skip bool) RenderOption {
	return func(c *renderConfig) {
		c.skipValidation = skip
	}
}

// WithContinueOnError selects best-effort output with warnings (true, the
// default) or all-or-nothing rendering (false).
func WithContinueOnError(continueOnError bool) RenderOption {
	return func(c *renderConfig) {
		c.continueOnError = continueOnError
	}
}

// WithHooks registers lifecycle hooks for the call.
func WithHooks(hooks Hooks) RenderOption {
	return func(c *renderConfig) {
		c.hooks = hooks
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{continueOnError: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
