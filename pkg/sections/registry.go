package sections

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

// RenderFunc maps one section to blocks. Returning an empty slice is the only
// legitimate way to produce no content.
type RenderFunc func(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error)

// Registry stores one renderer per section type.
type Registry struct {
	mu        sync.RWMutex
	renderers map[model.SectionType]RenderFunc
}

// NewRegistry returns a registry holding every built-in renderer. It panics
// when a known section type has no renderer.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for sectionType, fn := range builtins() {
		r.MustRegister(sectionType, fn)
	}
	if err := r.Verify(); err != nil {
		panic(err)
	}
	return r
}

// NewEmptyRegistry creates a registry without renderers.
func NewEmptyRegistry() *Registry {
	return &Registry{renderers: make(map[model.SectionType]RenderFunc)}
}

// Register adds a renderer. Duplicate types return an error.
func (r *Registry) Register(sectionType model.SectionType, fn RenderFunc) error {
	if sectionType == "" {
		return errors.New("sections: section type is required")
	}
	if fn == nil {
		return fmt.Errorf("sections: renderer for %q is required", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[sectionType]; exists {
		return fmt.Errorf("sections: renderer %q already registered", sectionType)
	}
	r.renderers[sectionType] = fn
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(sectionType model.SectionType, fn RenderFunc) {
	if err := r.Register(sectionType, fn); err != nil {
		panic(err)
	}
}

// Replace swaps the renderer of an already registered type.
func (r *Registry) Replace(sectionType model.SectionType, fn RenderFunc) error {
	if fn == nil {
		return fmt.Errorf("sections: renderer for %q is required", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[sectionType]; !exists {
		return fmt.Errorf("sections: renderer %q not registered", sectionType)
	}
	r.renderers[sectionType] = fn
	return nil
}

// Get retrieves a renderer by section type.
func (r *Registry) Get(sectionType model.SectionType) (RenderFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.renderers[sectionType]
	if !ok {
		return nil, fmt.Errorf("sections: renderer %q not found", sectionType)
	}
	return fn, nil
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(sectionType model.SectionType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[sectionType]
	return ok
}

// List returns the registered section types, sorted.
func (r *Registry) List() []model.SectionType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.SectionType, 0, len(r.renderers))
	for sectionType := range r.renderers {
		types = append(types, sectionType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Missing lists known section types without a renderer.
func (r *Registry) Missing() []model.SectionType {
	var missing []model.SectionType
	for _, sectionType := range model.AllSectionTypes() {
		if !r.Has(sectionType) {
			missing = append(missing, sectionType)
		}
	}
	return missing
}

// Verify fails when any known section type lacks a renderer.
func (r *Registry) Verify() error {
	if missing := r.Missing(); len(missing) > 0 {
		return fmt.Errorf("sections: no renderer for section types %v", missing)
	}
	return nil
}

// Render dispatches section to its renderer. It never panics: a missing
// renderer yields SECTION_RENDERER_MISSING and any panic or untyped error
// becomes SECTION_RENDER_FAILED.
func (r *Registry) Render(section model.Section, profile model.UserProfile, rc RenderContext) (out []blocks.Block, rerr *rendererr.Error) {
	sectionType := section.Type()
	fn, err := r.Get(sectionType)
	if err != nil {
		return nil, rendererr.SectionRendererMissing(section.ID, string(sectionType))
	}
	if rc.Blocks == nil {
		rc.Blocks = rc.builder()
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			out = nil
			rerr = rendererr.SectionRenderFailed(section.ID, string(sectionType), recovered)
		}
	}()

	out, err = fn(section, profile, rc)
	if err != nil {
		if typed, ok := rendererr.As(err); ok {
			return nil, typed
		}
		return nil, rendererr.SectionRenderFailed(section.ID, string(sectionType), err)
	}
	if out == nil {
		out = []blocks.Block{}
	}
	return out, nil
}

func builtins() map[model.SectionType]RenderFunc {
	return map[model.SectionType]RenderFunc{
		model.SectionHero:           renderHero,
		model.SectionAbout:          renderAbout,
		model.SectionTechStack:      renderTechStack,
		model.SectionGitHubStats:    renderGitHubStats,
		model.SectionProjects:       renderProjects,
		model.SectionExperience:     renderExperience,
		model.SectionEducation:      renderEducation,
		model.SectionAchievements:   renderAchievements,
		model.SectionBlogPosts:      renderBlogPosts,
		model.SectionContact:        renderContact,
		model.SectionSocials:        renderSocials,
		model.SectionQuote:          renderQuote,
		model.SectionDivider:        renderDivider,
		model.SectionSpacer:         renderSpacer,
		model.SectionCustomMarkdown: renderCustomMarkdown,
		model.SectionCustomHTML:     renderCustomHTML,
		model.SectionSpotify:        renderSpotify,
		model.SectionWakaTime:       renderWakaTime,
		model.SectionContributions:  renderContributions,
		model.SectionPinnedRepos:    renderPinnedRepos,
	}
}
