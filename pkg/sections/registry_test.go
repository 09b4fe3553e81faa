package sections

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

func testContext() RenderContext {
	return RenderContext{
		TemplateID: "test",
		Theme:      "system",
		Locale:     "en",
		Features:   model.Features{Animations: true, CustomHTML: true},
		Blocks:     blocks.NewBuilder(blocks.NewIDGenerator("")),
	}
}

func TestNewRegistry_IsTotal(t *testing.T) {
	registry := NewRegistry()
	if missing := registry.Missing(); len(missing) != 0 {
		t.Fatalf("missing renderers: %v", missing)
	}
	if got, want := len(registry.List()), len(model.AllSectionTypes()); got != want {
		t.Fatalf("expected %d renderers, got %d", want, got)
	}
	if err := registry.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestRegistry_VerifyReportsOmissions(t *testing.T) {
	registry := NewEmptyRegistry()
	registry.MustRegister(model.SectionHero, renderHero)

	err := registry.Verify()
	if err == nil {
		t.Fatalf("expected verify to fail")
	}
	if !strings.Contains(err.Error(), string(model.SectionPinnedRepos)) {
		t.Fatalf("expected missing types in error, got %v", err)
	}
	if len(registry.Missing()) != len(model.AllSectionTypes())-1 {
		t.Fatalf("unexpected missing count %d", len(registry.Missing()))
	}
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(model.SectionHero, renderHero); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Replace(model.SectionHero, renderHero); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := NewEmptyRegistry().Replace(model.SectionHero, renderHero); err == nil {
		t.Fatalf("expected replace of unknown type to fail")
	}
}

func TestRegistry_RenderMissingRendererFailsLoudly(t *testing.T) {
	registry := NewEmptyRegistry()
	section := model.Section{ID: "hero", Enabled: true, Content: &model.HeroContent{}}

	out, err := registry.Render(section, model.UserProfile{}, testContext())
	if out != nil {
		t.Fatalf("expected no blocks, got %v", out)
	}
	if err == nil || err.Code != rendererr.CodeSectionRendererMissing {
		t.Fatalf("expected SECTION_RENDERER_MISSING, got %v", err)
	}
	if err.Recoverable {
		t.Fatalf("missing renderer must not be recoverable")
	}
}

func TestRegistry_RenderContainsPanics(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Replace(model.SectionAbout, func(model.Section, model.UserProfile, RenderContext) ([]blocks.Block, error) {
		panic("boom")
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	section := model.Section{ID: "about", Enabled: true, Content: &model.AboutContent{}}
	_, err := registry.Render(section, model.UserProfile{}, testContext())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Code != rendererr.CodeSectionRenderFailed || !err.Recoverable {
		t.Fatalf("expected recoverable SECTION_RENDER_FAILED, got %s (recoverable=%v)", err.Code, err.Recoverable)
	}
	if err.SectionID != "about" || err.SectionType != "about" || !strings.Contains(err.Message, "boom") {
		t.Fatalf("unexpected error details: %+v", err)
	}
}

func TestRegistry_RenderWrapsUntypedErrors(t *testing.T) {
	registry := NewRegistry()
	cause := errors.New("disk on fire")
	_ = registry.Replace(model.SectionAbout, func(model.Section, model.UserProfile, RenderContext) ([]blocks.Block, error) {
		return nil, cause
	})

	section := model.Section{ID: "about", Enabled: true, Content: &model.AboutContent{}}
	_, err := registry.Render(section, model.UserProfile{}, testContext())
	if err == nil || err.Code != rendererr.CodeSectionRenderFailed {
		t.Fatalf("expected SECTION_RENDER_FAILED, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped")
	}
}

func TestRegistry_RenderEmptyIsNotNil(t *testing.T) {
	registry := NewRegistry()
	section := model.Section{ID: "about", Enabled: true, Content: &model.AboutContent{}}
	out, err := registry.Render(section, model.UserProfile{}, testContext())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil block list, got %#v", out)
	}
}

func TestRegistry_RenderIsDeterministic(t *testing.T) {
	registry := NewRegistry()
	profile := model.UserProfile{
		GitHub:    model.GitHubIdentity{Username: "ada"},
		TechStack: model.TechStack{Items: []model.TechItem{{Name: "Go", Category: "language"}, {Name: "Postgres", Category: "database"}}},
	}
	section := model.Section{
		ID:      "stack",
		Enabled: true,
		Title:   "Tools",
		Content: &model.TechStackContent{Config: model.TechStackConfig{GroupByCategory: true, Layout: model.LayoutGrid}},
	}

	first, err := registry.Render(section, profile, testContext())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := registry.Render(section, profile, testContext())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}
