package readmegen_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	readmegen "github.com/goliatone/go-readmegen"
	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/testsupport"
)

func TestRenderBuiltin_AllTemplatesRender(t *testing.T) {
	for _, id := range []string{"minimal", "developer", "showcase"} {
		t.Run(id, func(t *testing.T) {
			result, err := readmegen.RenderBuiltin(testsupport.Context(), id, testsupport.Profile())
			if err != nil {
				t.Fatalf("render %s: %v", id, err)
			}
			if !result.Success {
				t.Fatalf("render %s failed: %v", id, result.Errors)
			}
			if len(result.Output.Metadata.Warnings) != 0 {
				t.Fatalf("unexpected warnings %v", result.Output.Metadata.Warnings)
			}
			if result.Output.Sections[0].Type != "hero" {
				t.Fatalf("expected hero first, got %s", result.Output.Sections[0].Type)
			}
			if _, err := json.Marshal(result); err != nil {
				t.Fatalf("marshal result: %v", err)
			}
		})
	}
}

func TestRenderBuiltin_UnknownTemplate(t *testing.T) {
	_, err := readmegen.RenderBuiltin(testsupport.Context(), "nope", testsupport.Profile())
	if typed, ok := rendererr.As(err); !ok || typed.Code != rendererr.CodeTemplateNotFound {
		t.Fatalf("expected TEMPLATE_NOT_FOUND, got %v", err)
	}
}

func TestRenderBuiltin_DeveloperOrderAndSkips(t *testing.T) {
	tpl := testsupport.BuiltinTemplate(t, "developer")
	orch := readmegen.NewOrchestrator(orchestrator.WithClock(testsupport.Clock))

	result := orch.Render(testsupport.Context(), tpl, testsupport.Profile())
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	var ids []string
	for _, section := range result.Output.Sections {
		ids = append(ids, section.ID)
	}
	want := []string{"hero", "about", "tech-stack", "stats", "pinned", "contributions", "blog"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if result.Output.Metadata.SectionsSkipped != 1 {
		t.Fatalf("expected the disabled contact section to be skipped")
	}
	if !result.Output.Metadata.RenderedAt.Equal(testsupport.FixedTime) {
		t.Fatalf("expected fixed clock, got %v", result.Output.Metadata.RenderedAt)
	}

	var hasTyping bool
	for _, section := range result.Output.Sections {
		flat, err := blocks.Flatten(section.Blocks)
		if err != nil {
			t.Fatalf("flatten %s: %v", section.ID, err)
		}
		for _, block := range flat {
			if block.BlockKind() == blocks.KindTypingAnimation {
				hasTyping = true
			}
		}
	}
	if !hasTyping {
		t.Fatalf("expected typing animation in developer hero")
	}
}

func TestRenderDocuments(t *testing.T) {
	tpl := []byte(`
metadata: {id: doc, name: Doc, version: "1.0.0"}
layout: {}
capabilities: {supportedSections: [hero]}
sections:
  - id: hero
    type: hero
`)
	profile := []byte(`{"github": {"username": "ada"}, "personal": {"displayName": {"customName": "Ada"}}}`)

	result, err := readmegen.RenderDocuments(testsupport.Context(), tpl, profile)
	if err != nil {
		t.Fatalf("render documents: %v", err)
	}
	heading := result.Output.Sections[0].Blocks[0].(*blocks.Heading)
	if heading.Value != "Hi there, I'm Ada" {
		t.Fatalf("unexpected heading %q", heading.Value)
	}
}
