package templates

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/validation"
)

const jsonTemplate = `{
  "metadata": {"id": "tiny", "name": "Tiny", "version": "0.1.0"},
  "layout": {"slots": [{"type": "hero", "order": 0}]},
  "capabilities": {"supportedSections": ["hero", "quote"], "maxSections": 2},
  "sections": [
    {"id": "hero", "type": "hero", "data": {"headline": "Hello {name}"}},
    {"id": "quote", "type": "quote", "enabled": false, "data": {"text": "Ship it"}}
  ]
}`

const yamlTemplate = `
metadata:
  id: tiny
  name: Tiny
  version: "0.1.0"
layout:
  slots:
    - type: hero
      order: 0
capabilities:
  supportedSections: [hero, quote]
  maxSections: 2
sections:
  - id: hero
    type: hero
    data:
      headline: "Hello {name}"
  - id: quote
    type: quote
    enabled: false
    data:
      text: Ship it
`

func TestDecodeTemplate_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := DecodeTemplate([]byte(jsonTemplate), "tiny.json")
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	fromYAML, err := DecodeTemplate([]byte(yamlTemplate), "tiny.yaml")
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("templates differ (-json +yaml):\n%s", diff)
	}
	if fromYAML.Sections[1].Enabled {
		t.Fatalf("expected explicit enabled=false to survive")
	}
	hero, ok := fromYAML.Sections[0].Content.(*model.HeroContent)
	if !ok || hero.Data.Headline != "Hello {name}" {
		t.Fatalf("unexpected hero content %#v", fromYAML.Sections[0].Content)
	}
}

func TestDecodeTemplate_SchemaViolation(t *testing.T) {
	doc := `{
  "metadata": {"name": "No id", "version": "1.0.0"},
  "layout": {},
  "capabilities": {"supportedSections": []},
  "sections": [{"id": "hero"}]
}`

	_, err := DecodeTemplate([]byte(doc), "broken.json")
	typed, ok := rendererr.As(err)
	if !ok {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code != rendererr.CodeTemplateInvalid {
		t.Fatalf("expected TEMPLATE_INVALID, got %s", typed.Code)
	}
	if typed.TemplateID != "broken.json" {
		t.Fatalf("expected source name as id, got %q", typed.TemplateID)
	}
	if len(typed.Issues) < 2 {
		t.Fatalf("expected an issue per violation, got %v", typed.Issues)
	}
}

func TestDecodeTemplate_RejectsMalformedDocuments(t *testing.T) {
	tests := map[string]string{
		"empty":  "   ",
		"scalar": "just words",
		"broken": "metadata: [unclosed",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeTemplate([]byte(doc), name+".yaml"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDecodeTemplate_SectionWithoutTypeFailsSchema(t *testing.T) {
	doc := `{
  "metadata": {"id": "t", "name": "T", "version": "1.0.0"},
  "layout": {},
  "capabilities": {"supportedSections": ["hero"]},
  "sections": [{"id": "hero"}]
}`
	_, err := DecodeTemplate([]byte(doc), "t.json")
	if !errors.Is(err, &rendererr.Error{Code: rendererr.CodeTemplateInvalid}) {
		t.Fatalf("expected TEMPLATE_INVALID, got %v", err)
	}
}

func TestDecodeProfile(t *testing.T) {
	doc := `
github:
  username: ada
  name: Ada Lovelace
personal:
  displayName:
    source: custom
    customName: Ada
techStack:
  items:
    - name: Go
      category: language
socials:
  - platform: github
    username: ada
customFields:
  pronoun: she
`
	profile, err := DecodeProfile([]byte(doc), "profile.yaml")
	if err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Username() != "ada" || profile.Name() != "Ada" {
		t.Fatalf("unexpected identity %q %q", profile.Username(), profile.Name())
	}
	want := []model.TechItem{{Name: "Go", Category: "language"}}
	if diff := cmp.Diff(want, profile.TechStack.Items); diff != "" {
		t.Fatalf("tech stack mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeProfile_ShapeViolation(t *testing.T) {
	_, err := DecodeProfile([]byte(`{"socials": [{"username": "ada"}]}`), "profile.json")
	typed, ok := rendererr.As(err)
	if !ok || typed.Code != rendererr.CodeProfileInvalid {
		t.Fatalf("expected PROFILE_INVALID, got %v", err)
	}
	if len(typed.Issues) == 0 {
		t.Fatalf("expected schema issues")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a/tiny.json":  {Data: []byte(jsonTemplate)},
		"README.md":    {Data: []byte("# not a template")},
		"b/other.yaml": {Data: []byte(yamlOther)},
	}

	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var ids []string
	for _, meta := range catalog.List() {
		ids = append(ids, meta.ID)
	}
	if diff := cmp.Diff([]string{"other", "tiny"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	entry, ok := catalog.Lookup("tiny")
	if !ok || entry.Source != "a/tiny.json" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

const yamlOther = `
metadata: {id: other, name: Other, version: "2.0.0"}
layout: {}
capabilities: {supportedSections: [divider]}
sections:
  - {id: line, type: divider}
`

func TestLoadFS_DuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"one.json": {Data: []byte(jsonTemplate)},
		"two.yaml": {Data: []byte(yamlTemplate)},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadFS_NilFilesystem(t *testing.T) {
	catalog, err := LoadFS(nil)
	if err != nil || catalog.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d entries, err %v", catalog.Len(), err)
	}
}

func TestCatalog_GetErrors(t *testing.T) {
	catalog, err := LoadFS(fstest.MapFS{"tiny.json": {Data: []byte(jsonTemplate)}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err = catalog.Get("missing")
	if typed, ok := rendererr.As(err); !ok || typed.Code != rendererr.CodeTemplateNotFound {
		t.Fatalf("expected TEMPLATE_NOT_FOUND, got %v", err)
	}

	_, err = catalog.GetVersion("tiny", "1.0.0")
	if typed, ok := rendererr.As(err); !ok || typed.Code != rendererr.CodeTemplateVersionMismatch {
		t.Fatalf("expected TEMPLATE_VERSION_MISMATCH, got %v", err)
	}

	if _, err := catalog.GetVersion("tiny", "0.1.0"); err != nil {
		t.Fatalf("expected matching version, got %v", err)
	}
	if err := catalog.Add(model.Template{Metadata: &model.Metadata{ID: "tiny"}}); err == nil {
		t.Fatalf("expected duplicate add to fail")
	}
}

func TestBuiltin(t *testing.T) {
	catalog, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	var ids []string
	for _, meta := range catalog.List() {
		ids = append(ids, meta.ID)
	}
	if diff := cmp.Diff([]string{"developer", "minimal", "showcase"}, ids); diff != "" {
		t.Fatalf("builtin ids mismatch (-want +got):\n%s", diff)
	}

	for _, id := range ids {
		tpl, err := catalog.Get(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if res := validation.ValidateTemplate(tpl); !res.Valid {
			t.Fatalf("builtin %s invalid: %v", id, res.Errors)
		}
		if res := validation.ValidateCompatibility(tpl); !res.Valid {
			t.Fatalf("builtin %s incompatible: %v", id, res.Errors)
		}
	}
}
