package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

func section(id string, content model.Content, enabled bool) model.Section {
	return model.Section{ID: id, Enabled: enabled, Content: content}
}

func validTemplate(sections ...model.Section) model.Template {
	return model.Template{
		Metadata: &model.Metadata{ID: "minimal", Name: "Minimal", Version: "1.0.0"},
		Layout:   &model.Layout{},
		Capabilities: &model.Capabilities{
			SupportedSections: model.AllSectionTypes(),
			MaxSections:       10,
		},
		Sections: sections,
	}
}

func codes(errs []*rendererr.Error) []rendererr.Code {
	out := make([]rendererr.Code, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Code)
	}
	return out
}

func TestValidateTemplate_AggregatesEveryMissingField(t *testing.T) {
	res := ValidateTemplate(model.Template{})
	if res.Valid {
		t.Fatalf("expected invalid template")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one aggregated error, got %d", len(res.Errors))
	}
	err := res.Errors[0]
	if err.Code != rendererr.CodeValidationFailed {
		t.Fatalf("expected VALIDATION_FAILED, got %s", err.Code)
	}
	want := []string{"Missing metadata", "Missing layout", "Missing capabilities"}
	if diff := cmp.Diff(want, err.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if err.Recoverable {
		t.Fatalf("validation failures must not be recoverable")
	}
}

func TestValidateTemplate_Valid(t *testing.T) {
	if res := ValidateTemplate(validTemplate()); !res.Valid {
		t.Fatalf("expected valid template, got %v", res.Errors)
	}
}

func TestValidateTemplate_OnlyStructuralFieldsAreRequired(t *testing.T) {
	tpl := validTemplate()
	tpl.Metadata = &model.Metadata{}
	if res := ValidateTemplate(tpl); !res.Valid {
		t.Fatalf("blank metadata fields should pass the structural check, got %v", res.Errors)
	}
}

func TestValidateCompatibility_ReportsEachSection(t *testing.T) {
	tpl := validTemplate(
		section("hero", &model.HeroContent{}, true),
		section("stats", &model.GitHubStatsContent{}, false),
		section("tunes", &model.SpotifyContent{}, true),
	)
	tpl.Capabilities.SupportedSections = []model.SectionType{model.SectionHero}
	tpl.Capabilities.MaxSections = 2

	res := ValidateCompatibility(tpl)
	if res.Valid {
		t.Fatalf("expected incompatibility")
	}
	want := []rendererr.Code{
		rendererr.CodeSectionUnsupported,
		rendererr.CodeSectionUnsupported,
		rendererr.CodeSectionLimitExceeded,
	}
	if diff := cmp.Diff(want, codes(res.Errors)); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
	if res.Errors[0].SectionID != "stats" || res.Errors[1].SectionID != "tunes" {
		t.Fatalf("expected section ids on errors, got %q and %q", res.Errors[0].SectionID, res.Errors[1].SectionID)
	}
}

func TestValidateProfile_AggregatesDistinctPaths(t *testing.T) {
	tpl := validTemplate(
		section("stats", &model.GitHubStatsContent{}, true),
		section("graph", &model.ContributionsContent{}, true),
		section("pins", &model.PinnedReposContent{}, false),
		section("hero", &model.HeroContent{}, true),
	)

	res := ValidateProfile(tpl, model.UserProfile{})
	if res.Valid {
		t.Fatalf("expected incomplete profile")
	}
	if len(res.Errors) != 1 || res.Errors[0].Code != rendererr.CodeProfileIncomplete {
		t.Fatalf("expected single PROFILE_INCOMPLETE, got %v", codes(res.Errors))
	}
	if diff := cmp.Diff([]string{"github.username"}, res.Errors[0].Issues); diff != "" {
		t.Fatalf("missing paths mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateProfile_IgnoresDisabledSections(t *testing.T) {
	tpl := validTemplate(section("stats", &model.GitHubStatsContent{}, false))
	if res := ValidateProfile(tpl, model.UserProfile{}); !res.Valid {
		t.Fatalf("disabled sections should not require fields, got %v", res.Errors)
	}
}

func TestValidateProfile_BlankUsernameIsMissing(t *testing.T) {
	tpl := validTemplate(section("stats", &model.GitHubStatsContent{}, true))
	profile := model.UserProfile{GitHub: model.GitHubIdentity{Username: "   "}}
	if res := ValidateProfile(tpl, profile); res.Valid {
		t.Fatalf("expected blank username to be treated as missing")
	}
	profile.GitHub.Username = "octocat"
	if res := ValidateProfile(tpl, profile); !res.Valid {
		t.Fatalf("expected valid profile, got %v", res.Errors)
	}
}

func TestValidate_ShortCircuitsInOrder(t *testing.T) {
	tpl := validTemplate(section("stats", &model.GitHubStatsContent{}, true))
	tpl.Capabilities.SupportedSections = nil

	res := Validate(tpl, model.UserProfile{})
	if diff := cmp.Diff([]rendererr.Code{rendererr.CodeSectionUnsupported}, codes(res.Errors)); diff != "" {
		t.Fatalf("expected compatibility phase to stop validation (-want +got):\n%s", diff)
	}

	tpl.Layout = nil
	res = Validate(tpl, model.UserProfile{})
	if diff := cmp.Diff([]rendererr.Code{rendererr.CodeValidationFailed}, codes(res.Errors)); diff != "" {
		t.Fatalf("expected template phase to stop validation (-want +got):\n%s", diff)
	}
}

func TestValidate_DoesNotMutateInputs(t *testing.T) {
	tpl := validTemplate(section("stats", &model.GitHubStatsContent{Data: model.GitHubStatsData{Username: "x"}}, true))
	profile := model.UserProfile{CustomFields: map[string]string{"role": "dev"}}

	Validate(tpl, profile)

	if profile.CustomFields["role"] != "dev" || len(tpl.Sections) != 1 || tpl.Sections[0].ID != "stats" {
		t.Fatalf("validation mutated inputs")
	}
}

func TestLookup(t *testing.T) {
	doc := map[string]any{"github": map[string]any{"username": "octocat"}}
	if got := Lookup(doc, "github.username"); got != "octocat" {
		t.Fatalf("expected octocat, got %v", got)
	}
	if got := Lookup(doc, "github.username.deeper"); got != nil {
		t.Fatalf("expected nil for path through a leaf, got %v", got)
	}
	if got := Lookup(doc, "personal.bio"); got != nil {
		t.Fatalf("expected nil for missing path, got %v", got)
	}
}

func TestValidateDocument_ReportsFieldPaths(t *testing.T) {
	schema := []byte(`{
  "type": "object",
  "required": ["metadata"],
  "properties": {
    "metadata": {
      "type": "object",
      "properties": { "id": { "type": "string" } }
    }
  }
}`)

	res, err := ValidateDocument(schema, []byte(`{"metadata": {"id": 7}}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.Valid {
		t.Fatalf("expected schema violation")
	}
	if got := res.Issues[0].Field; got != "metadata.id" {
		t.Fatalf("expected field metadata.id, got %q", got)
	}

	res, err = ValidateValue(schema, map[string]any{"metadata": map[string]any{"id": "ok"}})
	if err != nil {
		t.Fatalf("validate value: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid document, got %v", res.Messages())
	}
}
