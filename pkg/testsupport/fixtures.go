package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/templates"
)

// FixedTime is the clock reading used by deterministic render fixtures.
var FixedTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// Clock returns FixedTime, for use with orchestrator.WithClock.
func Clock() time.Time {
	return FixedTime
}

// LoadTemplate reads a JSON or YAML template fixture. Testing helpers fail the
// test on error to keep contract tests concise.
func LoadTemplate(t *testing.T, path string) model.Template {
	t.Helper()

	tpl, err := LoadTemplateFromPath(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	return tpl
}

// LoadTemplateFromPath returns a template without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadTemplateFromPath(path string) (model.Template, error) {
	if path == "" {
		return model.Template{}, errors.New("testsupport: template path is required")
	}
	tpl, err := templates.LoadTemplateFile(path)
	if err != nil {
		return model.Template{}, fmt.Errorf("testsupport: load template: %w", err)
	}
	return tpl, nil
}

// LoadProfile reads a JSON or YAML profile fixture.
func LoadProfile(t *testing.T, path string) model.UserProfile {
	t.Helper()

	if path == "" {
		t.Fatalf("load profile: path is required")
	}
	profile, err := templates.LoadProfileFile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return profile
}

// BuiltinTemplate returns one of the embedded templates.
func BuiltinTemplate(t *testing.T, id string) model.Template {
	t.Helper()

	catalog, err := templates.Builtin()
	if err != nil {
		t.Fatalf("load builtin templates: %v", err)
	}
	tpl, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("builtin template: %v", err)
	}
	return tpl
}

// Profile returns a fully populated profile for tests that need every
// section to find data.
func Profile() model.UserProfile {
	return model.UserProfile{
		GitHub: model.GitHubIdentity{
			Username:  "ada",
			Name:      "Ada Lovelace",
			AvatarURL: "https://avatars.example.com/ada.png",
			Bio:       "First programmer.",
			Location:  "London",
		},
		Personal: model.PersonalInfo{
			DisplayName: model.DisplayName{Source: "custom", CustomName: "Ada"},
			Email:       "ada@example.com",
			Website:     "https://ada.example.com",
		},
		Professional: model.ProfessionalInfo{
			Title:   "Analyst",
			Company: "Analytical Engines",
			Experience: []model.Experience{
				{Company: "Analytical Engines", Role: "Analyst", StartDate: "1842", Current: true},
			},
			Education: []model.Education{
				{Institution: "Home schooling", Field: "Mathematics"},
			},
		},
		TechStack: model.TechStack{Items: []model.TechItem{
			{Name: "Go", Category: "language"},
			{Name: "PostgreSQL", Category: "database"},
			{Name: "Docker", Category: "tools"},
		}},
		Socials: []model.SocialLink{
			{Platform: "github", Username: "ada"},
			{Platform: "linkedin", Username: "ada-lovelace"},
		},
		Projects: []model.Project{
			{Name: "engine", Description: "Bernoulli numbers", Repo: "ada/engine", Language: "Go", Stars: 42, Featured: true},
			{Name: "notes", Description: "Sketches", Stars: 7},
		},
		Achievements: []model.Achievement{{Title: "Note G", Date: "1843"}},
		BlogPosts: []model.BlogPost{
			{Title: "On the engine", URL: "https://ada.example.com/engine", Date: "1843-09-01"},
		},
		Integrations: model.Integrations{
			Spotify:  model.SpotifyIntegration{UserID: "ada-spotify"},
			WakaTime: model.WakaTimeIntegration{Username: "ada"},
		},
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareJSON decodes both payloads and returns a cmp diff of the results,
// ignoring formatting differences.
func CompareJSON(t *testing.T, want, got []byte) string {
	t.Helper()

	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	return cmp.Diff(wantValue, gotValue)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
