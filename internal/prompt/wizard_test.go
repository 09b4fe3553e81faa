package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/model"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int
	prompts   []string
	inputPos  int
	selectPos int
	multiPos  int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func wizardTemplate() model.Template {
	return model.Template{
		Metadata:     &model.Metadata{ID: "t", Name: "T", Version: "1.0.0"},
		Layout:       &model.Layout{},
		Capabilities: &model.Capabilities{SupportedSections: model.AllSectionTypes()},
		Sections: []model.Section{
			{ID: "hero", Enabled: true, Content: &model.HeroContent{}},
			{ID: "stats", Enabled: true, Title: "Stats", Content: &model.GitHubStatsContent{}},
			{ID: "quote", Enabled: false, Content: &model.QuoteContent{}},
		},
	}
}

func TestChooseTemplate(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	available := []model.Metadata{{ID: "developer", Name: "Developer"}, {ID: "minimal", Name: "Minimal"}}

	id, err := NewWizard(driver).ChooseTemplate(context.Background(), available, "developer")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if id != "minimal" {
		t.Fatalf("expected minimal, got %q", id)
	}

	driver = &stubDriver{selectIdx: []int{-1}}
	if _, err := NewWizard(driver).ChooseTemplate(context.Background(), available, ""); err == nil {
		t.Fatalf("expected out of range selection to fail")
	}
}

func TestChooseSections_TogglesWithoutMutatingInput(t *testing.T) {
	tpl := wizardTemplate()
	driver := &stubDriver{multiIdx: [][]int{{0, 2}}}

	out, err := NewWizard(driver).ChooseSections(context.Background(), tpl)
	if err != nil {
		t.Fatalf("choose sections: %v", err)
	}

	var got []bool
	for _, section := range out.Sections {
		got = append(got, section.Enabled)
	}
	if diff := cmp.Diff([]bool{true, false, true}, got); diff != "" {
		t.Fatalf("enabled flags mismatch (-want +got):\n%s", diff)
	}
	if !tpl.Sections[1].Enabled || tpl.Sections[2].Enabled {
		t.Fatalf("input template was modified")
	}
}

func TestCompleteProfile_PromptsForMissingFields(t *testing.T) {
	driver := &stubDriver{inputs: []string{" ada ", "Ada"}}

	profile, err := NewWizard(driver).CompleteProfile(context.Background(), wizardTemplate(), model.UserProfile{})
	if err != nil {
		t.Fatalf("complete profile: %v", err)
	}
	if profile.Username() != "ada" {
		t.Fatalf("expected trimmed username, got %q", profile.Username())
	}
	if profile.Name() != "Ada" {
		t.Fatalf("expected display name, got %q", profile.Name())
	}
	if diff := cmp.Diff([]string{"GitHub username", "Display name"}, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteProfile_NothingMissing(t *testing.T) {
	driver := &stubDriver{}
	profile := model.UserProfile{GitHub: model.GitHubIdentity{Username: "ada", Name: "Ada Lovelace"}}

	out, err := NewWizard(driver).CompleteProfile(context.Background(), wizardTemplate(), profile)
	if err != nil {
		t.Fatalf("complete profile: %v", err)
	}
	if out.Username() != "ada" || len(driver.prompts) != 0 {
		t.Fatalf("expected no prompts, got %v", driver.prompts)
	}
}

func TestCompleteProfile_RejectsBlankUsername(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  "}}
	if _, err := NewWizard(driver).CompleteProfile(context.Background(), wizardTemplate(), model.UserProfile{}); err == nil {
		t.Fatalf("expected validator error")
	}
}

func TestIndicesOf(t *testing.T) {
	got := indicesOf([]string{"a", "b", "c"}, []string{"c", "a", "x"})
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Fatalf("indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices([]string{"a", "b"}, []int{1, 5})); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}
