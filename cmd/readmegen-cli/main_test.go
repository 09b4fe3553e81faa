package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/internal/prompt"
)

const profileYAML = `
github:
  username: ada
personal:
  displayName:
    customName: Ada
techStack:
  items:
    - name: Go
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

type decodedResult struct {
	Success bool `json:"success"`
	Output  struct {
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
	} `json:"output"`
	Errors []struct {
		Code string `json:"code"`
	} `json:"errors"`
}

func decode(t *testing.T, data []byte) decodedResult {
	t.Helper()
	var out decodedResult
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode output %q: %v", data, err)
	}
	return out
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-list"}, &stdout, &stderr, nil); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	for _, id := range []string{"developer", "minimal", "showcase"} {
		if !strings.Contains(stdout.String(), id) {
			t.Fatalf("expected %s in listing:\n%s", id, stdout.String())
		}
	}
}

func TestRun_BuiltinTemplate(t *testing.T) {
	profile := writeFile(t, "profile.yaml", profileYAML)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-template", "minimal", "-profile", profile}, &stdout, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}

	result := decode(t, stdout.Bytes())
	var ids []string
	for _, section := range result.Output.Sections {
		ids = append(ids, section.ID)
	}
	if diff := cmp.Diff([]string{"hero", "about", "tech-stack", "socials"}, ids); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_TemplateFileAndOutput(t *testing.T) {
	tpl := writeFile(t, "tpl.json", `{
  "metadata": {"id": "file", "name": "File", "version": "1.0.0"},
  "layout": {},
  "capabilities": {"supportedSections": ["quote"]},
  "sections": [{"id": "q", "type": "quote", "data": {"text": "hi"}}]
}`)
	out := filepath.Join(t.TempDir(), "out.json")
	var stdout, stderr bytes.Buffer

	if code := run(context.Background(), []string{"-template", tpl, "-output", out}, &stdout, &stderr, nil); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if result := decode(t, data); !result.Success || result.Output.Sections[0].ID != "q" {
		t.Fatalf("unexpected result %+v", result)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
}

func TestRun_ValidationFailureExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-template", "developer"}, &stdout, &stderr, nil)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	result := decode(t, stdout.Bytes())
	if result.Success || len(result.Errors) != 1 || result.Errors[0].Code != "PROFILE_INCOMPLETE" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRun_UnknownTemplate(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-template", "nope"}, &stdout, &stderr, nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "TEMPLATE_NOT_FOUND") {
		t.Fatalf("expected TEMPLATE_NOT_FOUND on stderr, got %q", stderr.String())
	}
}

type scriptedDriver struct {
	selectIdx int
	sections  []int
	inputs    []string
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	return value, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return d.selectIdx, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return d.sections, nil
}

func TestRun_Interactive(t *testing.T) {
	// developer is first in the sorted listing; keep hero and stats.
	driver := &scriptedDriver{selectIdx: 0, sections: []int{0, 3}, inputs: []string{"ada", "Ada"}}
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-interactive"}, &stdout, &stderr, driver)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	var ids []string
	for _, section := range decode(t, stdout.Bytes()).Output.Sections {
		ids = append(ids, section.ID)
	}
	if diff := cmp.Diff([]string{"hero", "stats"}, ids); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}
