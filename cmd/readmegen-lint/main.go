package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/templates"
	"github.com/goliatone/go-readmegen/pkg/validation"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint README template documents. With no paths, the built-in templates are linted.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	violations, err := lintPaths(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}
	if report(os.Stderr, violations) {
		os.Exit(1)
	}
}

func lintPaths(paths []string) ([]violation, error) {
	var violations []violation
	if len(paths) == 0 {
		fsys := templates.EmbeddedFS()
		err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil || entry.IsDir() {
				return walkErr
			}
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			violations = append(violations, lintDocument("builtin/"+path, data)...)
			return nil
		})
		return violations, err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		violations = append(violations, lintDocument(path, data)...)
	}
	return violations, nil
}

// report prints violations sorted by file, location and message, and reports
// whether any were found.
func report(w io.Writer, violations []violation) bool {
	if len(violations) == 0 {
		return false
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return true
}

func lintDocument(file string, data []byte) []violation {
	tpl, err := templates.DecodeTemplate(data, file)
	if err != nil {
		var typed *rendererr.Error
		if errors.As(err, &typed) && len(typed.Issues) > 0 {
			result := make([]violation, 0, len(typed.Issues))
			for _, issue := range typed.Issues {
				location, message := splitIssue(issue)
				result = append(result, violation{file: file, location: location, message: message})
			}
			return result
		}
		return []violation{{file: file, location: "document", message: err.Error()}}
	}

	var result []violation
	for _, res := range []validation.Result{validation.ValidateTemplate(tpl), validation.ValidateCompatibility(tpl)} {
		for _, failure := range res.Errors {
			location := "template"
			if failure.SectionID != "" {
				location = formatLocation([]string{"sections", failure.SectionID})
			}
			result = append(result, violation{file: file, location: location, message: failure.Message})
		}
	}
	result = append(result, lintSections(file, tpl)...)
	result = append(result, lintSlots(file, tpl)...)
	return result
}

func lintSections(file string, tpl model.Template) []violation {
	var result []violation
	seen := make(map[string]bool, len(tpl.Sections))
	for i, section := range tpl.Sections {
		id := strings.TrimSpace(section.ID)
		location := formatLocation([]string{"sections", fmt.Sprint(i)})
		if id == "" {
			result = append(result, violation{file: file, location: location, message: "section id is empty"})
			continue
		}
		if seen[id] {
			result = append(result, violation{file: file, location: location, message: fmt.Sprintf("duplicate section id %q", id)})
		}
		seen[id] = true
		if !section.Type().Known() {
			result = append(result, violation{file: file, location: location, message: fmt.Sprintf("unknown section type %q", section.Type())})
		}
	}
	return result
}

func lintSlots(file string, tpl model.Template) []violation {
	if tpl.Layout == nil {
		return nil
	}
	ids := make(map[string]bool, len(tpl.Sections))
	types := make(map[model.SectionType]bool, len(tpl.Sections))
	for _, section := range tpl.Sections {
		ids[section.ID] = true
		types[section.Type()] = true
	}

	var result []violation
	for i, slot := range tpl.Layout.Slots {
		location := formatLocation([]string{"layout", "slots", fmt.Sprint(i)})
		switch {
		case slot.SectionID != "" && !ids[slot.SectionID]:
			result = append(result, violation{file: file, location: location, message: fmt.Sprintf("slot references unknown section %q", slot.SectionID)})
		case slot.SectionID == "" && slot.Type == "":
			result = append(result, violation{file: file, location: location, message: "slot names neither a section id nor a type"})
		case slot.SectionID == "" && !types[slot.Type]:
			result = append(result, violation{file: file, location: location, message: fmt.Sprintf("slot type %q matches no section", slot.Type)})
		}
	}
	return result
}

func splitIssue(issue string) (string, string) {
	field, message, ok := strings.Cut(issue, ": ")
	if !ok || strings.ContainsAny(field, " ") {
		return "document", issue
	}
	return formatLocation(strings.Split(field, ".")), message
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
