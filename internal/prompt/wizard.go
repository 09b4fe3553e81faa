package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/validation"
)

// Wizard walks a user through template selection, section toggling and the
// profile fields the chosen sections require.
type Wizard struct {
	driver Driver
}

// NewWizard binds a wizard to driver. A nil driver uses survey prompts.
func NewWizard(driver Driver) *Wizard {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Wizard{driver: driver}
}

// ChooseTemplate asks for one of the listed templates and returns its id.
func (w *Wizard) ChooseTemplate(ctx context.Context, available []model.Metadata, current string) (string, error) {
	if len(available) == 0 {
		return "", errors.New("prompt: no templates available")
	}
	options := make([]string, len(available))
	defaultIndex := 0
	for i, meta := range available {
		options[i] = templateLabel(meta)
		if meta.ID == current {
			defaultIndex = i
		}
	}
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         "Built-in templates shipped with readmegen",
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(available) {
		return "", fmt.Errorf("prompt: template selection %d out of range", idx)
	}
	return available[idx].ID, nil
}

// ChooseSections asks which sections to keep and returns a copy of tpl with
// the Enabled flags updated. The template passed in is not modified.
func (w *Wizard) ChooseSections(ctx context.Context, tpl model.Template) (model.Template, error) {
	if len(tpl.Sections) == 0 {
		return tpl, nil
	}
	options := make([]string, len(tpl.Sections))
	var defaults []int
	for i, section := range tpl.Sections {
		options[i] = sectionLabel(section)
		if section.Enabled {
			defaults = append(defaults, i)
		}
	}
	picked, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Sections",
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return model.Template{}, err
	}

	keep := make(map[int]bool, len(picked))
	for _, idx := range picked {
		keep[idx] = true
	}
	out := tpl
	out.Sections = make([]model.Section, len(tpl.Sections))
	for i, section := range tpl.Sections {
		section.Enabled = keep[i]
		out.Sections[i] = section
	}
	return out, nil
}

// profileFields maps required profile paths to the prompt that fills them.
var profileFields = map[string]struct {
	message string
	set     func(*model.UserProfile, string)
}{
	"github.username": {
		message: "GitHub username",
		set:     func(p *model.UserProfile, v string) { p.GitHub.Username = v },
	},
}

// CompleteProfile prompts for every profile field the enabled sections of tpl
// require but profile lacks, and offers a display name when the profile only
// has a username to show.
func (w *Wizard) CompleteProfile(ctx context.Context, tpl model.Template, profile model.UserProfile) (model.UserProfile, error) {
	res := validation.ValidateProfile(tpl, profile)
	for _, failure := range res.Errors {
		if failure.Code != rendererr.CodeProfileIncomplete {
			return model.UserProfile{}, failure
		}
		for _, path := range failure.Issues {
			field, ok := profileFields[path]
			if !ok {
				return model.UserProfile{}, fmt.Errorf("prompt: no prompt for required field %q", path)
			}
			value, err := w.driver.Input(ctx, InputConfig{
				Message:   field.message,
				Validator: required,
			})
			if err != nil {
				return model.UserProfile{}, err
			}
			field.set(&profile, strings.TrimSpace(value))
		}
	}

	if strings.TrimSpace(profile.Personal.DisplayName.CustomName) == "" && strings.TrimSpace(profile.GitHub.Name) == "" {
		name, err := w.driver.Input(ctx, InputConfig{Message: "Display name", Help: "Leave empty to skip"})
		if err != nil {
			return model.UserProfile{}, err
		}
		if name = strings.TrimSpace(name); name != "" {
			profile.Personal.DisplayName = model.DisplayName{Source: "custom", CustomName: name}
		}
	}
	return profile, nil
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func templateLabel(meta model.Metadata) string {
	if meta.Description == "" {
		return fmt.Sprintf("%s (%s)", meta.Name, meta.ID)
	}
	return fmt.Sprintf("%s (%s) - %s", meta.Name, meta.ID, meta.Description)
}

func sectionLabel(section model.Section) string {
	if section.Title == "" || section.Title == section.ID {
		return fmt.Sprintf("%s [%s]", section.ID, section.Type())
	}
	return fmt.Sprintf("%s: %s [%s]", section.ID, section.Title, section.Type())
}
