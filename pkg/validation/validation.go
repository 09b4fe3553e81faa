package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

// Result is the outcome of a validation run. Errors is empty when Valid.
type Result struct {
	Valid  bool               `json:"valid"`
	Errors []*rendererr.Error `json:"errors,omitempty"`
}

func passed() Result { return Result{Valid: true} }

func failed(errs ...*rendererr.Error) Result {
	return Result{Valid: false, Errors: errs}
}

// RequiredFields maps section types to the dotted profile paths they cannot
// render without.
var RequiredFields = map[model.SectionType][]string{
	model.SectionGitHubStats:   {"github.username"},
	model.SectionContributions: {"github.username"},
	model.SectionPinnedRepos:   {"github.username"},
}

// Validate runs the template, compatibility and profile phases in order and
// stops at the first failing phase.
func Validate(tpl model.Template, profile model.UserProfile) Result {
	if res := ValidateTemplate(tpl); !res.Valid {
		return res
	}
	if res := ValidateCompatibility(tpl); !res.Valid {
		return res
	}
	return ValidateProfile(tpl, profile)
}

// ValidateTemplate reports every missing structural field in a single
// VALIDATION_FAILED error.
func ValidateTemplate(tpl model.Template) Result {
	var issues []string
	if tpl.Metadata == nil {
		issues = append(issues, "Missing metadata")
	}
	if tpl.Layout == nil {
		issues = append(issues, "Missing layout")
	}
	if tpl.Capabilities == nil {
		issues = append(issues, "Missing capabilities")
	}
	if len(issues) > 0 {
		return failed(rendererr.ValidationFailed(issues))
	}
	return passed()
}

// ValidateCompatibility checks each section against the template's declared
// capabilities. Every violation is reported separately.
func ValidateCompatibility(tpl model.Template) Result {
	caps := tpl.Capabilities
	if caps == nil {
		return failed(rendererr.ValidationFailed([]string{"Missing capabilities"}))
	}

	var errs []*rendererr.Error
	templateID := tpl.ID()
	for _, section := range tpl.Sections {
		if !caps.Supports(section.Type()) {
			errs = append(errs, rendererr.SectionUnsupported(section.ID, string(section.Type()), templateID))
		}
	}
	if caps.MaxSections > 0 && len(tpl.Sections) > caps.MaxSections {
		errs = append(errs, rendererr.SectionLimitExceeded(len(tpl.Sections), caps.MaxSections))
	}
	if len(errs) > 0 {
		return failed(errs...)
	}
	return passed()
}

// ValidateProfile resolves the required fields of every enabled section and
// aggregates the distinct missing paths into one PROFILE_INCOMPLETE error.
func ValidateProfile(tpl model.Template, profile model.UserProfile) Result {
	var doc map[string]any
	seen := make(map[string]struct{})
	var missing []string

	for _, section := range tpl.Sections {
		if !section.Enabled {
			continue
		}
		paths := RequiredFields[section.Type()]
		if len(paths) == 0 {
			continue
		}
		if doc == nil {
			var err error
			doc, err = profileDocument(profile)
			if err != nil {
				return failed(rendererr.ProfileInvalid(err.Error()))
			}
		}
		for _, path := range paths {
			if _, dup := seen[path]; dup {
				continue
			}
			if present(Lookup(doc, path)) {
				continue
			}
			seen[path] = struct{}{}
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return failed(rendererr.ProfileIncomplete(missing))
	}
	return passed()
}

func profileDocument(profile model.UserProfile) (map[string]any, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("validation: encode profile: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("validation: decode profile: %w", err)
	}
	return doc, nil
}

// Lookup resolves a dotted path such as "github.username" against a decoded
// JSON document. Missing segments resolve to nil.
func Lookup(doc map[string]any, path string) any {
	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
