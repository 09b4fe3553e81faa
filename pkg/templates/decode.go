package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
	"github.com/goliatone/go-readmegen/pkg/validation"
)

// DecodeTemplate parses a JSON or YAML template document, checks it against
// the template schema and decodes it. Schema violations are returned as a
// TEMPLATE_INVALID error listing every issue.
func DecodeTemplate(data []byte, source string) (model.Template, error) {
	raw, err := normaliseDocument(data, source)
	if err != nil {
		return model.Template{}, err
	}

	res, err := validation.ValidateDocument(templateSchema, raw)
	if err != nil {
		return model.Template{}, fmt.Errorf("templates: %s: %w", source, err)
	}
	if !res.Valid {
		return model.Template{}, invalidTemplate(documentID(raw, source), res)
	}

	var tpl model.Template
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return model.Template{}, rendererr.TemplateInvalid(documentID(raw, source), err.Error())
	}
	return tpl, nil
}

// DecodeProfile parses a JSON or YAML profile document. Shape violations are
// returned as a PROFILE_INVALID error.
func DecodeProfile(data []byte, source string) (model.UserProfile, error) {
	raw, err := normaliseDocument(data, source)
	if err != nil {
		return model.UserProfile{}, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.UserProfile{}, rendererr.ProfileInvalid(err.Error())
	}
	res, err := validation.ValidateValue(profileSchema, doc)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("templates: %s: %w", source, err)
	}
	if !res.Valid {
		invalid := rendererr.ProfileInvalid(strings.Join(res.Messages(), "; "))
		invalid.Issues = res.Messages()
		return model.UserProfile{}, invalid
	}

	var profile model.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return model.UserProfile{}, rendererr.ProfileInvalid(err.Error())
	}
	return profile, nil
}

// LoadTemplateFile reads and decodes a template document from disk.
func LoadTemplateFile(path string) (model.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Template{}, fmt.Errorf("templates: read %s: %w", path, err)
	}
	return DecodeTemplate(data, filepath.Base(path))
}

// LoadProfileFile reads and decodes a profile document from disk.
func LoadProfileFile(path string) (model.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("templates: read profile %s: %w", path, err)
	}
	return DecodeProfile(data, filepath.Base(path))
}

// normaliseDocument returns the document as JSON. JSON input is returned
// untouched; anything else is parsed as YAML and re-encoded.
func normaliseDocument(data []byte, source string) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("templates: file %s is empty", source)
	}
	if json.Valid(trimmed) {
		return trimmed, nil
	}

	var doc any
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("templates: parse %s: invalid JSON or YAML: %w", source, err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("templates: parse %s: document must be a mapping", source)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %s: %w", source, err)
	}
	return raw, nil
}

// documentID reports metadata.id when the document carries one, falling back
// to the source name for error messages.
func documentID(raw []byte, source string) string {
	var head struct {
		Metadata struct {
			ID string `json:"id"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &head); err == nil {
		if id := strings.TrimSpace(head.Metadata.ID); id != "" {
			return id
		}
	}
	return source
}

func invalidTemplate(id string, res validation.SchemaResult) *rendererr.Error {
	issues := res.Messages()
	err := rendererr.TemplateInvalid(id, strings.Join(issues, "; "))
	err.Issues = issues
	return err
}
