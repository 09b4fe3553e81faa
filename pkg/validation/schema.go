package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaIssue is a single JSON schema violation with its dotted field path.
type SchemaIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i SchemaIssue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// SchemaResult captures the outcome of a document schema check.
type SchemaResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// Messages flattens the issues for use with rendererr.ValidationFailed.
func (r SchemaResult) Messages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.String())
	}
	return out
}

// ValidateDocument checks a raw JSON document against a JSON schema.
func ValidateDocument(schema, raw []byte) (SchemaResult, error) {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return SchemaResult{}, fmt.Errorf("validation: schema check: %w", err)
	}
	return schemaResult(res), nil
}

// ValidateValue checks an already decoded value, such as a YAML document
// converted to maps, against a JSON schema.
func ValidateValue(schema []byte, value any) (SchemaResult, error) {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewGoLoader(value))
	if err != nil {
		return SchemaResult{}, fmt.Errorf("validation: schema check: %w", err)
	}
	return schemaResult(res), nil
}

func schemaResult(res *gojsonschema.Result) SchemaResult {
	if res.Valid() {
		return SchemaResult{Valid: true}
	}
	out := SchemaResult{Valid: false}
	for _, e := range res.Errors() {
		out.Issues = append(out.Issues, SchemaIssue{
			Field:   fieldPath(e.Field()),
			Message: strings.TrimSpace(e.Description()),
		})
	}
	return out
}

func fieldPath(field string) string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "(root)" {
		return ""
	}
	return strings.TrimPrefix(trimmed, "(root).")
}
