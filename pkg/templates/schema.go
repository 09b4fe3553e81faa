package templates

import (
	_ "embed"
)

//go:embed schema/template.schema.json
var templateSchema []byte

//go:embed schema/profile.schema.json
var profileSchema []byte

// TemplateSchema returns a copy of the JSON schema template documents are
// checked against.
func TemplateSchema() []byte {
	return append([]byte(nil), templateSchema...)
}

// ProfileSchema returns a copy of the JSON schema for profile documents.
func ProfileSchema() []byte {
	return append([]byte(nil), profileSchema...)
}
