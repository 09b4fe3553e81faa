// Package rendererr defines the closed error taxonomy shared by validation,
// section rendering and orchestration. Every failure is an *Error carrying a
// Code, a human readable Message and a Recoverable flag; recoverable errors can
// be downgraded into Warnings so a render continues past them.
package rendererr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Code identifies an error variant.
type Code string

const (
	CodeTemplateNotFound        Code = "TEMPLATE_NOT_FOUND"
	CodeTemplateInvalid         Code = "TEMPLATE_INVALID"
	CodeTemplateVersionMismatch Code = "TEMPLATE_VERSION_MISMATCH"

	CodeSectionUnsupported     Code = "SECTION_UNSUPPORTED"
	CodeSectionRenderFailed    Code = "SECTION_RENDER_FAILED"
	CodeSectionDataInvalid     Code = "SECTION_DATA_INVALID"
	CodeSectionLimitExceeded   Code = "SECTION_LIMIT_EXCEEDED"
	CodeSectionRendererMissing Code = "SECTION_RENDERER_MISSING"

	CodeProfileIncomplete      Code = "PROFILE_INCOMPLETE"
	CodeProfileInvalid         Code = "PROFILE_INVALID"
	CodeGitHubUsernameRequired Code = "GITHUB_USERNAME_REQUIRED"

	CodeAssetGenerationFailed    Code = "ASSET_GENERATION_FAILED"
	CodeAssetProviderUnavailable Code = "ASSET_PROVIDER_UNAVAILABLE"

	CodeCapabilityNotSupported Code = "CAPABILITY_NOT_SUPPORTED"
	CodeFeatureDisabled        Code = "FEATURE_DISABLED"

	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeHookFailed       Code = "HOOK_FAILED"
	CodeUnknown          Code = "UNKNOWN_ERROR"
)

// Class groups codes so callers can branch without matching every code.
type Class string

const (
	ClassTemplate   Class = "template"
	ClassSection    Class = "section"
	ClassProfile    Class = "profile"
	ClassAsset      Class = "asset"
	ClassCapability Class = "capability"
	ClassGeneral    Class = "general"
)

var codeClasses = map[Code]Class{
	CodeTemplateNotFound:         ClassTemplate,
	CodeTemplateInvalid:          ClassTemplate,
	CodeTemplateVersionMismatch:  ClassTemplate,
	CodeSectionUnsupported:       ClassSection,
	CodeSectionRenderFailed:      ClassSection,
	CodeSectionDataInvalid:       ClassSection,
	CodeSectionLimitExceeded:     ClassSection,
	CodeSectionRendererMissing:   ClassSection,
	CodeProfileIncomplete:        ClassProfile,
	CodeProfileInvalid:           ClassProfile,
	CodeGitHubUsernameRequired:   ClassProfile,
	CodeAssetGenerationFailed:    ClassAsset,
	CodeAssetProviderUnavailable: ClassAsset,
	CodeCapabilityNotSupported:   ClassCapability,
	CodeFeatureDisabled:          ClassCapability,
	CodeValidationFailed:         ClassGeneral,
	CodeHookFailed:               ClassGeneral,
	CodeUnknown:                  ClassGeneral,
}

// Class returns the class a code belongs to. Unknown codes are general.
func (c Code) Class() Class {
	if class, ok := codeClasses[c]; ok {
		return class
	}
	return ClassGeneral
}

// Codes lists every known code, sorted.
func Codes() []Code {
	out := make([]Code, 0, len(codeClasses))
	for code := range codeClasses {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// now stamps errors; tests may swap it.
var now = time.Now

// Error is the single error shape used across the pipeline.
type Error struct {
	Code        Code      `json:"code"`
	Message     string    `json:"message"`
	Recoverable bool      `json:"recoverable"`
	Timestamp   time.Time `json:"timestamp"`

	SectionID   string   `json:"sectionId,omitempty"`
	SectionType string   `json:"sectionType,omitempty"`
	TemplateID  string   `json:"templateId,omitempty"`
	Field       string   `json:"field,omitempty"`
	Issues      []string `json:"issues,omitempty"`

	Cause error `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.SectionID != "" {
		fmt.Fprintf(&b, " (section %s)", e.SectionID)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another *Error by code so errors.Is(err, &Error{Code: X}) works.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || other == nil || e == nil {
		return false
	}
	return other.Code != "" && other.Code == e.Code
}

// Class returns the error's class.
func (e *Error) Class() Class {
	if e == nil {
		return ClassGeneral
	}
	return e.Code.Class()
}

// Warning is a recoverable failure recorded without aborting a render.
type Warning struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	SectionID string `json:"sectionId,omitempty"`
}

// AsWarning converts the error into a Warning.
func (e *Error) AsWarning() Warning {
	if e == nil {
		return Warning{Code: CodeUnknown, Message: "unknown error"}
	}
	return Warning{Code: e.Code, Message: e.Message, SectionID: e.SectionID}
}

func newError(code Code, recoverable bool, message string) *Error {
	return &Error{
		Code:        code,
		Message:     message,
		Recoverable: recoverable,
		Timestamp:   now(),
	}
}
