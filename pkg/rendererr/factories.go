package rendererr

import (
	"errors"
	"fmt"
	"strings"
)

func TemplateNotFound(templateID string) *Error {
	err := newError(CodeTemplateNotFound, false, fmt.Sprintf("Template %q not found", templateID))
	err.TemplateID = templateID
	return err
}

func TemplateInvalid(templateID, reason string) *Error {
	err := newError(CodeTemplateInvalid, false, fmt.Sprintf("Template %q is invalid: %s", templateID, reason))
	err.TemplateID = templateID
	return err
}

func TemplateVersionMismatch(templateID, expected, actual string) *Error {
	err := newError(CodeTemplateVersionMismatch, false,
		fmt.Sprintf("Template %q version mismatch: expected %s, got %s", templateID, expected, actual))
	err.TemplateID = templateID
	return err
}

// ValidationFailed aggregates every issue found by one validation phase.
func ValidationFailed(issues []string) *Error {
	msg := "Template validation failed"
	if len(issues) > 0 {
		msg += ": " + strings.Join(issues, "; ")
	}
	err := newError(CodeValidationFailed, false, msg)
	err.Issues = append([]string(nil), issues...)
	return err
}

func SectionUnsupported(sectionID, sectionType, templateID string) *Error {
	err := newError(CodeSectionUnsupported, true,
		fmt.Sprintf("Section type %q is not supported by template %q", sectionType, templateID))
	err.SectionID = sectionID
	err.SectionType = sectionType
	err.TemplateID = templateID
	return err
}

// SectionRenderFailed wraps an unexpected renderer failure. cause may be an
// error or any recovered panic value.
func SectionRenderFailed(sectionID, sectionType string, cause any) *Error {
	err := newError(CodeSectionRenderFailed, true,
		fmt.Sprintf("Failed to render section %q (%s): %s", sectionID, sectionType, stringify(cause)))
	err.SectionID = sectionID
	err.SectionType = sectionType
	if c, ok := cause.(error); ok {
		err.Cause = c
	}
	return err
}

func SectionDataInvalid(sectionID, sectionType, reason string) *Error {
	err := newError(CodeSectionDataInvalid, true,
		fmt.Sprintf("Section %q (%s) has invalid data: %s", sectionID, sectionType, reason))
	err.SectionID = sectionID
	err.SectionType = sectionType
	return err
}

func SectionLimitExceeded(count, limit int) *Error {
	return newError(CodeSectionLimitExceeded, false,
		fmt.Sprintf("Template declares %d sections, maximum is %d", count, limit))
}

// SectionRendererMissing reports a section type without a registered
// renderer. It is a wiring defect, so it never downgrades to a warning by
// itself.
func SectionRendererMissing(sectionID, sectionType string) *Error {
	err := newError(CodeSectionRendererMissing, false,
		fmt.Sprintf("No renderer registered for section type %q", sectionType))
	err.SectionID = sectionID
	err.SectionType = sectionType
	return err
}

func ProfileIncomplete(missing []string) *Error {
	err := newError(CodeProfileIncomplete, false,
		fmt.Sprintf("Profile is missing required fields: %s", strings.Join(missing, ", ")))
	err.Issues = append([]string(nil), missing...)
	return err
}

func ProfileInvalid(reason string) *Error {
	return newError(CodeProfileInvalid, false, "Profile is invalid: "+reason)
}

func GitHubUsernameRequired(sectionID, sectionType string) *Error {
	err := newError(CodeGitHubUsernameRequired, false,
		fmt.Sprintf("Section %q (%s) requires a GitHub username", sectionID, sectionType))
	err.SectionID = sectionID
	err.SectionType = sectionType
	err.Field = "github.username"
	return err
}

func AssetGenerationFailed(provider, reason string) *Error {
	return newError(CodeAssetGenerationFailed, true,
		fmt.Sprintf("Asset generation failed for provider %q: %s", provider, reason))
}

func AssetProviderUnavailable(provider string) *Error {
	return newError(CodeAssetProviderUnavailable, true, fmt.Sprintf("Asset provider %q is unavailable", provider))
}

func CapabilityNotSupported(capability, templateID string) *Error {
	err := newError(CodeCapabilityNotSupported, true,
		fmt.Sprintf("Capability %q is not supported by template %q", capability, templateID))
	err.TemplateID = templateID
	return err
}

func FeatureDisabled(feature, sectionID, sectionType string) *Error {
	err := newError(CodeFeatureDisabled, true, fmt.Sprintf("Feature %q is disabled for this template", feature))
	err.SectionID = sectionID
	err.SectionType = sectionType
	return err
}

// HookFailed records a lifecycle hook that panicked. Hooks are observational,
// so the failure is always recoverable.
func HookFailed(hook string, cause any) *Error {
	err := newError(CodeHookFailed, true, fmt.Sprintf("Hook %s failed: %s", hook, stringify(cause)))
	if c, ok := cause.(error); ok {
		err.Cause = c
	}
	return err
}

func Unknown(cause any) *Error {
	err := newError(CodeUnknown, false, "Unknown error: "+stringify(cause))
	if c, ok := cause.(error); ok {
		err.Cause = c
	}
	return err
}

// From returns err as an *Error, wrapping foreign errors as UNKNOWN_ERROR.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if typed, ok := As(err); ok {
		return typed
	}
	return Unknown(err)
}

func stringify(cause any) string {
	switch v := cause.(type) {
	case nil:
		return "unknown cause"
	case error:
		return v.Error()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var typed *Error
	if errors.As(err, &typed) && typed != nil {
		return typed, true
	}
	return nil, false
}

func classOf(err error) (Class, bool) {
	typed, ok := As(err)
	if !ok {
		return "", false
	}
	return typed.Class(), true
}

func IsTemplateError(err error) bool {
	class, ok := classOf(err)
	return ok && class == ClassTemplate
}

func IsSectionError(err error) bool {
	class, ok := classOf(err)
	return ok && class == ClassSection
}

func IsProfileError(err error) bool {
	class, ok := classOf(err)
	return ok && class == ClassProfile
}

func IsAssetError(err error) bool {
	class, ok := classOf(err)
	return ok && class == ClassAsset
}

func IsCapabilityError(err error) bool {
	class, ok := classOf(err)
	return ok && class == ClassCapability
}

// IsRecoverable reports whether err is an *Error marked recoverable. Foreign
// errors are never recoverable.
func IsRecoverable(err error) bool {
	typed, ok := As(err)
	return ok && typed.Recoverable
}

// HasCode reports whether any *Error in errs carries code.
func HasCode(errs []*Error, code Code) bool {
	for _, err := range errs {
		if err != nil && err.Code == code {
			return true
		}
	}
	return false
}

// Join combines errs into one error for callers that prefer a plain error.
func Join(errs []*Error) error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return errors.Join(out...)
}
