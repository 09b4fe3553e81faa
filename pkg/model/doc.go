// Package model defines the inputs of the rendering pipeline: templates, their
// sections and the user profile rendered through them.
//
// A Section's Content is a sealed union of twenty variants, one per
// SectionType. Each variant pairs its own Data and Config structs, and the
// section type is derived from the variant, so a section can never carry data
// of one type and config of another. JSON documents use the shape
// {"type": ..., "data": {...}, "config": {...}}; unknown types decode into
// UnknownContent so validation and dispatch can report them instead of losing
// them.
//
// Sections pull from their own Data first and fall back to the equivalent
// UserProfile field when their data is empty.
package model
