// Package sections maps every section type to the renderer that turns a
// section and a profile into blocks.
//
// NewRegistry checks at construction that the built-in table covers the
// closed set of section types, so a missing renderer is a startup failure
// rather than a surprise mid-render. Registry.Render contains renderer panics
// and converts foreign errors into SECTION_RENDER_FAILED.
//
// Renderers read their own Data first and fall back to the profile, emit
// asset blocks as semantic parameters, and never perform I/O.
package sections
