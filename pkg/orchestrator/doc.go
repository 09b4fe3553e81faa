// Package orchestrator is the single entry point of the rendering pipeline.
//
// Render merges options over defaults, builds one RenderContext, runs the
// validation gate, resolves the section order from the template layout and
// drives the section registry for every enabled section. Section failures
// either degrade into warnings (continue on error, the default) or abort the
// render. Hooks are observational: a panicking hook is reported as a
// HOOK_FAILED warning and never stops the pipeline. Render never panics; an
// unexpected failure is returned as a single UNKNOWN_ERROR.
//
// Sections render sequentially unless WithConcurrency is set, in which case
// they fan out over an errgroup and are put back into layout order before
// hooks run and metadata is assembled.
package orchestrator
