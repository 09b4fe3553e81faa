// Package templates loads template and profile documents and keeps a catalog
// of templates keyed by id.
//
// Documents may be JSON or YAML. YAML is normalised to JSON before decoding
// so both formats share the model's JSON decoders, and every template passes
// the bundled JSON schema before it is decoded. The built-in templates are
// embedded and exposed through EmbeddedFS and Builtin.
package templates
