// Package blocks defines the intermediate document representation produced by
// the section renderers. A rendered README is a list of sections, and every
// section holds an ordered tree of blocks. Blocks describe what content exists
// and how it nests (rows, columns and grids hold arbitrary children) without
// deciding how an exporter paints it as Markdown or HTML.
//
// Asset-backed blocks (github-stats-card, contribution-graph, typing-animation
// and images carrying an AssetRef) hold semantic parameters only. Resolving
// those parameters into provider URLs belongs to the asset engine downstream,
// which keeps the IR provider-agnostic.
//
// Blocks are stamped out by a Builder bound to a per-render IDGenerator so ids
// are unique and ordered within a render without any package-level state.
package blocks
