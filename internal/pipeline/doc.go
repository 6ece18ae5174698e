// Package pipeline implements the per-document conversion stages used when
// assembling an offline documentation page:
//   - front matter stripping
//   - format detection through an ordered list of rules
//   - Markdown to HTML conversion via Goldmark
//   - inner <body> extraction for HTML sources
//   - optional rewriting of relative asset and document links
//
// Stages operate on single documents and know nothing about the manifest.
// Ordering, anchors and page layout live in the root offlinedocs package.
package pipeline
