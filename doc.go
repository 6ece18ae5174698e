// Package offlinedocs assembles locally stored documentation sources
// (Markdown or HTML fragments) into one self-contained offline HTML page.
//
// # Quick Start
//
// Load a manifest, build an assembler around a page template, and generate:
//
//	m, err := offlinedocs.LoadManifest("docs.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tmpl, err := offlinedocs.DefaultPageTemplate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	asm, err := offlinedocs.NewAssembler(tmpl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := asm.Generate(ctx, m, "./site")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	offlinedocs.WriteOutput("offline.html", page)
//
// # Manifest
//
// The manifest is YAML (or JSON) with a top-level docs key:
//
//	docs:
//	  - title: Getting Started
//	    documents:
//	      - page: Introduction
//	        url: /en/introduction.md
//	      - page: Changelog
//	        url: https://example.com/changelog
//	        sidebar_exclude: true
//
// Section and document order is preserved and drives both the sidebar and
// the content order.
//
// # Content Resolution
//
// Each document url is joined beneath the base directory and converted:
//
//  1. Leading front matter (--- delimited) is stripped
//  2. .md sources are converted from Markdown via Goldmark
//  3. .html sources contribute the inner markup of their <body>, if any
//  4. Other sources are treated as Markdown when they contain an ATX
//     heading, and passed through unchanged otherwise
//
// A missing or unreadable source never fails the run: a placeholder
// paragraph naming the url is embedded and a warning is logged.
// Documents whose url is an http(s) link are not embedded.
//
// # Anchors
//
// Every embedded document gets an element id derived from its url by
// AnchorID. Distinct urls can map to the same id; such collisions are
// logged, not resolved.
package offlinedocs
