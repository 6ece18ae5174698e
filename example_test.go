package offlinedocs_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-offlinedocs"
)

// Example assembles a two-document manifest into one page.
func Example() {
	base, err := os.MkdirTemp("", "offlinedocs-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(base)

	_ = os.MkdirAll(filepath.Join(base, "en"), 0o755)
	_ = os.WriteFile(filepath.Join(base, "en", "intro.md"), []byte("---\ntitle: Intro\n---\n# Welcome\n"), 0o644)

	m, err := offlinedocs.ParseManifest([]byte(`docs:
  - title: Guide
    documents:
      - page: Introduction
        url: /en/intro.md
      - page: Website
        url: https://example.com
        sidebar_exclude: true
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tmpl, err := offlinedocs.NewPageTemplate("<nav>{{SIDEBAR}}</nav>\n<main>{{CONTENT}}</main>")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	asm, err := offlinedocs.NewAssembler(tmpl, offlinedocs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page, err := asm.Generate(context.Background(), m, base)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(string(page), `<a href="#intro.md">Introduction</a>`))
	fmt.Println(strings.Contains(string(page), `<h1>Welcome</h1>`))
	fmt.Println(strings.Contains(string(page), "example.com"))
	// Output:
	// true
	// true
	// false
}

// ExampleAnchorID shows how document urls map to element ids.
func ExampleAnchorID() {
	fmt.Println(offlinedocs.AnchorID("/en/getting-started.md"))
	fmt.Println(offlinedocs.AnchorID("/guides/setup/"))
	// Output:
	// getting-started.md
	// -guides-setup
}

// ExampleResolver_Resolve shows the placeholder embedded for a missing source.
func ExampleResolver_Resolve() {
	r, err := offlinedocs.NewResolver(offlinedocs.WithResolverLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := r.Resolve(os.TempDir(), offlinedocs.DocumentRef{URL: "/en/does-not-exist-offlinedocs.md"})
	fmt.Println(res.AnchorID)
	fmt.Println(res.HTMLFragment)
	// Output:
	// does-not-exist-offlinedocs.md
	// <p>Content not found for: /en/does-not-exist-offlinedocs.md</p>
}
