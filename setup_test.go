package offlinedocs

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// writeDoc writes content to rel beneath dir, creating parent directories.
func writeDoc(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

// discardLogger silences diagnostics in tests that do not inspect them.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger captures diagnostics at debug level for inspection.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// mustTemplate returns a minimal template that makes region boundaries visible.
func mustTemplate(t *testing.T) *PageTemplate {
	t.Helper()

	tmpl, err := NewPageTemplate("<nav>{{SIDEBAR}}</nav><main>{{CONTENT}}</main>")
	if err != nil {
		t.Fatalf("NewPageTemplate() error = %v", err)
	}
	return tmpl
}
