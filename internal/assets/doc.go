// Package assets provides the page templates used to render the offline
// documentation page.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html
//
// # Placeholders
//
// A page template is plain HTML containing exactly two named slots,
// {{SIDEBAR}} and {{CONTENT}}. There is no other templating.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
