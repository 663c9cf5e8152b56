// Package ports defines the service interfaces consumed by the HTTP adapter.
package ports

import "os"

// PathResolver maps a raw request path to a filesystem path confined to the
// configured root directory.
type PathResolver interface {
	// Resolve returns the absolute path and its FileInfo, or
	// services.ErrForbidden when the path escapes the root and
	// services.ErrNotFound when it does not exist.
	Resolve(requestPath string) (string, os.FileInfo, error)
}

// MarkdownRenderer produces the response body for a markdown file.
// Implementations decide whether that body is rendered HTML or the raw text.
type MarkdownRenderer interface {
	// Render reads the file at absPath and returns the response body and
	// its content type.
	Render(absPath string) ([]byte, string, error)
}

// DirectoryLister produces the HTML listing page for a directory.
type DirectoryLister interface {
	List(absDir string) ([]byte, error)
}
