package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveService confines request paths to a single root directory. The root
// is fixed at construction and never changes for the life of the process.
type ResolveService struct {
	root string
}

// NewResolveService creates a resolver rooted at root, which must be an
// existing directory.
func NewResolveService(root string) (*ResolveService, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	return &ResolveService{root: abs}, nil
}

// Root returns the absolute root directory.
func (s *ResolveService) Root() string {
	return s.root
}

// Resolve joins requestPath onto the root and verifies the result stays
// inside it. Containment is checked before existence, so a traversal to a
// nonexistent target is still forbidden rather than not found.
func (s *ResolveService) Resolve(requestPath string) (string, os.FileInfo, error) {
	trimmed := strings.TrimLeft(requestPath, "/")
	abs := filepath.Join(s.root, filepath.FromSlash(trimmed))

	if abs != s.root && !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return "", nil, fmt.Errorf("%q: %w", requestPath, ErrForbidden)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("%q: %w", requestPath, ErrNotFound)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat %q: %w", requestPath, err)
	}

	return abs, info, nil
}
