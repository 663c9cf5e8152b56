package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mdserve/core/internal/domain/entities"
)

const listingPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>MD Viewer - {{.Title}}</title>
<style>
 body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;margin:40px}
 ul{list-style:none;padding:0}
 li{padding:8px 0;border-bottom:1px solid #f5f5f5}
 a{text-decoration:none;color:#333}
 a:hover{text-decoration:underline}
</style></head>
<body>
 <h1>📘 MD Viewer</h1>
 <h2>📂 {{.Title}}</h2>
 <ul>{{range .Entries}}<li>{{.Icon}} <a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>
</body></html>
`

type listingData struct {
	Title   string
	Entries []entities.Entry
}

// ListingService builds HTML listing pages for directories under the root.
// Subdirectories are always shown; files only when they are markdown.
// Hidden entries never appear.
type ListingService struct {
	root string
	tmpl *template.Template
}

// NewListingService creates a lister rooted at the given absolute directory.
func NewListingService(root string) *ListingService {
	return &ListingService{
		root: root,
		tmpl: template.Must(template.New("listing").Parse(listingPage)),
	}
}

// Entries returns the visible, eligible children of absDir in lexicographic
// order by name.
func (s *ListingService) Entries(absDir string) ([]entities.Entry, error) {
	children, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", absDir, err)
	}

	var entries []entities.Entry
	for _, child := range children {
		name := child.Name()
		if name == "" || name[0] == '.' {
			continue
		}
		if !child.IsDir() && !entities.IsMarkdown(name) {
			continue
		}

		rel, err := filepath.Rel(s.root, filepath.Join(absDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", name, err)
		}

		entry := entities.Entry{
			Name:  name,
			Kind:  entities.KindFile,
			Label: entities.PrettyName(name),
			Icon:  entities.IconFor(name, child.IsDir()),
			Href:  escapeHref(filepath.ToSlash(rel)),
		}
		if child.IsDir() {
			entry.Kind = entities.KindDirectory
			entry.Label += "/"
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// List renders the listing page for absDir.
func (s *ListingService) List(absDir string) ([]byte, error) {
	entries, err := s.Entries(absDir)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(s.root, absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize %s: %w", absDir, err)
	}

	var page bytes.Buffer
	data := listingData{
		Title:   entities.PrettyName(filepath.ToSlash(rel)),
		Entries: entries,
	}
	if err := s.tmpl.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("failed to execute listing template: %w", err)
	}

	return page.Bytes(), nil
}

// escapeHref turns a slash-separated relative path into a root-anchored,
// percent-escaped URL path.
func escapeHref(rel string) string {
	u := url.URL{Path: "/" + rel}
	return u.EscapedPath()
}
