package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdserve/core/internal/domain/entities"
)

func newListingRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range []string{"docs", "zz-archive", ".git"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, file := range []string{"my-notes.md", "CHANGELOG.MD", "image.png", ".hidden.md", "script.sh"} {
		if err := os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestEntries(t *testing.T) {
	root := newListingRoot(t)
	svc := NewListingService(root)

	entries, err := svc.Entries(root)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}

	// lexicographic by name: dirs and markdown files only, hidden excluded
	want := []string{"CHANGELOG.MD", "docs", "my-notes.md", "zz-archive"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("entries = %v, want %v", names, want)
	}

	byName := make(map[string]entities.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	if e := byName["my-notes.md"]; e.Label != "My Notes" || e.Href != "/my-notes.md" || e.Icon != entities.IconMarkdown || e.Kind != entities.KindFile {
		t.Errorf("unexpected markdown entry: %+v", e)
	}
	if e := byName["docs"]; e.Label != "Docs/" || e.Href != "/docs" || e.Icon != entities.IconDirectory || e.Kind != entities.KindDirectory {
		t.Errorf("unexpected directory entry: %+v", e)
	}
}

func TestEntries_Subdirectory(t *testing.T) {
	root := newListingRoot(t)
	sub := filepath.Join(root, "docs")
	if err := os.WriteFile(filepath.Join(sub, "api guide.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewListingService(root).Entries(sub)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want one", entries)
	}
	if entries[0].Href != "/docs/api%20guide.md" {
		t.Errorf("href = %q, want escaped path", entries[0].Href)
	}
	if entries[0].Label != "Api Guide" {
		t.Errorf("label = %q", entries[0].Label)
	}
}

func TestList(t *testing.T) {
	root := newListingRoot(t)
	svc := NewListingService(root)

	page, err := svc.List(root)
	if err != nil {
		t.Fatal(err)
	}

	html := string(page)
	for _, want := range []string{
		"<title>MD Viewer - .</title>",
		"<h2>📂 .</h2>",
		`<a href="/my-notes.md">My Notes</a>`,
		`<a href="/docs">Docs/</a>`,
		entities.IconMarkdown,
		entities.IconDirectory,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("listing missing %q", want)
		}
	}
	for _, absent := range []string{"image.png", ".hidden", ".git", "script.sh"} {
		if strings.Contains(html, absent) {
			t.Errorf("listing should not contain %q", absent)
		}
	}
}

func TestList_SubdirectoryTitle(t *testing.T) {
	root := newListingRoot(t)

	page, err := NewListingService(root).List(filepath.Join(root, "zz-archive"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(page), "<h2>📂 Zz Archive</h2>") {
		t.Errorf("listing heading not prettified:\n%s", page)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	root := newListingRoot(t)

	if _, err := NewListingService(root).List(filepath.Join(root, "absent")); err == nil {
		t.Error("expected error for missing directory")
	}
}
