package entities

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EntryKind distinguishes the two kinds of children a listing can show.
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// Entry icons. The generic document icon is only reachable for file types
// that pass the listing filter, which today is markdown only.
const (
	IconDirectory = "📁"
	IconMarkdown  = "📝"
	IconDocument  = "📄"
)

// Entry is one row of a directory listing. Entries are built per request
// and never persisted.
type Entry struct {
	Name  string
	Kind  EntryKind
	Label string
	Icon  string
	Href  string
}

var nameReplacer = strings.NewReplacer("-", " ", "_", " ")

// PrettyName turns a file or directory name into a display label:
// a .md extension is dropped, hyphens and underscores become spaces,
// and each word is title-cased. "my-notes.md" becomes "My Notes".
func PrettyName(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".md") {
		name = name[:len(name)-len(".md")]
	}
	name = nameReplacer.Replace(name)
	return cases.Title(language.Und).String(name)
}

// IsMarkdown reports whether name has a .md extension, ignoring case.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

// IconFor picks the listing icon for an entry name.
func IconFor(name string, isDir bool) string {
	switch {
	case isDir:
		return IconDirectory
	case IsMarkdown(name):
		return IconMarkdown
	default:
		return IconDocument
	}
}
