package entities

import "testing"

func TestPrettyName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"hyphens", "my-notes.md", "My Notes"},
		{"underscores", "meeting_minutes.md", "Meeting Minutes"},
		{"mixed", "q3_planning-draft.md", "Q3 Planning Draft"},
		{"uppercase extension", "README.MD", "Readme"},
		{"directory", "project-docs", "Project Docs"},
		{"root placeholder", ".", "."},
		{"plain word", "notes.md", "Notes"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PrettyName(c.in); got != c.want {
				t.Errorf("PrettyName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestIsMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"notes.md", true},
		{"NOTES.MD", true},
		{"notes.Md", true},
		{"notes.txt", false},
		{"notes", false},
		{"md", false},
	}

	for _, c := range cases {
		if got := IsMarkdown(c.in); got != c.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIconFor(t *testing.T) {
	cases := []struct {
		name  string
		isDir bool
		want  string
	}{
		{"docs", true, IconDirectory},
		{"notes.md", false, IconMarkdown},
		{"image.png", false, IconDocument},
	}

	for _, c := range cases {
		if got := IconFor(c.name, c.isDir); got != c.want {
			t.Errorf("IconFor(%q, %v) = %q, want %q", c.name, c.isDir, got, c.want)
		}
	}
}
