package services

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/mdserve/core/internal/domain/entities"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const documentPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>MD Viewer - {{.Title}}</title>
<style>
 body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;max-width:800px;margin:40px auto;padding:0 20px}
 .nav{margin-bottom:20px;padding-bottom:10px;border-bottom:1px solid #eee}
 .nav a{color:#06c;text-decoration:none}
 pre{background:#f5f5f5;padding:10px;border-radius:4px;overflow-x:auto}
 code{background:#f5f5f5;padding:2px 4px;border-radius:2px}
 blockquote{border-left:4px solid #ddd;margin:0;padding-left:20px;color:#666}
</style></head>
<body>
 <h1>📘 MD Viewer</h1>
 <div class="nav"><a href="/">← Back to directory</a></div>
{{.Body}}
</body></html>
`

type documentData struct {
	Title string
	Body  template.HTML
}

// GoldmarkRenderer converts markdown files to full HTML pages with fenced
// code blocks and syntax highlighting.
type GoldmarkRenderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewGoldmarkRenderer creates the HTML markdown renderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		tmpl: template.Must(template.New("document").Parse(documentPage)),
	}
}

// Render reads the markdown source and returns the templated HTML page.
// The source must be valid UTF-8.
func (r *GoldmarkRenderer) Render(absPath string) ([]byte, string, error) {
	src, err := readUTF8(absPath)
	if err != nil {
		return nil, "", err
	}

	var body bytes.Buffer
	if err := r.md.Convert(src, &body); err != nil {
		return nil, "", fmt.Errorf("failed to render %s: %w", absPath, err)
	}

	var page bytes.Buffer
	data := documentData{
		Title: entities.PrettyName(filepath.Base(absPath)),
		Body:  template.HTML(body.String()),
	}
	if err := r.tmpl.Execute(&page, data); err != nil {
		return nil, "", fmt.Errorf("failed to execute document template: %w", err)
	}

	return page.Bytes(), "text/html; charset=utf-8", nil
}

// PlainTextRenderer serves markdown sources untouched. It is the configured
// alternative to HTML rendering, selected at construction time.
type PlainTextRenderer struct{}

// NewPlainTextRenderer creates the pass-through renderer.
func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render returns the raw UTF-8 text of the file.
func (r *PlainTextRenderer) Render(absPath string) ([]byte, string, error) {
	src, err := readUTF8(absPath)
	if err != nil {
		return nil, "", err
	}
	return src, "text/plain; charset=utf-8", nil
}

func readUTF8(absPath string) ([]byte, error) {
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", absPath, err)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s is not valid UTF-8", absPath)
	}
	return src, nil
}
