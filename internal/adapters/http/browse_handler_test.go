package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mdserve/core/internal/application/services"
	"github.com/mdserve/core/internal/infrastructure/logger"
)

func newHandler(t *testing.T, root string) *BrowseHandler {
	t.Helper()

	resolver, err := services.NewResolveService(root)
	if err != nil {
		t.Fatal(err)
	}
	return NewBrowseHandler(resolver, services.NewGoldmarkRenderer(), services.NewListingService(resolver.Root()), logger.NewNop())
}

func browse(h *BrowseHandler, target string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, rec)
	err := h.Browse(c)
	return rec, err
}

func TestBrowse_RenderFailureIsServerError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bad.md"), []byte{0xff, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := browse(newHandler(t, root), "/bad.md")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("err = %v, want 500 HTTPError", err)
	}
}

func TestBrowse_CaseSensitiveMarkdownSuffix(t *testing.T) {
	// dispatch matches the exact .md suffix; other cases are served raw
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "NOTES.MD"), []byte("# raw\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := browse(newHandler(t, root), "/NOTES.MD")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "# raw\n" {
		t.Errorf("uppercase .MD should be served raw, got %q", body)
	}
}

func TestBrowse_RawFileContentType(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "data.json"), []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := browse(newHandler(t, root), "/data.json")
	if err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Error("raw file served without content type")
	}
}
