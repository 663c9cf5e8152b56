package http

import (
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mdserve/core/internal/application/services"
	"github.com/mdserve/core/internal/infrastructure/logger"
	"github.com/mdserve/core/internal/ports"
)

// BrowseHandler dispatches every GET request: resolve the path, then serve a
// rendered markdown page, raw file bytes, or a directory listing.
type BrowseHandler struct {
	resolver ports.PathResolver
	renderer ports.MarkdownRenderer
	lister   ports.DirectoryLister
	logger   *logger.Logger
}

// NewBrowseHandler creates a new browse handler.
func NewBrowseHandler(resolver ports.PathResolver, renderer ports.MarkdownRenderer, lister ports.DirectoryLister, logger *logger.Logger) *BrowseHandler {
	return &BrowseHandler{
		resolver: resolver,
		renderer: renderer,
		lister:   lister,
		logger:   logger,
	}
}

// Browse handles a request for any path under the root.
func (h *BrowseHandler) Browse(c echo.Context) error {
	requestPath := c.Request().URL.Path

	abs, info, err := h.resolver.Resolve(requestPath)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error").SetInternal(err)
	}

	switch {
	case info.Mode().IsRegular() && strings.HasSuffix(abs, ".md"):
		return h.serveMarkdown(c, abs)
	case info.Mode().IsRegular():
		return h.serveFile(c, abs)
	case info.IsDir():
		return h.serveDirectory(c, abs)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}
}

func (h *BrowseHandler) serveMarkdown(c echo.Context, abs string) error {
	body, contentType, err := h.renderer.Render(abs)
	if err != nil {
		h.logger.Errorw("Markdown render failed", "path", abs, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error").SetInternal(err)
	}
	return c.Blob(http.StatusOK, contentType, body)
}

// serveFile serves non-markdown files byte for byte. They never appear in
// listings, but an exact URL still reaches them.
func (h *BrowseHandler) serveFile(c echo.Context, abs string) error {
	data, err := os.ReadFile(abs)
	if err != nil {
		h.logger.Errorw("File read failed", "path", abs, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error").SetInternal(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(abs))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))
	return c.Blob(http.StatusOK, contentType, data)
}

func (h *BrowseHandler) serveDirectory(c echo.Context, abs string) error {
	body, err := h.lister.List(abs)
	if err != nil {
		h.logger.Errorw("Listing failed", "path", abs, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, body)
}
