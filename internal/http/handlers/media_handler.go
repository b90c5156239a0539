package handlers

import (
	"os"
	"path/filepath"
	"strings"

	applog "chavecerta/internal/log"

	"github.com/gofiber/fiber/v2"
)

// MediaHandler serves listing photos from MediaDir. A photo that cannot be
// found is answered with the placeholder image, so a broken listing photo
// degrades the same way the card's onerror fallback does.
type MediaHandler struct {
	MediaDir    string
	StaticDir   string
	Placeholder string
}

func NewMediaHandler(mediaDir, staticDir string) *MediaHandler {
	mediaDir = absDir(mediaDir)
	staticDir = absDir(staticDir)
	return &MediaHandler{
		MediaDir:    mediaDir,
		StaticDir:   staticDir,
		Placeholder: filepath.Join(staticDir, "placeholder-property.svg"),
	}
}

func absDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// cleanRel rejects traversal and null bytes, raw or encoded.
func cleanRel(path string) (string, bool) {
	rawLower := strings.ToLower(path)
	if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
		return "", false
	}
	clean := filepath.Clean(path)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", false
	}
	return clean, true
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// Exists reports whether an image URL names a local /media or /static file
// that is present on disk. Anything else counts as a broken image.
func (h *MediaHandler) Exists(src string) bool {
	var root, rel string
	switch {
	case strings.HasPrefix(src, "/media/"):
		root, rel = h.MediaDir, strings.TrimPrefix(src, "/media/")
	case strings.HasPrefix(src, "/static/"):
		root, rel = h.StaticDir, strings.TrimPrefix(src, "/static/")
	default:
		return false
	}
	clean, ok := cleanRel(rel)
	return ok && isFile(filepath.Join(root, clean))
}

func (h *MediaHandler) Serve(c *fiber.Ctx) error {
	path := c.Params("*")
	clean, ok := cleanRel(path)
	if !ok {
		applog.Security(c, "media.traversal.block", map[string]any{"path": path})
		return c.SendStatus(fiber.StatusNotFound)
	}
	full := filepath.Join(h.MediaDir, clean)
	if !isFile(full) {
		applog.Info(c, "media.placeholder", map[string]any{"path": clean})
		return c.SendFile(h.Placeholder)
	}
	return c.SendFile(full, true)
}
