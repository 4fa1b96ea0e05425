package icons

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/foyer/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

// Handler serves provider icons from a local directory.
type Handler struct {
	mux *http.ServeMux
	dir string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(dir string) *Handler {
	h := &Handler{
		mux: &http.ServeMux{},
		dir: dir,
	}

	h.mux.HandleFunc("GET /{name}", h.serveIcon)

	return h
}

func (h *Handler) serveIcon(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	// Names are plain file names, never paths.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.NotFound(w, r)
		return
	}

	file, err := os.Open(filepath.Join(h.dir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	defer file.Close()

	mimeType, recycled, err := common.DetectMimeType(file)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not detect icon mime type", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, recycled); err != nil {
		slog.ErrorContext(r.Context(), "could not write icon", slog.Any("error", errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
