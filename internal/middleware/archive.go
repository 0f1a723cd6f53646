package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/drstein77/marketcatalog/internal/compress"
)

type archiveTypeKey struct{}

// ArchiveType returns the archive type chosen by ArchiveTypeMiddleware.
func ArchiveType(ctx context.Context) string {
	if t, ok := ctx.Value(archiveTypeKey{}).(string); ok {
		return t
	}
	return compress.TypeZip
}

// ArchiveTypeMiddleware reads the archiveType query parameter (zip by
// default) and rejects anything but zip and tar.
func ArchiveTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		archiveType := r.URL.Query().Get("archiveType")
		if archiveType == "" {
			archiveType = compress.TypeZip
		}
		if archiveType != compress.TypeZip && archiveType != compress.TypeTar {
			http.Error(w, fmt.Sprintf("unsupported archiveType %q", archiveType), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), archiveTypeKey{}, archiveType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CreateArchiveMiddleware packs a successful response body into an archive
// of the type selected by ArchiveTypeMiddleware, stored as fileName.
// Responses with an error status are passed through unchanged.
func CreateArchiveMiddleware(fileName string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			aw := &archiveWriter{
				ResponseWriter: w,
				archiveType:    ArchiveType(r.Context()),
				fileName:       fileName,
			}
			defer aw.Close()

			h.ServeHTTP(aw, r)
		})
	}
}

type archiveWriter struct {
	http.ResponseWriter
	archiveType string
	fileName    string

	archive     io.WriteCloser
	wroteHeader bool
	passthrough bool
}

func (w *archiveWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if code >= http.StatusMultipleChoices {
		w.passthrough = true
		w.ResponseWriter.WriteHeader(code)
		return
	}

	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", compress.ContentType(w.archiveType))
	h.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="catalog.%s"`, w.archiveType))
	w.ResponseWriter.WriteHeader(code)
}

func (w *archiveWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(p)
	}
	if err := w.open(); err != nil {
		return 0, err
	}
	return w.archive.Write(p)
}

// Close finishes the archive. A handler that wrote nothing still produces a
// valid, empty archive.
func (w *archiveWriter) Close() error {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return nil
	}
	if err := w.open(); err != nil {
		return err
	}
	return w.archive.Close()
}

func (w *archiveWriter) open() error {
	if w.archive != nil {
		return nil
	}
	archive, err := compress.NewWriter(w.archiveType, w.ResponseWriter, w.fileName)
	if err != nil {
		return err
	}
	w.archive = archive
	return nil
}
