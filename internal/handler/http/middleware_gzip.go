package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// withGZip transparently decompresses gzip-encoded request bodies and
// compresses responses for clients that accept gzip. Sync batches compress
// well, so the tracker sends and accepts gzip by default.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gr, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "malformed gzip request body", http.StatusBadRequest)
				return
			}
			r.Body = &wrappedReadCloser{reader: gr, original: r.Body}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := gzipWriterPool.Get().(*gzip.Writer)
		gw.Reset(w)
		defer func() {
			_ = gw.Close()
			gzipWriterPool.Put(gw)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: gw}, r)
	})
}

// wrappedReadCloser reads through the gzip reader but closes both it and the
// original request body.
type wrappedReadCloser struct {
	reader   *gzip.Reader
	original io.ReadCloser
}

func (w *wrappedReadCloser) Read(p []byte) (int, error) {
	return w.reader.Read(p)
}

func (w *wrappedReadCloser) Close() error {
	if err := w.reader.Close(); err != nil {
		_ = w.original.Close()
		return err
	}
	return w.original.Close()
}

// gzipResponseWriter routes the body through the pooled gzip writer while
// headers and status pass straight to the underlying ResponseWriter.
type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.writer.Write(b)
}
