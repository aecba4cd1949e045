package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

type compressWriter struct {
	w  http.ResponseWriter
	zw *gzip.Writer
}

func newCompressWriter(w http.ResponseWriter) *compressWriter {
	return &compressWriter{w: w, zw: gzip.NewWriter(w)}
}

func (c *compressWriter) Header() http.Header {
	return c.w.Header()
}

func (c *compressWriter) Write(p []byte) (int, error) {
	c.prepareHeaders()
	return c.zw.Write(p)
}

func (c *compressWriter) WriteHeader(statusCode int) {
	c.prepareHeaders()
	c.w.WriteHeader(statusCode)
}

// длина сжатого тела заранее неизвестна
func (c *compressWriter) prepareHeaders() {
	c.w.Header().Del("Content-Length")
	c.w.Header().Set("Content-Encoding", "gzip")
	c.w.Header().Add("Vary", "Accept-Encoding")
}

func (c *compressWriter) Close() error {
	return c.zw.Close()
}

// WithGzip сжимает ответ, если клиент прислал Accept-Encoding: gzip.
func WithGzip(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}

		cw := newCompressWriter(w)
		defer cw.Close()

		h.ServeHTTP(cw, r)
	})
}
