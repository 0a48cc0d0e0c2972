package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/cache"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/redact"
)

// CacheStatusHeader reports HIT or MISS on cacheable responses.
const CacheStatusHeader = "X-Cache"

const cacheKeyPrefix = "resp:"

// replayedHeaders are stored with a cached response.
var replayedHeaders = []string{"Content-Type", pagination.TotalCountHeader}

type cachedResponse struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
	Body    []byte            `json:"body"`
}

// ResponseCache serves repeated anonymous GET requests from a Cache. Any
// successful write request clears every cached response.
type ResponseCache struct {
	store cache.Cache
	ttl   time.Duration
}

// NewResponseCache creates a ResponseCache storing entries for ttl.
func NewResponseCache(store cache.Cache, ttl time.Duration) *ResponseCache {
	return &ResponseCache{store: store, ttl: ttl}
}

// cacheKey identifies a response by URL and the headers that change its body.
// Links are absolute, so the scheme and host are part of the key.
func cacheKey(r *http.Request) string {
	links := "0"
	if hateoas.Requested(r) {
		links = "1"
	}
	return cacheKeyPrefix + hateoas.BaseURL(r) + r.URL.RequestURI() +
		"|v=" + r.Header.Get(VersionHeader) + "|h=" + links
}

// Handler is the middleware function.
func (c *ResponseCache) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.Header.Get("Authorization") == "":
			c.serveCached(w, r, next)
		case r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			c.serveAndInvalidate(w, r, next)
		}
	})
}

func (c *ResponseCache) serveCached(w http.ResponseWriter, r *http.Request, next http.Handler) {
	log := logger.FromContext(r.Context())
	key := cacheKey(r)

	raw, err := c.store.Get(r.Context(), key)
	if err == nil {
		var cached cachedResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			for k, v := range cached.Headers {
				w.Header().Set(k, v)
			}
			w.Header().Set(CacheStatusHeader, "HIT")
			w.WriteHeader(cached.Status)
			_, _ = w.Write(cached.Body)
			return
		}
		log.Warn("discarding unreadable cache entry", slog.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn("cache read failed", slog.String("error", redact.Error(err)))
	}

	w.Header().Set(CacheStatusHeader, "MISS")
	rec := &bufferingWriter{ResponseWriter: w}
	next.ServeHTTP(rec, r)

	if rec.status != http.StatusOK {
		return
	}

	entry := cachedResponse{Status: rec.status, Headers: map[string]string{}, Body: rec.body.Bytes()}
	for _, h := range replayedHeaders {
		if v := w.Header().Get(h); v != "" {
			entry.Headers[h] = v
		}
	}
	raw, err = json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.store.Set(r.Context(), key, raw, c.ttl); err != nil {
		log.Warn("cache write failed", slog.String("error", redact.Error(err)))
	}
}

func (c *ResponseCache) serveAndInvalidate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	rec := &statusWriter{ResponseWriter: w}
	next.ServeHTTP(rec, r)

	if rec.status >= http.StatusBadRequest {
		return
	}
	if err := c.store.DeletePrefix(r.Context(), cacheKeyPrefix); err != nil {
		logger.FromContext(r.Context()).Warn("cache invalidation failed", slog.String("error", redact.Error(err)))
	}
}

// bufferingWriter passes the response through while keeping a copy of the body.
type bufferingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (bw *bufferingWriter) WriteHeader(status int) {
	if bw.status == 0 {
		bw.status = status
	}
	bw.ResponseWriter.WriteHeader(status)
}

func (bw *bufferingWriter) Write(p []byte) (int, error) {
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body.Write(p)
	return bw.ResponseWriter.Write(p)
}

// statusWriter records the status code only.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	if sw.status == 0 {
		sw.status = status
	}
	sw.ResponseWriter.WriteHeader(status)
}

func (sw *statusWriter) Write(p []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(p)
}
