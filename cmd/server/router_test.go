package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api"
	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/cache"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/mocks"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	authors *mocks.MockAuthorStore
	handler http.Handler
}

func newRouterFixture(t *testing.T, cfg *config.Config, responseCache *middleware.ResponseCache) *routerFixture {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	authors := mocks.NewMockAuthorStore()
	books := mocks.NewMockBookStore()
	books.AuthorStore = authors
	comments := mocks.NewMockCommentStore()
	users := mocks.NewMockUserStore()
	tx := &mocks.MockTransactor{}
	jwt := &mocks.MockJWTService{
		ValidateTokenFn: func(context.Context, string) (*auth.Claims, error) { return nil, auth.ErrInvalidToken },
	}

	authorSvc, err := service.NewAuthorService(authors, tx, log)
	require.NoError(t, err)
	bookSvc, err := service.NewBookService(books, authors, tx, log)
	require.NoError(t, err)
	commentSvc, err := service.NewCommentService(comments, books, log)
	require.NoError(t, err)
	accountSvc, err := service.NewAccountService(users, &mocks.MockPasswordHasher{}, jwt, log)
	require.NoError(t, err)

	policy := auth.NewStoreAdminPolicy(users)
	validator := dto.NewValidator()
	linker := hateoas.NewLinker(policy)

	var limiter *middleware.KeyedRateLimiter
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		limiter = middleware.NewKeyedRateLimiter(rl.RequestsPerSecond, rl.Burst, time.Minute)
		t.Cleanup(limiter.Stop)
	}

	return &routerFixture{
		authors: authors,
		handler: newRouter(routerDeps{
			config: cfg,
			logger: log,
			handlers: &api.Handlers{
				Authors:  api.NewAuthorHandler(authorSvc, validator, linker, log),
				Books:    api.NewBookHandler(bookSvc, validator, linker, log),
				Comments: api.NewCommentHandler(commentSvc, validator, log),
				Accounts: api.NewAccountHandler(accountSvc, validator, log),
			},
			health:  api.NewHealthHandler(nil),
			auth:    middleware.NewAuthMiddleware(jwt, policy),
			cache:   responseCache,
			limiter: limiter,
		}),
	}
}

func testConfig(env string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info", Environment: env},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
	}
}

func (f *routerFixture) get(target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, testConfig("production"), nil)

	rr := f.get("/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))
}

func TestRouter_SwaggerOnlyInDevelopment(t *testing.T) {
	dev := newRouterFixture(t, testConfig("development"), nil)
	for _, path := range []string{"/swagger/v1/swagger.json", "/swagger/v2/swagger.json"} {
		rr := dev.get(path, nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `"openapi"`)
	}

	prod := newRouterFixture(t, testConfig("production"), nil)
	assert.Equal(t, http.StatusNotFound, prod.get("/swagger/v1/swagger.json", nil).Code)
}

func TestRouter_CORSExposesTotalCount(t *testing.T) {
	f := newRouterFixture(t, testConfig("production"), nil)
	f.authors.Seed("Borges")

	rr := f.get("/api/autores", map[string]string{
		middleware.VersionHeader: "1",
		"Origin":                 "https://app.example.com",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Expose-Headers"), pagination.TotalCountHeader)
	assert.Equal(t, "1", rr.Header().Get(pagination.TotalCountHeader))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig("production")
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}
	f := newRouterFixture(t, cfg, nil)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, f.get("/health", nil).Code)
	}
	rr := f.get("/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), middleware.MsgTooManyRequests)

	for i := 0; i < 5; i++ {
		spoofed := f.get("/health", map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i)})
		assert.Equal(t, http.StatusTooManyRequests, spoofed.Code, "forwarding headers are ignored without a trusted proxy")
	}
}

func TestRouter_RateLimitBehindTrustedProxy(t *testing.T) {
	cfg := testConfig("production")
	cfg.Server.TrustProxy = true
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	f := newRouterFixture(t, cfg, nil)
	first := map[string]string{"X-Forwarded-For": "198.51.100.1"}

	assert.Equal(t, http.StatusOK, f.get("/health", first).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.get("/health", first).Code)
	assert.Equal(t, http.StatusOK, f.get("/health", map[string]string{"X-Forwarded-For": "198.51.100.2"}).Code)
}

func TestRouter_ResponseCache(t *testing.T) {
	store := cache.NewMemoryCache()
	f := newRouterFixture(t, testConfig("production"), middleware.NewResponseCache(store, time.Minute))
	f.authors.Seed("Borges")
	v1 := map[string]string{middleware.VersionHeader: "1"}

	first := f.get("/api/autores", v1)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(middleware.CacheStatusHeader))

	f.authors.Seed("Cortázar")
	second := f.get("/api/autores", v1)
	assert.Equal(t, "HIT", second.Header().Get(middleware.CacheStatusHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "1", second.Header().Get(pagination.TotalCountHeader))

	v2 := f.get("/api/autores", map[string]string{middleware.VersionHeader: "2"})
	assert.Equal(t, "MISS", v2.Header().Get(middleware.CacheStatusHeader), "version is part of the key")
	assert.True(t, strings.Contains(v2.Body.String(), "Cortázar"))
}
