package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/mocks"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var issuedExpiry = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// testEnv wires real services and handlers over in-memory stores.
type testEnv struct {
	authors  *mocks.MockAuthorStore
	books    *mocks.MockBookStore
	comments *mocks.MockCommentStore
	users    *mocks.MockUserStore
	admin    *domain.User
	user     *domain.User
	logs     *logger.TestLogBuffer
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logs, log := logger.NewTestLogger()
	env := &testEnv{
		authors:  mocks.NewMockAuthorStore(),
		books:    mocks.NewMockBookStore(),
		comments: mocks.NewMockCommentStore(),
		users:    mocks.NewMockUserStore(),
		logs:     logs,
	}
	env.books.AuthorStore = env.authors
	env.books.CommentStore = env.comments
	env.admin = env.users.AddUser("admin@example.com", true)
	env.user = env.users.AddUser("user@example.com", false)

	tx := &mocks.MockTransactor{}
	jwt := &mocks.MockJWTService{
		Token:     "issued-token",
		ExpiresAt: issuedExpiry,
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case adminToken:
				return &auth.Claims{UserID: env.admin.ID}, nil
			case userToken:
				return &auth.Claims{UserID: env.user.ID}, nil
			}
			return nil, auth.ErrInvalidToken
		},
	}

	authorSvc, err := service.NewAuthorService(env.authors, tx, log)
	require.NoError(t, err)
	bookSvc, err := service.NewBookService(env.books, env.authors, tx, log)
	require.NoError(t, err)
	commentSvc, err := service.NewCommentService(env.comments, env.books, log)
	require.NoError(t, err)
	accountSvc, err := service.NewAccountService(env.users, &mocks.MockPasswordHasher{}, jwt, log)
	require.NoError(t, err)

	policy := auth.NewStoreAdminPolicy(env.users)
	validator := dto.NewValidator()
	linker := hateoas.NewLinker(policy)

	handlers := &Handlers{
		Authors:  NewAuthorHandler(authorSvc, validator, linker, log),
		Books:    NewBookHandler(bookSvc, validator, linker, log),
		Comments: NewCommentHandler(commentSvc, validator, log),
		Accounts: NewAccountHandler(accountSvc, validator, log),
	}

	r := chi.NewRouter()
	handlers.Mount(r, middleware.NewAuthMiddleware(jwt, policy), nil)
	env.router = r
	return env
}

// request describes one call against the test router.
type request struct {
	method  string
	target  string
	body    string
	token   string
	headers map[string]string
}

func (e *testEnv) do(t *testing.T, req request) *httptest.ResponseRecorder {
	t.Helper()
	var httpReq *http.Request
	if req.body != "" {
		httpReq = httptest.NewRequest(req.method, "http://api.test"+req.target, strings.NewReader(req.body))
		httpReq.Header.Set("Content-Type", "application/json")
	} else {
		httpReq = httptest.NewRequest(req.method, "http://api.test"+req.target, nil)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, httpReq)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

// seedBook stores a book written by the given authors, in byline order.
func (e *testEnv) seedBook(t *testing.T, title string, authorIDs ...int) *domain.Book {
	t.Helper()
	b := &domain.Book{Title: title}
	for _, id := range authorIDs {
		b.Authors = append(b.Authors, domain.AuthorBook{AuthorID: id})
	}
	b.StampAuthorOrder()
	require.NoError(t, e.books.Create(context.Background(), b))
	return b
}

var v1 = map[string]string{middleware.VersionHeader: "1"}
var v2 = map[string]string{middleware.VersionHeader: "2"}

func withHeaders(base map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
