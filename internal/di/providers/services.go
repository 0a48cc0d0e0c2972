package providers

import (
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/samber/do/v2"
)

// ProvideAuthorService provides the author use cases.
func ProvideAuthorService(i do.Injector) (service.AuthorService, error) {
	return service.NewAuthorService(
		do.MustInvoke[store.AuthorStore](i),
		do.MustInvoke[store.Transactor](i),
		do.MustInvoke[*slog.Logger](i),
	)
}

// ProvideBookService provides the book use cases.
func ProvideBookService(i do.Injector) (service.BookService, error) {
	return service.NewBookService(
		do.MustInvoke[store.BookStore](i),
		do.MustInvoke[store.AuthorStore](i),
		do.MustInvoke[store.Transactor](i),
		do.MustInvoke[*slog.Logger](i),
	)
}

// ProvideCommentService provides the comment use cases.
func ProvideCommentService(i do.Injector) (service.CommentService, error) {
	return service.NewCommentService(
		do.MustInvoke[store.CommentStore](i),
		do.MustInvoke[store.BookStore](i),
		do.MustInvoke[*slog.Logger](i),
	)
}

// ProvideAccountService provides registration, login and role management.
func ProvideAccountService(i do.Injector) (service.AccountService, error) {
	return service.NewAccountService(
		do.MustInvoke[store.UserStore](i),
		do.MustInvoke[auth.PasswordHasher](i),
		do.MustInvoke[auth.JWTService](i),
		do.MustInvoke[*slog.Logger](i),
	)
}
