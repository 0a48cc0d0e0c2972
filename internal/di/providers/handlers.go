package providers

import (
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/api"
	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/samber/do/v2"
)

// ProvideValidator provides the DTO validator.
func ProvideValidator(i do.Injector) (*dto.Validator, error) {
	return dto.NewValidator(), nil
}

// ProvideLinker provides the HATEOAS link generator.
func ProvideLinker(i do.Injector) (*hateoas.Linker, error) {
	return hateoas.NewLinker(do.MustInvoke[auth.AdminChecker](i)), nil
}

// ProvideHandlers provides the /api resource handlers.
func ProvideHandlers(i do.Injector) (*api.Handlers, error) {
	log := do.MustInvoke[*slog.Logger](i)
	validator := do.MustInvoke[*dto.Validator](i)
	linker := do.MustInvoke[*hateoas.Linker](i)

	return &api.Handlers{
		Authors:  api.NewAuthorHandler(do.MustInvoke[service.AuthorService](i), validator, linker, log),
		Books:    api.NewBookHandler(do.MustInvoke[service.BookService](i), validator, linker, log),
		Comments: api.NewCommentHandler(do.MustInvoke[service.CommentService](i), validator, log),
		Accounts: api.NewAccountHandler(do.MustInvoke[service.AccountService](i), validator, log),
	}, nil
}

// ProvideHealthHandler provides the /health handler.
func ProvideHealthHandler(i do.Injector) (*api.HealthHandler, error) {
	return api.NewHealthHandler(do.MustInvoke[*DBHandle](i)), nil
}
