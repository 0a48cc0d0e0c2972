package api

import (
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

// Handlers groups every resource handler mounted under /api.
type Handlers struct {
	Authors  *AuthorHandler
	Books    *BookHandler
	Comments *CommentHandler
	Accounts *AccountHandler
}

// Mount registers the /api routes. cache wraps read-mostly resources and may be nil.
func (h *Handlers) Mount(r chi.Router, authMW *middleware.AuthMiddleware, cache func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Use(authMW.Authenticate)

		r.Route("/cuentas", func(r chi.Router) {
			r.Post("/registrar", h.Accounts.Register)
			r.Post("/login", h.Accounts.Login)
			r.With(authMW.RequireUser).Get("/renovarToken", h.Accounts.RenewToken)
			r.With(authMW.RequireAdmin).Post("/hacerAdmin", h.Accounts.MakeAdmin)
			r.With(authMW.RequireAdmin).Post("/removerAdmin", h.Accounts.RemoveAdmin)
		})

		r.Group(func(r chi.Router) {
			if cache != nil {
				r.Use(cache)
			}

			r.Mount("/autores", middleware.VersionRouter(map[string]http.Handler{
				"1": h.authorRoutes(authMW, h.Authors.ListPaged),
				"2": h.authorRoutes(authMW, h.Authors.ListAll),
			}))

			r.Route("/libros", func(r chi.Router) {
				r.Get("/", h.Books.List)
				r.Post("/", h.Books.Create)
				r.Get("/{titulo}", h.Books.SearchByTitle)

				r.Route("/{libroId:[0-9]+}", func(r chi.Router) {
					r.Get("/", h.Books.Get)
					r.Put("/", h.Books.Update)
					r.Patch("/", h.Books.Patch)
					r.Delete("/", h.Books.Delete)

					r.Route("/comentarios", func(r chi.Router) {
						r.Get("/", h.Comments.List)
						r.Get("/{id:[0-9]+}", h.Comments.Get)
						r.With(authMW.RequireUser).Post("/", h.Comments.Create)
						r.With(authMW.RequireUser).Put("/{id:[0-9]+}", h.Comments.Update)
					})
				})
			})
		})
	})
}

// authorRoutes builds the author routes of one API version; only the list
// endpoint differs between versions.
func (h *Handlers) authorRoutes(authMW *middleware.AuthMiddleware, list http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Get("/", list)
	r.Get("/{id:[0-9]+}", h.Authors.Get)

	r.Group(func(r chi.Router) {
		r.Use(authMW.RequireAdmin)
		r.Get("/{nombre}", h.Authors.SearchByName)
		r.Post("/", h.Authors.Create)
		r.Put("/{id:[0-9]+}", h.Authors.Update)
		r.Delete("/{id:[0-9]+}", h.Authors.Delete)
	})
	return r
}
