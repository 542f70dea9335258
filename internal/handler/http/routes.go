package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		withRecover,
		middleware.StripSlashes,
		middleware.Compress(compressionLevel, "application/json"),
		withGZipRequest,
		h.authenticate,
	)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/phone", func(r chi.Router) {
			r.Post("/register", h.registerPhone)
			r.Post("/verify", h.verifyPhone)
			r.Post("/signup", h.signup)
			r.With(requireUser).Post("/bind", h.bindPhone)
		})

		r.Post("/token", h.obtainToken)
		r.Post("/token/refresh", h.refreshToken)

		r.Get("/social/providers", h.socialProviders)
		r.Post("/social/convert_token", h.convertSocialToken)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/", h.userProfile)
			r.Get("/followers", h.followers)
			r.Get("/following", h.following)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/follow", h.follow)
				r.Post("/unfollow", h.unfollow)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
