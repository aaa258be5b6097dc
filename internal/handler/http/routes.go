package http

import (
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/items", h.listItems)
		r.Get("/api/items/{itemId}", h.getItem)
		r.Get("/api/items/{itemId}/reviews", h.listItemReviews)
		r.Get("/api/items/{itemId}/reviews/{reviewId}/comments", h.listReviewComments)

		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Delete("/api/users/{userId}", h.deleteUser)

		r.Post("/api/items", h.createItem)
		r.Delete("/api/items/{itemId}", h.deleteItem)

		r.Post("/api/items/{itemId}/reviews", h.createReview)
		r.Get("/api/reviews/me", h.myReviews)
		r.Put("/api/users/{userId}/reviews/{reviewId}", h.updateReview)
		r.Delete("/api/users/{userId}/reviews/{reviewId}", h.deleteReview)

		r.Post("/api/items/{itemId}/reviews/{reviewId}/comments", h.createComment)
		r.Get("/api/comments/me", h.myComments)
		r.Put("/api/users/{userId}/comments/{commentId}", h.updateComment)
		r.Delete("/api/users/{userId}/comments/{commentId}", h.deleteComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
