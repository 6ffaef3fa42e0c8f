package user

import (
	"github.com/go-chi/chi/v5"
)

// Router mounts the user module endpoints.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/api", user.Router(handler))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()

	// create-user-with-login is the canonical registration endpoint;
	// register is kept as an alias for older clients. Both run the same
	// atomic transaction.
	r.Post("/create-user-with-login", h.Register)
	r.Post("/register", h.Register)

	r.Post("/check-user", h.CheckUser)
	r.Post("/unregister", h.Unregister)

	r.Post("/login-history", h.RecordLogin)
	r.Get("/login-history/{uid}", h.GetHistory)

	r.Get("/user/{uid}", h.GetUser)
	r.Put("/user/{uid}", h.UpdateUser)

	return r
}
