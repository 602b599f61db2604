package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactrelay/binder"
	"github.com/dmitrymomot/contactrelay/handler"
)

// Router mounts the contact endpoints. Anything outside the three known
// routes answers 404 with the module's error shape, including unknown
// methods on known paths.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.Health(),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Get("/test", handler.Wrap(s.ConfigCheck(),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/send-message", handler.Wrap(s.SendMessage(),
		handler.WithBinder[handler.Context, SendMessageRequest](binder.BindJSON()),
		handler.WithErrorHandler[handler.Context, SendMessageRequest](s.errorHandler),
	))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	return r
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusNotFound, map[string]any{"error": msgRouteNotFound})
}

// renderJSON writes a JSON body outside the typed handler path (binding
// boundary, 404s).
func renderJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
