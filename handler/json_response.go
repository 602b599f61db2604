package handler

import (
	"encoding/json"
	"net/http"
)

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a response that renders v as a JSON body. The body is
// encoded as-is; response shapes are owned by the calling service.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
