package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

// getParam returns a path parameter captured by the pat router, which
// stores them in the query string under a leading colon.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	return r.URL.Query().Get(":" + name)
}

// getIDParam parses an integer path parameter. Anything else is a client
// error.
func getIDParam(r *http.Request, name string) (int64, error) {
	raw := getParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, BadRequest("Invalid " + name + ": " + raw)
	}
	return id, nil
}

// decodeJSON reads the request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return BadRequest("Malformed JSON body")
	}
	return nil
}
