package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorBody is the JSON shape for error responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a machine-readable error code as a JSON response.
func JSONError(w http.ResponseWriter, status int, code string) {
	JSON(w, status, ErrorBody{Error: code})
}

// DecodeJSON parses the request body into dst, rejecting unknown fields
// and trailing data.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
