package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds request bodies read by ParseJSONBody callers
const MaxBodyBytes = 1 << 20

// APIResponse wraps every successful payload
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *MetaInfo   `json:"meta,omitempty"`
}

// MetaInfo carries list metadata. NextCursor is set while more pages
// remain and Total only by searches.
type MetaInfo struct {
	RequestID  string `json:"request_id,omitempty"`
	NextCursor string `json:"next_cursor,omitempty"`
	Total      *int64 `json:"total,omitempty"`
}

// RespondJSON writes data inside the standard envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	RespondWithMeta(w, status, data, nil)
}

// RespondWithMeta writes data and meta inside the standard envelope
func RespondWithMeta(w http.ResponseWriter, status int, data interface{}, meta *MetaInfo) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: status < http.StatusBadRequest,
		Data:    data,
		Meta:    meta,
	})
}

// RespondNoContent writes an empty 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ParseJSONBody decodes exactly one JSON value of at most maxBytes into v.
// Unknown fields and trailing data are rejected.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return errors.New("body is empty")
		default:
			return err
		}
	}
	if decoder.More() {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}
