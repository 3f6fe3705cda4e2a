package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
)

// sanitizeBody strips store-operator injection vectors from JSON request
// bodies before any handler decodes them. Any object key beginning with "$"
// or containing "." is removed, recursively, from every mutating request.
//
// Requests without a body, or with a non-JSON body, pass through untouched;
// decoding problems are left for the handler to report.
func (h *Handler) sanitizeBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("error reading request body")
			respondFailure(w, r, msgInvalidJSON)
			return
		}
		_ = r.Body.Close()

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			// Not JSON: the handler decides what to do with it.
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
			return
		}

		sanitized := stripReservedKeys(payload)

		cleaned, err := json.Marshal(sanitized)
		if err != nil {
			log.Err(err).Msg("error re-encoding sanitized body")
			respondFailure(w, r, msgInvalidJSON)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(cleaned))
		r.ContentLength = int64(len(cleaned))
		next.ServeHTTP(w, r)
	})
}

// stripReservedKeys walks a decoded JSON value and drops every object key
// that starts with "$" or contains ".".
func stripReservedKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		cleaned := make(map[string]any, len(v))
		for key, nested := range v {
			if strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
				continue
			}
			cleaned[key] = stripReservedKeys(nested)
		}
		return cleaned
	case []any:
		cleaned := make([]any, 0, len(v))
		for _, item := range v {
			cleaned = append(cleaned, stripReservedKeys(item))
		}
		return cleaned
	default:
		return value
	}
}
