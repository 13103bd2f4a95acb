package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

const corsRequestHeaders = "Access-Control-Request-Headers"

var corsHeaders = []string{"Content-Type", APIKeyHeader}

func corsOptions(headers []string) []handlers.CORSOption {
	return []handlers.CORSOption{
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders(headers),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	}
}

// CORS allows any origin and any request header. gorilla's CORS only
// matches listed headers, so a preflight gets a policy built from the
// headers it asks for.
func CORS(next http.Handler) http.Handler {
	static := handlers.CORS(corsOptions(corsHeaders)...)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := r.Header.Get(corsRequestHeaders)
		if r.Method != http.MethodOptions || requested == "" {
			static.ServeHTTP(w, r)
			return
		}

		headers := append(strings.Split(requested, ","), corsHeaders...)
		handlers.CORS(corsOptions(headers)...)(next).ServeHTTP(w, r)
	})
}
