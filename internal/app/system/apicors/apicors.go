// Package apicors provides permissive CORS middleware for the public read
// API. These endpoints carry no credentials - any site may fetch published
// content - so any origin is allowed and credentials are not.
//
// Admin routes do NOT use this: they authenticate with a SameSite=Strict
// cookie and get restrictive CORS from the core config instead.
package apicors

import "net/http"

// Middleware returns CORS middleware for the public content API.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
