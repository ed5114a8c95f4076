package middleware

import (
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Cors answers preflight requests and sets CORS headers for the configured origins.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Authorization", "x-supabase-access-token", auth.AdminSecretHeader,
		},
		AllowCredentials: true,
		MaxAge:           600,
	})

	log.Debugf("CORS allowed origins: %v", allowedOrigins)
	return c.Handler
}
