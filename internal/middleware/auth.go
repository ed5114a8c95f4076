package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddlewareHandler struct {
	verifier       tokenVerifier
	revocations    revocationChecker
	metricsManager *metrics.Manager
	// method + " " + path
	allowedRoutes map[string]bool
}

func NewAuthMiddlewareHandler(
	verifier tokenVerifier,
	revocations revocationChecker,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier:       verifier,
		revocations:    revocations,
		metricsManager: metricsManager,
		allowedRoutes: map[string]bool{
			"GET /health": true,
			// guarded by the admin secret instead
			"POST /api/sports": true,
		},
	}
}

func (h *AuthMiddlewareHandler) routeIsAlwaysAllowed(r *http.Request) bool {
	return h.allowedRoutes[r.Method+" "+r.URL.Path]
}

func (h *AuthMiddlewareHandler) unauthorized(w http.ResponseWriter, message string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterUnauthorizedRequests.Inc()
	}
	pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, message, nil)
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.routeIsAlwaysAllowed(r) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.ExtractToken(r)
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "missing-auth-token")
				if errors.Is(err, auth.ErrInvalidToken) {
					h.unauthorized(w, "Malformed Authorization header")
					return
				}
				h.unauthorized(w, "Missing access token")
				return
			}

			claims, err := h.verifier.Verify(token)
			if err != nil {
				log.Debugf("[invalid token] [auth middleware] %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "invalid-token")
				h.unauthorized(w, "Invalid or expired access token")
				return
			}

			revoked, err := h.revocations.IsRevoked(ctx, claims.TokenID())
			if err != nil {
				log.Errorf("[failed revocation check] => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "check-revoked-err")
				span.RecordError(err)
				h.unauthorized(w, "Unable to verify access token")
				return
			}
			if revoked {
				log.Tracef("[revoked token] [auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "revoked")
				h.unauthorized(w, "Access token has been revoked")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
