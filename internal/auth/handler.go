package auth

import (
	"context"
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type service interface {
	Logout(ctx context.Context, claims *Claims) error
	DeleteAccount(ctx context.Context, claims *Claims) (DeletedCounts, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	if err := h.service.Logout(ctx, claims); err != nil {
		log.Errorf("logout user %s: %s", claims.Subject, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "logout failed", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.deleteaccount")
	defer span.End()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	counts, err := h.service.DeleteAccount(ctx, claims)
	if err != nil {
		log.Errorf("delete account of user %s: %s", claims.Subject, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "failed to delete account", nil)
		return
	}

	log.Warnf("account data of user %s deleted: %+v", claims.Subject, counts)
	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"deleted": counts,
	})
}
