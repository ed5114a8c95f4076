package sports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sports_test

type sportsCatalog interface {
	List(ctx context.Context) ([]fitness.Sport, error)
	Create(ctx context.Context, in CreateInput) (*fitness.Sport, error)
}

type adminChecker interface {
	IsAdmin(r *http.Request) bool
}

type Handler struct {
	catalog sportsCatalog
	admin   adminChecker
}

func NewHandler(catalog sportsCatalog, admin adminChecker) *Handler {
	return &Handler{
		catalog: catalog,
		admin:   admin,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.list")
	defer span.End()

	sports, err := h.catalog.List(ctx)
	if err != nil {
		log.Errorf("list sports: %s", err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "An unexpected error occurred", nil)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{"data": sports})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.create")
	defer span.End()

	if !h.admin.IsAdmin(r) {
		pkg.WriteError(w, http.StatusForbidden, pkg.ErrCodeForbidden, "admin access required", nil)
		return
	}

	if !pkg.IsJSONRequest(r) {
		pkg.WriteError(w, http.StatusUnsupportedMediaType, pkg.ErrCodeUnsupportedMediaType,
			"Requests must specify application/json as the Content-Type header", nil)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "Request body contains invalid JSON", nil)
		return
	}

	in, verr := parseCreateRequest(req)
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid payload", verr)
		return
	}

	sport, err := h.catalog.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ErrDuplicateSportCode) {
			pkg.WriteError(w, http.StatusConflict, pkg.ErrCodeConflict, err.Error(), map[string]any{
				"field": "code",
			})
			return
		}
		log.Errorf("create sport %s: %s", in.Code, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "An unexpected error occurred", nil)
		return
	}

	log.Infof("sport %s [%s] created", sport.Code, sport.ID)
	pkg.WriteJSON(w, http.StatusCreated, sport)
}
