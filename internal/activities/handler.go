package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activities_test

const maxGenerateBodyBytes = 64 * 1024

type activitiesService interface {
	List(ctx context.Context, userID string, params ListParams) (*pkg.Paginated[ListItem], error)
	Generate(ctx context.Context, userID string, overrides Overrides, clientIP string) (*GenerateResult, error)
}

type Handler struct {
	service activitiesService
}

func NewHandler(service activitiesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	params, verr := parseListParams(r.URL.Query())
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid query parameters", verr)
		return
	}

	page, err := h.service.List(ctx, userID, params)
	if err != nil {
		log.Errorf("list activities for %s: %s", userID, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "Unable to fetch activities for the current user", nil)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}

// HandleGenerate accepts an empty body or a JSON Overrides object.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxGenerateBodyBytes))
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "Unable to read request body", nil)
		return
	}

	var overrides Overrides
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &overrides); err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "Request body must be valid JSON", nil)
			return
		}
	}

	if verr := validateOverrides(&overrides); verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid request payload", verr)
		return
	}

	clientIP, err := pkg.ReadUserIP(r)
	if err != nil || clientIP == "localhost" {
		clientIP = ""
	}

	result, err := h.service.Generate(ctx, userID, overrides, clientIP)
	if err != nil {
		var verr *pkg.ValidationError
		if errors.As(err, &verr) {
			pkg.WriteValidationError(w, verr.Fields[0].Message, verr)
			return
		}
		log.Errorf("generate activities for %s: %s", userID, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "Unable to generate activities for the current user", nil)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, result)
}
