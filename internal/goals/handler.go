package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	List(ctx context.Context, userID string, params ListParams) (*pkg.Paginated[fitness.Goal], error)
	Get(ctx context.Context, userID, id string) (*fitness.Goal, error)
	Create(ctx context.Context, userID string, in CreateInput) (*fitness.Goal, error)
	Update(ctx context.Context, userID, id string, in UpdateInput) (*fitness.Goal, error)
	Delete(ctx context.Context, userID, id string) error
	History(ctx context.Context, userID, goalID string, params HistoryParams) (*pkg.Paginated[fitness.GoalHistory], error)
}

type Handler struct {
	service goalsService
}

func NewHandler(service goalsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	params, verr := parseListParams(r.URL.Query())
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid query parameters", verr)
		return
	}

	page, err := h.service.List(ctx, userID, params)
	if err != nil {
		writeServiceError(w, "list goals", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	userID, goalID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	goal, err := h.service.Get(ctx, userID, goalID)
	if err != nil {
		writeServiceError(w, "get goal", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, goal)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req createRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in, verr := parseCreateRequest(req)
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid payload", verr)
		return
	}

	goal, err := h.service.Create(ctx, userID, in)
	if err != nil {
		writeServiceError(w, "create goal", err)
		return
	}

	log.Debugf("goal %s created for user %s", goal.ID, userID)
	pkg.WriteJSON(w, http.StatusCreated, goal)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	userID, goalID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in, verr := parseUpdateRequest(req)
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid payload", verr)
		return
	}

	goal, err := h.service.Update(ctx, userID, goalID, in)
	if err != nil {
		writeServiceError(w, "update goal", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, goal)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, goalID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, goalID); err != nil {
		writeServiceError(w, "delete goal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.history")
	defer span.End()

	userID, goalID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	params, verr := parseHistoryParams(r.URL.Query())
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid query parameters", verr)
		return
	}

	page, err := h.service.History(ctx, userID, goalID, params)
	if err != nil {
		writeServiceError(w, "list goal history", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}

func requestIDs(w http.ResponseWriter, r *http.Request) (userID, goalID string, ok bool) {
	userID, ok = auth.UserIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return "", "", false
	}

	goalID = mux.Vars(r)["id"]
	if !ValidUUID(goalID) {
		verr := &pkg.ValidationError{}
		verr.Add("id", "Value must be a valid UUID")
		pkg.WriteValidationError(w, "Invalid goal id", verr)
		return "", "", false
	}

	return userID, goalID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !pkg.IsJSONRequest(r) {
		pkg.WriteError(w, http.StatusUnsupportedMediaType, pkg.ErrCodeUnsupportedMediaType,
			"Requests must specify application/json as the Content-Type header", nil)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		log.Errorf("decode goal request: %s", err)
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "Request body contains invalid JSON", nil)
		return false
	}
	return true
}

func writeUnauthorized(w http.ResponseWriter) {
	pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *pkg.ValidationError
	switch {
	case errors.As(err, &verr):
		pkg.WriteValidationError(w, "Invalid payload", verr)
	case errors.Is(err, ErrGoalNotFound):
		pkg.WriteError(w, http.StatusNotFound, pkg.ErrCodeNotFound, "Goal not found", nil)
	case errors.Is(err, ErrGoalConflict):
		pkg.WriteError(w, http.StatusConflict, pkg.ErrCodeConflict, ErrGoalConflict.Error(), nil)
	case errors.Is(err, ErrUnknownSport):
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "sport_id does not reference an existing sport", map[string]any{
			"field": "sport_id",
		})
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "An unexpected error occurred", nil)
	}
}
