package goals

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/google/uuid"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	sortableColumns = map[string]string{
		"created_at":   "created_at",
		"year":         "year",
		"target_value": "target_value",
	}
	sortDirections = map[string]string{
		"asc":  "ASC",
		"desc": "DESC",
	}
)

type CreateInput struct {
	ScopeType   fitness.Scope
	Year        int
	MetricType  fitness.Metric
	TargetValue float64
	SportID     *string
}

// UpdateInput carries the editable fields; nil means unchanged.
type UpdateInput struct {
	MetricType  *fitness.Metric
	TargetValue *float64
}

type ListParams struct {
	Year       *int
	ScopeType  *fitness.Scope
	MetricType *fitness.Metric
	SportID    *string
	Page       int
	Limit      int
	SortBy     string
	SortDir    string
}

type HistoryParams struct {
	Page    int
	Limit   int
	SortDir string
}

type createRequest struct {
	ScopeType   string      `json:"scope_type"`
	Year        json.Number `json:"year"`
	MetricType  string      `json:"metric_type"`
	TargetValue json.Number `json:"target_value"`
	SportID     *string     `json:"sport_id"`
}

type updateRequest struct {
	MetricType  *string      `json:"metric_type"`
	TargetValue *json.Number `json:"target_value"`
}

func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func parseYear(raw string, verr *pkg.ValidationError) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		verr.Add("year", "Expected number")
		return 0, false
	}
	if f != math.Trunc(f) {
		verr.Add("year", "Year must be an integer")
		return 0, false
	}
	year := int(f)
	if year < MinYear {
		verr.Add("year", "Year must be no earlier than 2000")
		return 0, false
	}
	if year > MaxYear {
		verr.Add("year", "Year must be no later than 2100")
		return 0, false
	}
	return year, true
}

func parsePositive(field, raw string, verr *pkg.ValidationError) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		verr.Add(field, "Expected number")
		return 0, false
	}
	if f <= 0 {
		verr.Add(field, "Value must be greater than zero")
		return 0, false
	}
	return f, true
}

func parseCreateRequest(req createRequest) (CreateInput, *pkg.ValidationError) {
	var in CreateInput
	verr := &pkg.ValidationError{}

	scope, err := fitness.ParseScope(req.ScopeType)
	if err != nil {
		verr.Add("scope_type", "scope_type must be one of global, per_sport")
	}
	in.ScopeType = scope

	if year, ok := parseYear(req.Year.String(), verr); ok {
		in.Year = year
	}

	metric, err := fitness.ParseMetric(req.MetricType)
	if err != nil {
		verr.Add("metric_type", "metric_type must be one of distance, time, elevation_gain")
	}
	in.MetricType = metric

	if target, ok := parsePositive("target_value", req.TargetValue.String(), verr); ok {
		in.TargetValue = target
	}

	if req.SportID != nil {
		sportID := strings.TrimSpace(*req.SportID)
		switch {
		case sportID == "":
		case !ValidUUID(sportID):
			verr.Add("sport_id", "Value must be a valid UUID")
		default:
			in.SportID = &sportID
		}
	}

	if scope == fitness.ScopePerSport && in.SportID == nil && !hasField(verr, "sport_id") {
		verr.Add("sport_id", `sport_id is required when scope_type is "per_sport"`)
	}
	if scope == fitness.ScopeGlobal && in.SportID != nil {
		verr.Add("sport_id", `sport_id must be null when scope_type is "global"`)
	}

	return in, verr
}

func hasField(verr *pkg.ValidationError, field string) bool {
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func parseUpdateRequest(req updateRequest) (UpdateInput, *pkg.ValidationError) {
	var in UpdateInput
	verr := &pkg.ValidationError{}

	if req.MetricType != nil {
		metric, err := fitness.ParseMetric(*req.MetricType)
		if err != nil {
			verr.Add("metric_type", "metric_type must be one of distance, time, elevation_gain")
		} else {
			in.MetricType = &metric
		}
	}

	if req.TargetValue != nil {
		if target, ok := parsePositive("target_value", req.TargetValue.String(), verr); ok {
			in.TargetValue = &target
		}
	}

	if req.MetricType == nil && req.TargetValue == nil {
		verr.Add("", "Provide at least one field to update (metric_type or target_value)")
	}

	return in, verr
}

func parsePaging(values url.Values, verr *pkg.ValidationError) (page, limit int) {
	page, err := pkg.QueryInt(values, "page", 1)
	if err != nil || page < 1 {
		verr.Add("page", "page must be an integer greater than or equal to 1")
	}
	limit, err = pkg.QueryInt(values, "limit", pkg.DefaultPageLimit)
	if err != nil || limit < 1 || limit > pkg.MaxPageLimit {
		verr.Add("limit", "limit must be an integer between 1 and 100")
	}
	return page, limit
}

func parseSortDir(values url.Values, verr *pkg.ValidationError) string {
	sortDir := "desc"
	if raw := pkg.QueryString(values, "sort_dir"); raw != nil {
		if _, ok := sortDirections[*raw]; !ok {
			verr.Add("sort_dir", "sort_dir must be one of asc, desc")
		}
		sortDir = *raw
	}
	return sortDir
}

func parseListParams(values url.Values) (ListParams, *pkg.ValidationError) {
	verr := &pkg.ValidationError{}
	params := ListParams{
		SortBy: "created_at",
	}

	if raw := pkg.QueryString(values, "year"); raw != nil {
		if year, ok := parseYear(*raw, verr); ok {
			params.Year = &year
		}
	}
	if raw := pkg.QueryString(values, "sport_id"); raw != nil {
		if ValidUUID(*raw) {
			params.SportID = raw
		} else {
			verr.Add("sport_id", "Value must be a valid UUID")
		}
	}
	if raw := pkg.QueryString(values, "scope_type"); raw != nil {
		if scope, err := fitness.ParseScope(*raw); err == nil {
			params.ScopeType = &scope
		} else {
			verr.Add("scope_type", "scope_type must be one of global, per_sport")
		}
	}
	if raw := pkg.QueryString(values, "metric_type"); raw != nil {
		if metric, err := fitness.ParseMetric(*raw); err == nil {
			params.MetricType = &metric
		} else {
			verr.Add("metric_type", "metric_type must be one of distance, time, elevation_gain")
		}
	}

	params.Page, params.Limit = parsePaging(values, verr)

	if raw := pkg.QueryString(values, "sort_by"); raw != nil {
		if _, ok := sortableColumns[*raw]; !ok {
			verr.Add("sort_by", "sort_by must be one of created_at, year, target_value")
		}
		params.SortBy = *raw
	}
	params.SortDir = parseSortDir(values, verr)

	return params, verr
}

func parseHistoryParams(values url.Values) (HistoryParams, *pkg.ValidationError) {
	verr := &pkg.ValidationError{}
	var params HistoryParams

	params.Page, params.Limit = parsePaging(values, verr)
	if raw := pkg.QueryString(values, "sort_by"); raw != nil && *raw != "changed_at" {
		verr.Add("sort_by", "sort_by must be changed_at")
	}
	params.SortDir = parseSortDir(values, verr)

	return params, verr
}
