package activities

import (
	"math"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gprawdzik/x10dev-zaliczenie/pkg"
)

const (
	maxLabelLength    = 64
	maxPrimarySports  = 25
	distributionDelta = 0.01
)

var (
	sortableColumns = map[string]string{
		"start_date":  "start_date",
		"distance":    "distance",
		"moving_time": "moving_time",
	}
	sortDirections = map[string]string{
		"asc":  "ASC",
		"desc": "DESC",
	}
)

type ListParams struct {
	From      *time.Time
	To        *time.Time
	SportType *string
	Type      *string
	Page      int
	Limit     int
	SortBy    string
	SortDir   string
}

func parseLabel(values url.Values, key string, verr *pkg.ValidationError) *string {
	raw := pkg.QueryString(values, key)
	if raw != nil && utf8.RuneCountInString(*raw) > maxLabelLength {
		verr.Add(key, key+" must not exceed 64 characters")
		return nil
	}
	return raw
}

func parseTimestamp(values url.Values, key string, verr *pkg.ValidationError) *time.Time {
	raw := pkg.QueryString(values, key)
	if raw == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		verr.Add(key, "Value must be a valid ISO 8601 date with timezone")
		return nil
	}
	return &t
}

func parseListParams(values url.Values) (ListParams, *pkg.ValidationError) {
	verr := &pkg.ValidationError{}
	params := ListParams{
		SortBy:  "start_date",
		SortDir: "desc",
	}

	params.From = parseTimestamp(values, "from", verr)
	params.To = parseTimestamp(values, "to", verr)
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		verr.Add("to", `"from" must be earlier than "to"`)
	}

	params.SportType = parseLabel(values, "sport_type", verr)
	params.Type = parseLabel(values, "type", verr)

	page, err := pkg.QueryInt(values, "page", 1)
	if err != nil || page < 1 {
		verr.Add("page", "page must be an integer greater than or equal to 1")
	}
	limit, err := pkg.QueryInt(values, "limit", pkg.DefaultPageLimit)
	if err != nil || limit < 1 || limit > pkg.MaxPageLimit {
		verr.Add("limit", "limit must be an integer between 1 and 100")
	}
	params.Page, params.Limit = page, limit

	if raw := pkg.QueryString(values, "sort_by"); raw != nil {
		if _, ok := sortableColumns[*raw]; !ok {
			verr.Add("sort_by", "sort_by must be one of start_date, distance, moving_time")
		}
		params.SortBy = *raw
	}
	if raw := pkg.QueryString(values, "sort_dir"); raw != nil {
		if _, ok := sortDirections[*raw]; !ok {
			verr.Add("sort_dir", "sort_dir must be one of asc, desc")
		}
		params.SortDir = *raw
	}

	return params, verr
}

// validateOverrides checks a generate request body. PrimarySports are trimmed in place.
func validateOverrides(o *Overrides) *pkg.ValidationError {
	verr := &pkg.ValidationError{}

	if o.PrimarySports != nil {
		switch {
		case len(o.PrimarySports) == 0:
			verr.Add("primary_sports", "Provide at least one primary sport")
		case len(o.PrimarySports) > maxPrimarySports:
			verr.Add("primary_sports", "Provide at most 25 primary sports")
		}
		for i, s := range o.PrimarySports {
			s = strings.TrimSpace(s)
			switch {
			case s == "":
				verr.Add("primary_sports", "Each sport_type must contain at least 1 character")
			case utf8.RuneCountInString(s) > maxLabelLength:
				verr.Add("primary_sports", "Each sport_type must not exceed 64 characters")
			}
			o.PrimarySports[i] = s
		}
	}

	if d := o.Distribution; d != nil {
		for _, share := range []float64{d.Primary, d.Secondary, d.Tertiary, d.Quaternary} {
			if share < 0 || share > 1 {
				verr.Add("distribution", "Distribution values must be between 0 and 1")
				break
			}
		}
		if math.Abs(d.sum()-1) > distributionDelta {
			verr.Add("distribution.quaternary", "Distribution values must add up to 1.0 (±0.01)")
		}
	}

	if o.Timezone != "" {
		tz := strings.TrimSpace(o.Timezone)
		switch {
		case tz == "":
			verr.Add("timezone", "timezone is required")
		case utf8.RuneCountInString(tz) > maxLabelLength:
			verr.Add("timezone", "timezone must not exceed 64 characters")
		default:
			if _, err := time.LoadLocation(tz); err != nil {
				verr.Add("timezone", "timezone must be a valid IANA identifier")
			}
		}
		o.Timezone = tz
	}

	return verr
}
