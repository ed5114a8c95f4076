package fitness

import (
	"strings"
	"time"
)

type Activity struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	SportType          string     `json:"sport_type"`
	StartDate          string     `json:"start_date"`
	StartDateLocal     string     `json:"start_date_local"`
	Timezone           string     `json:"timezone"`
	UTCOffset          int        `json:"utc_offset"`
	Distance           float64    `json:"distance"`
	MovingTime         Interval   `json:"moving_time"`
	ElapsedTime        Interval   `json:"elapsed_time"`
	TotalElevationGain float64    `json:"total_elevation_gain"`
	AverageSpeed       float64    `json:"average_speed"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
}

// StartTime parses StartDate; ok is false for empty or malformed values.
func (a Activity) StartTime() (time.Time, bool) {
	return ParseStartDate(a.StartDate)
}

var startDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseStartDate reads an ISO-8601 timestamp. Values without a zone are taken as UTC.
func ParseStartDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
