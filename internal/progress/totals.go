package progress

import (
	"strings"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

type MetricTriple struct {
	Distance      float64 `json:"distance"`
	Time          float64 `json:"time"`
	ElevationGain float64 `json:"elevation_gain"`
}

func (t MetricTriple) Get(m fitness.Metric) float64 {
	switch m {
	case fitness.MetricDistance:
		return t.Distance
	case fitness.MetricTime:
		return t.Time
	case fitness.MetricElevationGain:
		return t.ElevationGain
	default:
		return 0
	}
}

func (t *MetricTriple) add(a fitness.Activity) {
	t.Distance += fitness.ExtractMetric(a, fitness.MetricDistance)
	t.Time += fitness.ExtractMetric(a, fitness.MetricTime)
	t.ElevationGain += fitness.ExtractMetric(a, fitness.MetricElevationGain)
}

// Totals is a per-request aggregate; BySport is keyed by normalized sport code.
type Totals struct {
	Global  MetricTriple            `json:"global"`
	BySport map[string]MetricTriple `json:"by_sport"`
}

// NormalizeSportCode is the trimmed, lower-cased sport_type, or type when sport_type is blank.
func NormalizeSportCode(a fitness.Activity) string {
	raw := a.SportType
	if strings.TrimSpace(raw) == "" {
		raw = a.Type
	}
	return normalizeCode(raw)
}

func normalizeCode(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// BuildTotals folds activities into global and per-sport totals.
// Activities without a sport code only count towards the global bucket.
func BuildTotals(activities []fitness.Activity) Totals {
	totals := Totals{
		BySport: make(map[string]MetricTriple),
	}

	for _, a := range activities {
		totals.Global.add(a)

		code := NormalizeSportCode(a)
		if code == "" {
			continue
		}
		bucket := totals.BySport[code]
		bucket.add(a)
		totals.BySport[code] = bucket
	}

	return totals
}
