package progress

import (
	"math"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

const dayKeyLayout = "2006-01-02"

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SeriesBounds returns the UTC day range [start, end) walked for year.
// The current year stops after today, any other year covers all of its days.
func SeriesBounds(year int, today time.Time) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	today = today.UTC()
	if year == today.Year() {
		end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		return start, end
	}

	return start, start.AddDate(1, 0, 0)
}

// BuildCumulativeSeries returns one point per UTC day with the running total of metric.
// Activities with an unparseable start date, and negative or non-finite contributions, are ignored.
func BuildCumulativeSeries(activities []fitness.Activity, metric fitness.Metric, year int, today time.Time) []SeriesPoint {
	start, end := SeriesBounds(year, today)

	perDay := make(map[string]float64)
	for _, a := range activities {
		startTime, ok := a.StartTime()
		if !ok {
			continue
		}
		v := fitness.ExtractMetric(a, metric)
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		perDay[startTime.Format(dayKeyLayout)] += v
	}

	days := int(end.Sub(start).Hours() / 24)
	series := make([]SeriesPoint, 0, days)

	var running float64
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		running += perDay[key]
		series = append(series, SeriesPoint{
			Date:  key,
			Value: running,
		})
	}

	return series
}
