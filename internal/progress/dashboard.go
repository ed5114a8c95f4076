package progress

import (
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

type DashboardMetrics struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalGoals      int             `json:"total_goals"`
	AchievedGoals   int             `json:"achieved_goals"`
	ActivitiesMonth []BreakdownItem `json:"activities_month"`
	ActivitiesYear  []BreakdownItem `json:"activities_year"`
}

// BuildMetrics evaluates every goal against the activities of year and
// breaks the activities down per sport for the year and for month.
func BuildMetrics(
	goals []fitness.Goal,
	activities []fitness.Activity,
	sports []fitness.Sport,
	year int,
	month time.Month,
) DashboardMetrics {
	activitiesForYear := FilterByYear(activities, year)
	totals := BuildTotals(activitiesForYear)
	lookup := NewSportLookup(sports)

	achieved := 0
	for _, g := range goals {
		if IsGoalAchieved(g, totals, lookup) {
			achieved++
		}
	}

	activitiesForMonth := make([]fitness.Activity, 0)
	for _, a := range activitiesForYear {
		// already filtered by year, so a parse failure is impossible here
		if t, _ := a.StartTime(); t.Month() == month {
			activitiesForMonth = append(activitiesForMonth, a)
		}
	}

	return DashboardMetrics{
		Year:            year,
		Month:           int(month),
		TotalGoals:      len(goals),
		AchievedGoals:   achieved,
		ActivitiesMonth: CountBySport(activitiesForMonth, lookup.CodeToName),
		ActivitiesYear:  CountBySport(activitiesForYear, lookup.CodeToName),
	}
}

// FilterByYear keeps activities whose start date falls in year (UTC).
func FilterByYear(activities []fitness.Activity, year int) []fitness.Activity {
	filtered := make([]fitness.Activity, 0, len(activities))
	for _, a := range activities {
		t, ok := a.StartTime()
		if !ok || t.Year() != year {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}
