package progress

import (
	"math"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

type SportLookup struct {
	ByID       map[string]fitness.Sport
	CodeToName map[string]string
}

func NewSportLookup(sports []fitness.Sport) SportLookup {
	lookup := SportLookup{
		ByID:       make(map[string]fitness.Sport, len(sports)),
		CodeToName: make(map[string]string, len(sports)),
	}
	for _, s := range sports {
		lookup.ByID[s.ID] = s
		if code := normalizeCode(s.Code); code != "" {
			lookup.CodeToName[code] = s.Name
		}
	}
	return lookup
}

// NormalizeTargetValue converts a stored goal target into the unit of the totals.
// Time targets are kept in hours and compared against seconds.
func NormalizeTargetValue(metric fitness.Metric, target float64) float64 {
	if metric == fitness.MetricTime {
		return target * 3600
	}
	return target
}

// IsGoalAchieved compares the goal target with the matching bucket of totals.
// Per-sport goals resolve their bucket through the sport id first, then through
// the raw sport_id used as a code.
func IsGoalAchieved(goal fitness.Goal, totals Totals, lookup SportLookup) bool {
	if math.IsNaN(goal.TargetValue) || math.IsInf(goal.TargetValue, 0) || goal.TargetValue <= 0 {
		return false
	}
	if !goal.MetricType.IsValid() {
		return false
	}

	target := NormalizeTargetValue(goal.MetricType, goal.TargetValue)

	switch goal.ScopeType {
	case fitness.ScopeGlobal:
		return totals.Global.Get(goal.MetricType) >= target
	case fitness.ScopePerSport:
		bucket, ok := resolveSportBucket(goal.SportID, totals, lookup)
		if !ok {
			return false
		}
		return bucket.Get(goal.MetricType) >= target
	default:
		return false
	}
}

func resolveSportBucket(sportID *string, totals Totals, lookup SportLookup) (MetricTriple, bool) {
	if sportID == nil || *sportID == "" {
		return MetricTriple{}, false
	}

	if sport, ok := lookup.ByID[*sportID]; ok {
		if bucket, ok := totals.BySport[normalizeCode(sport.Code)]; ok {
			return bucket, true
		}
	}

	bucket, ok := totals.BySport[normalizeCode(*sportID)]
	return bucket, ok
}
