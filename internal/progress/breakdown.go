package progress

import (
	"fmt"
	"sort"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

type BreakdownItem struct {
	Sport string `json:"sport"`
	Count int    `json:"count"`
}

// CountBySport counts activities per sport code, labelled "Name (code)" when the name is known.
// Sorted by count descending, then label ascending.
func CountBySport(activities []fitness.Activity, codeToName map[string]string) []BreakdownItem {
	groups := GroupBySport(activities)

	items := make([]BreakdownItem, 0, len(groups))
	for code, group := range groups {
		label := code
		if name := codeToName[code]; name != "" {
			label = fmt.Sprintf("%s (%s)", name, code)
		}
		items = append(items, BreakdownItem{
			Sport: label,
			Count: len(group),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Sport < items[j].Sport
	})

	return items
}

// GroupBySport buckets activities by normalized sport code, keeping input order inside a bucket.
func GroupBySport(activities []fitness.Activity) map[string][]fitness.Activity {
	groups := make(map[string][]fitness.Activity)
	for _, a := range activities {
		code := NormalizeSportCode(a)
		if code == "" {
			continue
		}
		groups[code] = append(groups[code], a)
	}
	return groups
}
