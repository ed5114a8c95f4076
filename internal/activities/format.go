package activities

import (
	"fmt"
	"math"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
)

const (
	noPace        = "—"
	unnamed       = "Untitled activity"
	unknownType   = "Unknown type"
	viewDateStyle = "2006-01-02 15:04"
)

// ViewModel is the display form of an activity.
type ViewModel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	Distance  string `json:"distance"`
	Duration  string `json:"duration"`
	Elevation string `json:"elevation"`
	Pace      string `json:"pace"`
}

func FormatDistance(meters float64) string {
	if math.IsNaN(meters) {
		meters = 0
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func FormatElevation(meters float64) string {
	if math.IsNaN(meters) {
		meters = 0
	}
	return fmt.Sprintf("%d m", int64(math.Round(meters)))
}

// FormatDuration renders a "<N>s" duration as "Xh Ym", "Ym" or "0m".
func FormatDuration(duration string) string {
	total := fitness.StripDurationSeconds(duration)
	if total <= 0 {
		return "0m"
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatPace renders minutes per kilometer, or "—" when it is undefined.
func FormatPace(meters float64, duration string) string {
	total := fitness.StripDurationSeconds(duration)
	if math.IsNaN(meters) || meters <= 0 || total <= 0 {
		return noPace
	}

	paceSeconds := float64(total) / (meters / 1000)
	minutes := int64(paceSeconds / 60)
	seconds := int64(math.Round(math.Mod(paceSeconds, 60)))
	return fmt.Sprintf("%d:%02d /km", minutes, seconds)
}

func formatStartDate(startDate string) string {
	t, ok := fitness.ParseStartDate(startDate)
	if !ok {
		return "No date"
	}
	return t.Format(viewDateStyle)
}

func ToViewModel(a fitness.Activity) ViewModel {
	vm := ViewModel{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.SportType,
		StartDate: formatStartDate(a.StartDate),
		Distance:  FormatDistance(a.Distance),
		Duration:  FormatDuration(a.MovingTime.String()),
		Elevation: FormatElevation(a.TotalElevationGain),
		Pace:      FormatPace(a.Distance, a.MovingTime.String()),
	}
	if vm.Name == "" {
		vm.Name = unnamed
	}
	if vm.Type == "" {
		vm.Type = a.Type
	}
	if vm.Type == "" {
		vm.Type = unknownType
	}
	return vm
}
