package activities

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	DefaultTimezone = "Europe/Warsaw"
	GeneratedCount  = 100

	sportSlots = 4
)

var (
	DefaultSports       = []string{"running", "cycling", "swimming", "hiking"}
	DefaultDistribution = Distribution{Primary: 0.5, Secondary: 0.3, Tertiary: 0.15, Quaternary: 0.05}

	weekdayHours = [2]int{16, 21}
	weekendHours = [2]int{7, 19}
)

var builtinProfiles = map[string]fitness.SportProfile{
	"running": {
		Type: "Run", DisplayName: "Run",
		DistanceKmRange: [2]float64{3, 24}, SpeedKphRange: [2]float64{8.5, 15.5}, ElevationRange: [2]float64{20, 450},
	},
	"cycling": {
		Type: "Ride", DisplayName: "Ride",
		DistanceKmRange: [2]float64{15, 120}, SpeedKphRange: [2]float64{22, 36}, ElevationRange: [2]float64{50, 1200},
	},
	"swimming": {
		Type: "Swim", DisplayName: "Swim",
		DistanceKmRange: [2]float64{0.6, 4}, SpeedKphRange: [2]float64{2, 5}, ElevationRange: [2]float64{0, 25},
	},
	"hiking": {
		Type: "Hike", DisplayName: "Hike",
		DistanceKmRange: [2]float64{4, 25}, SpeedKphRange: [2]float64{3, 6}, ElevationRange: [2]float64{120, 1500},
	},
	"walking": {
		Type: "Walk", DisplayName: "Walk",
		DistanceKmRange: [2]float64{2, 12}, SpeedKphRange: [2]float64{3, 6}, ElevationRange: [2]float64{0, 200},
	},
	"sup": {
		Type: "StandUpPaddle", DisplayName: "SUP",
		DistanceKmRange: [2]float64{2, 10}, SpeedKphRange: [2]float64{4, 8}, ElevationRange: [2]float64{0, 50},
	},
	"pilates": {
		Type: "Workout", DisplayName: "Pilates",
		DistanceKmRange: [2]float64{1, 3}, SpeedKphRange: [2]float64{3, 5}, ElevationRange: [2]float64{0, 20},
	},
	"strength_training": {
		Type: "Workout", DisplayName: "Strength",
		DistanceKmRange: [2]float64{1, 4}, SpeedKphRange: [2]float64{1, 4}, ElevationRange: [2]float64{0, 40},
	},
}

var fallbackProfile = fitness.SportProfile{
	Type:            "Workout",
	DisplayName:     "Workout",
	DistanceKmRange: [2]float64{3, 10},
	SpeedKphRange:   [2]float64{4, 8},
	ElevationRange:  [2]float64{0, 200},
}

// Distribution holds the share of the primary..quaternary sport.
type Distribution struct {
	Primary    float64 `json:"primary"`
	Secondary  float64 `json:"secondary"`
	Tertiary   float64 `json:"tertiary"`
	Quaternary float64 `json:"quaternary"`
}

func (d Distribution) sum() float64 {
	return d.Primary + d.Secondary + d.Tertiary + d.Quaternary
}

func (d Distribution) normalized() Distribution {
	sum := d.sum()
	if sum == 0 {
		return DefaultDistribution
	}
	return Distribution{
		Primary:    d.Primary / sum,
		Secondary:  d.Secondary / sum,
		Tertiary:   d.Tertiary / sum,
		Quaternary: d.Quaternary / sum,
	}
}

// Overrides tune a generation run; zero values fall back to the defaults.
type Overrides struct {
	PrimarySports []string      `json:"primary_sports,omitempty"`
	Distribution  *Distribution `json:"distribution,omitempty"`
	Timezone      string        `json:"timezone,omitempty"`
}

type generatorConfig struct {
	location     *time.Location
	sports       []string
	distribution Distribution
}

// Generator builds synthetic activities for the last 365 days.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator returns a generator; seed 0 picks a random seed.
func NewGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

func resolveConfig(overrides Overrides) (generatorConfig, error) {
	requested := overrides.PrimarySports
	if len(requested) == 0 {
		requested = DefaultSports
	}

	sports := make([]string, 0, sportSlots)
	seen := make(map[string]bool)
	for _, s := range requested {
		code := strings.ToLower(strings.TrimSpace(s))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		sports = append(sports, code)
	}
	for i := 0; len(sports) < sportSlots; i++ {
		fallback := DefaultSports[i%len(DefaultSports)]
		if !seen[fallback] {
			seen[fallback] = true
			sports = append(sports, fallback)
		}
	}
	if len(sports) > sportSlots {
		sports = sports[:sportSlots]
	}

	tz := strings.TrimSpace(overrides.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return generatorConfig{}, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	distribution := DefaultDistribution
	if overrides.Distribution != nil {
		distribution = overrides.Distribution.normalized()
	}

	return generatorConfig{
		location:     location,
		sports:       sports,
		distribution: distribution,
	}, nil
}

// Generate returns GeneratedCount activities for userID. Profiles from the sports
// catalog take precedence over the built-in ones; unknown codes get a fallback profile.
func (g *Generator) Generate(userID string, overrides Overrides, catalogProfiles map[string]fitness.SportProfile) ([]fitness.Activity, error) {
	cfg, err := resolveConfig(overrides)
	if err != nil {
		return nil, err
	}

	now := g.now()
	activities := make([]fitness.Activity, 0, GeneratedCount)
	for i := 0; i < GeneratedCount; i++ {
		activities = append(activities, g.activity(userID, cfg, now, catalogProfiles))
	}
	return activities, nil
}

func (g *Generator) activity(userID string, cfg generatorConfig, now time.Time, catalogProfiles map[string]fitness.SportProfile) fitness.Activity {
	start := g.startTime(cfg.location, now)
	sport := g.pickSport(cfg)
	profile := profileFor(sport, catalogProfiles)
	seasonality := seasonalityMultiplier(start.Month())

	distanceKm := clamp(
		g.faker.Float64Range(profile.DistanceKmRange[0], profile.DistanceKmRange[1])*seasonality,
		profile.DistanceKmRange[0]*0.5,
		profile.DistanceKmRange[1]*1.25,
	)
	distanceMeters := math.Max(100, math.Round(distanceKm*1000))

	speedKph := g.faker.Float64Range(profile.SpeedKphRange[0], profile.SpeedKphRange[1])
	movingSeconds := int64(math.Max(300, math.Round(distanceKm/speedKph*3600)))
	elapsedSeconds := movingSeconds + int64(g.faker.IntRange(60, 900))

	elevation := math.Max(0, math.Round(clamp(
		g.faker.Float64Range(profile.ElevationRange[0], profile.ElevationRange[1])*seasonality,
		0,
		profile.ElevationRange[1]*1.25,
	)))

	_, offset := start.Zone()

	return fitness.Activity{
		UserID:             userID,
		Name:               activityName(profile.DisplayName, start.Hour()),
		Type:               profile.Type,
		SportType:          sport,
		StartDate:          start.UTC().Format("2006-01-02T15:04:05.000Z"),
		StartDateLocal:     start.Format("2006-01-02T15:04:05-07:00"),
		Timezone:           cfg.location.String(),
		UTCOffset:          offset,
		Distance:           distanceMeters,
		MovingTime:         fitness.IntervalFromText(fmt.Sprintf("%d seconds", movingSeconds)),
		ElapsedTime:        fitness.IntervalFromText(fmt.Sprintf("%d seconds", elapsedSeconds)),
		TotalElevationGain: elevation,
		AverageSpeed:       math.Round(distanceMeters/float64(movingSeconds)*100) / 100,
	}
}

// startTime picks a day in the last 365 days and an active local hour for it.
func (g *Generator) startTime(location *time.Location, now time.Time) time.Time {
	yearAgo := now.Add(-365 * 24 * time.Hour)
	instant := yearAgo.Add(time.Duration(g.faker.Float64Range(0, float64(now.Sub(yearAgo)))))
	local := instant.In(location)

	hours := weekdayHours
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		hours = weekendHours
	}

	return time.Date(
		local.Year(), local.Month(), local.Day(),
		g.faker.IntRange(hours[0], hours[1]),
		g.faker.IntRange(0, 59),
		g.faker.IntRange(0, 59),
		0, location,
	)
}

func (g *Generator) pickSport(cfg generatorConfig) string {
	weights := []float64{
		cfg.distribution.Primary,
		cfg.distribution.Secondary,
		cfg.distribution.Tertiary,
		cfg.distribution.Quaternary,
	}

	total := cfg.distribution.sum()
	if total == 0 {
		total = 1
	}
	threshold := g.faker.Float64Range(0, total)

	acc := 0.0
	for i, w := range weights {
		acc += w
		if threshold <= acc {
			return cfg.sports[i]
		}
	}
	return cfg.sports[len(cfg.sports)-1]
}

func profileFor(code string, catalogProfiles map[string]fitness.SportProfile) fitness.SportProfile {
	if p, ok := catalogProfiles[code]; ok {
		return p
	}
	if p, ok := builtinProfiles[code]; ok {
		return p
	}

	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(code))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	p := fallbackProfile
	if len(words) > 0 {
		p.DisplayName = strings.Join(words, " ")
	}
	return p
}

func seasonalityMultiplier(month time.Month) float64 {
	switch month {
	case time.December, time.January, time.February:
		return 0.7
	case time.March, time.April, time.May:
		return 0.9
	case time.June, time.July, time.August:
		return 1.1
	default:
		return 1.0
	}
}

func activityName(displayName string, hour int) string {
	var timeOfDay string
	switch {
	case hour < 9:
		timeOfDay = "Morning"
	case hour < 13:
		timeOfDay = "Lunch"
	case hour < 18:
		timeOfDay = "Afternoon"
	default:
		timeOfDay = "Evening"
	}
	return strings.TrimSpace(timeOfDay + " " + displayName)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
