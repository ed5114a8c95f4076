package fitness

import (
	"errors"
	"fmt"
)

type Sport struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Profile     *SportProfile `json:"profile,omitempty"`
}

// SportProfile parameterizes synthetic activity generation for a sport.
type SportProfile struct {
	Type            string     `json:"type"`
	DisplayName     string     `json:"display_name"`
	DistanceKmRange [2]float64 `json:"distance_km_range"`
	SpeedKphRange   [2]float64 `json:"speed_kph_range"`
	ElevationRange  [2]float64 `json:"elevation_range"`
}

var ErrInvalidProfile = errors.New("invalid sport profile")

func (p SportProfile) Validate() error {
	if p.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidProfile)
	}
	ranges := []struct {
		name string
		r    [2]float64
	}{
		{"distance_km_range", p.DistanceKmRange},
		{"speed_kph_range", p.SpeedKphRange},
		{"elevation_range", p.ElevationRange},
	}
	for _, rng := range ranges {
		if rng.r[0] < 0 || rng.r[1] < rng.r[0] {
			return fmt.Errorf("%w: %s must be a non-negative [min, max] pair", ErrInvalidProfile, rng.name)
		}
	}
	if p.SpeedKphRange[0] <= 0 {
		return fmt.Errorf("%w: speed_kph_range must be positive", ErrInvalidProfile)
	}
	return nil
}
