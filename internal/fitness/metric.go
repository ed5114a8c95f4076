package fitness

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidMetric = errors.New("invalid metric type")
	ErrInvalidScope  = errors.New("invalid scope type")
)

type Metric string

const (
	MetricDistance      Metric = "distance"
	MetricTime          Metric = "time"
	MetricElevationGain Metric = "elevation_gain"
)

var AllMetrics = []Metric{MetricDistance, MetricTime, MetricElevationGain}

func (m Metric) String() string {
	return string(m)
}

func (m Metric) IsValid() bool {
	switch m {
	case MetricDistance, MetricTime, MetricElevationGain:
		return true
	default:
		return false
	}
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.TrimSpace(s))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMetric, s)
	}
	return m, nil
}

type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopePerSport Scope = "per_sport"
)

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeGlobal, ScopePerSport:
		return true
	default:
		return false
	}
}

func ParseScope(s string) (Scope, error) {
	scope := Scope(strings.TrimSpace(s))
	if !scope.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
	return scope, nil
}

// ExtractMetric returns the contribution of one activity to the given metric.
func ExtractMetric(a Activity, m Metric) float64 {
	switch m {
	case MetricDistance:
		return finiteOrZero(a.Distance)
	case MetricElevationGain:
		return finiteOrZero(a.TotalElevationGain)
	case MetricTime:
		return finiteOrZero(a.MovingTime.Seconds())
	default:
		return 0
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
