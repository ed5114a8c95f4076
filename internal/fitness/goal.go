package fitness

import "time"

// Goal is a yearly target. TargetValue is in hours for MetricTime and in meters otherwise.
type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Year        int       `json:"year"`
	ScopeType   Scope     `json:"scope_type"`
	SportID     *string   `json:"sport_id"`
	MetricType  Metric    `json:"metric_type"`
	TargetValue float64   `json:"target_value"`
	CreatedAt   time.Time `json:"created_at"`
}

type GoalHistory struct {
	ID                  string    `json:"id"`
	GoalID              string    `json:"goal_id"`
	PreviousMetricType  Metric    `json:"previous_metric_type"`
	PreviousTargetValue float64   `json:"previous_target_value"`
	ChangedAt           time.Time `json:"changed_at"`
}
