package fitness

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDurationPrefix = regexp.MustCompile(`(?i)^P(T.*)?`)
	isoSecondsGroup   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)S`)
	firstNumber       = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	nonDigits         = regexp.MustCompile(`[^0-9]`)
)

// ParseIntervalSeconds converts a stored interval into seconds.
//
// Accepted inputs: nil, any Go number (returned as is), Interval, string or *string.
// Strings may be "HH:MM:SS", an ISO-8601 duration ("PT90S"), or anything holding a
// number ("600 seconds", "42s"). For ISO durations only the S component is read,
// so "PT1H30M" yields the fallback number scan rather than 5400.
// Unsupported types and unparseable strings yield 0.
func ParseIntervalSeconds(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case Interval:
		return v.Seconds()
	case *Interval:
		if v == nil {
			return 0
		}
		return v.Seconds()
	case string:
		return parseIntervalText(v)
	case *string:
		if v == nil {
			return 0
		}
		return parseIntervalText(*v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

func parseIntervalText(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		if secs, ok := parseClock(s); ok {
			return secs
		}
	}

	if isoDurationPrefix.MatchString(s) {
		if m := isoSecondsGroup.FindStringSubmatch(s); m != nil {
			if f, err := strconv.ParseFloat(m[1], 64); err == nil {
				return f
			}
		}
	}

	if m := firstNumber.FindString(s); m != "" {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		if t := math.Trunc(f); t != 0 {
			return t
		}
	}

	return 0
}

// parseClock reads "h:m:s"; anything other than three finite numbers is rejected.
func parseClock(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}

	var values [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		values[i] = f
	}

	return values[0]*3600 + values[1]*60 + values[2], true
}

// StripDurationSeconds drops every non-digit and parses the rest as seconds.
// Only meant for display of "<N>s" style values: "00:10:00" becomes 1000.
func StripDurationSeconds(value string) int64 {
	digits := nonDigits.ReplaceAllString(value, "")
	if digits == "" {
		return 0
	}
	secs, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return secs
}

type intervalKind int

const (
	intervalNull intervalKind = iota
	intervalText
	intervalSeconds
)

// Interval keeps a duration in the encoding it was stored with.
type Interval struct {
	kind    intervalKind
	text    string
	seconds float64
}

func IntervalFromText(text string) Interval {
	return Interval{kind: intervalText, text: text}
}

func IntervalFromSeconds(seconds float64) Interval {
	return Interval{kind: intervalSeconds, seconds: seconds}
}

func (i Interval) IsNull() bool {
	return i.kind == intervalNull
}

func (i Interval) Seconds() float64 {
	switch i.kind {
	case intervalText:
		return parseIntervalText(i.text)
	case intervalSeconds:
		return i.seconds
	default:
		return 0
	}
}

// String returns the raw encoding; numeric intervals render as "<N> seconds".
func (i Interval) String() string {
	switch i.kind {
	case intervalText:
		return i.text
	case intervalSeconds:
		return strconv.FormatFloat(i.seconds, 'f', -1, 64) + " seconds"
	default:
		return ""
	}
}

func (i Interval) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case intervalText:
		return json.Marshal(i.text)
	case intervalSeconds:
		if math.IsNaN(i.seconds) || math.IsInf(i.seconds, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(i.seconds)
	default:
		return []byte("null"), nil
	}
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = Interval{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = IntervalFromText(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*i = IntervalFromSeconds(f)
	default:
		// objects, arrays and booleans carry no duration
		*i = Interval{}
	}
	return nil
}

// Scan implements sql.Scanner for interval columns selected as text.
func (i *Interval) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Interval{}
	case string:
		*i = IntervalFromText(v)
	case []byte:
		*i = IntervalFromText(string(v))
	case int64:
		*i = IntervalFromSeconds(float64(v))
	case float64:
		*i = IntervalFromSeconds(v)
	default:
		return fmt.Errorf("scan interval: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer; the result is castable to postgres interval.
func (i Interval) Value() (driver.Value, error) {
	if i.kind == intervalNull {
		return nil, nil
	}
	return i.String(), nil
}
