package progress

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// ResultCache memoizes annual progress responses per user.
// Entries are never deleted; bumping the user generation makes them unreachable.
type ResultCache struct {
	mu    sync.Mutex
	cache *freecache.Cache
	ttl   time.Duration
}

// cachedProgress is the stored form of AnnualProgress. Series dates are
// consecutive days from January 1st, so only the values are kept.
type cachedProgress struct {
	Year        int            `json:"y"`
	MetricType  fitness.Metric `json:"m"`
	ScopeType   fitness.Scope  `json:"s"`
	SportID     *string        `json:"sp,omitempty"`
	TargetValue float64        `json:"t"`
	Values      []float64      `json:"v"`
}

func NewResultCache(sizeMegabytes int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
		ttl:   ttl,
	}
}

func (c *ResultCache) generation(userID string) uint64 {
	genBytes, err := c.cache.Get([]byte("gen::" + userID))
	if err != nil || len(genBytes) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(genBytes)
}

// Key pins the current generation of userID. The same key must be used for
// Get and Set, taken before the underlying data is read.
func (c *ResultCache) Key(userID string, q Query, today time.Time) string {
	sport := "-"
	if q.SportID != nil {
		sport = *q.SportID
	}
	return fmt.Sprintf(
		"progress::%s::%d::%d::%s::%s::%s",
		userID, c.generation(userID), q.Year, q.Metric, sport, today.UTC().Format(dayKeyLayout),
	)
}

func (c *ResultCache) Get(key string) (*AnnualProgress, bool) {
	raw, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}

	stored := cachedProgress{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Errorf("unmarshal cached progress %s: %s", key, err)
		return nil, false
	}

	start := time.Date(stored.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := make([]SeriesPoint, len(stored.Values))
	for i, v := range stored.Values {
		series[i] = SeriesPoint{
			Date:  start.AddDate(0, 0, i).Format(dayKeyLayout),
			Value: v,
		}
	}

	return &AnnualProgress{
		Year:        stored.Year,
		MetricType:  stored.MetricType,
		ScopeType:   stored.ScopeType,
		SportID:     stored.SportID,
		TargetValue: stored.TargetValue,
		Series:      series,
	}, true
}

func (c *ResultCache) Set(key string, result *AnnualProgress) {
	stored := cachedProgress{
		Year:        result.Year,
		MetricType:  result.MetricType,
		ScopeType:   result.ScopeType,
		SportID:     result.SportID,
		TargetValue: result.TargetValue,
		Values:      make([]float64, len(result.Series)),
	}
	for i, p := range result.Series {
		stored.Values[i] = p.Value
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("marshal progress for cache: %s", err)
		return
	}

	if err := c.cache.Set([]byte(key), raw, int(c.ttl.Seconds())); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Debugf("progress %s too large for cache: %d bytes", key, len(raw))
			return
		}
		log.Errorf("write progress cache %s: %s", key, err)
	}
}

// InvalidateUser drops every cached result of userID.
func (c *ResultCache) InvalidateUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, c.generation(userID)+1)
	if err := c.cache.Set([]byte("gen::"+userID), next, 0); err != nil {
		log.Errorf("bump progress cache generation for user %s: %s", userID, err)
	}
}
