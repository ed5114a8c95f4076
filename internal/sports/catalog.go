package sports

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/events"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=sports_test

const (
	megabyte       = 1024 * 1024
	catalogTTLSecs = 10 * 60
	listCacheKey   = "sports::all"
)

type sportsRepo interface {
	List(ctx context.Context) ([]fitness.Sport, error)
	Get(ctx context.Context, id string) (*fitness.Sport, error)
	Create(ctx context.Context, in CreateInput) (*fitness.Sport, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Catalog is the read-mostly sports dictionary. Lookups go through a freecache
// copy which is cleared whenever a sport is added.
type Catalog struct {
	repo      sportsRepo
	publisher eventPublisher
	cache     *freecache.Cache
}

func NewCatalog(repo sportsRepo, publisher eventPublisher, cacheSizeMegabytes int) *Catalog {
	return &Catalog{
		repo:      repo,
		publisher: publisher,
		cache:     freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

func sportCacheKey(id string) []byte {
	return []byte("sport::" + id)
}

func (c *Catalog) List(ctx context.Context) (_ []fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.sports.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if raw, err := c.cache.Get([]byte(listCacheKey)); err == nil {
		var sports []fitness.Sport
		if err := json.Unmarshal(raw, &sports); err == nil {
			return sports, nil
		}
		log.Errorf("unmarshal cached sports list: %s", err)
	}

	sports, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.store([]byte(listCacheKey), sports)
	for i := range sports {
		c.store(sportCacheKey(sports[i].ID), sports[i])
	}

	return sports, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (_ *fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.sports.get")
	defer func() {
		if errors.Is(err, ErrSportNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if raw, err := c.cache.Get(sportCacheKey(id)); err == nil {
		sport := &fitness.Sport{}
		if err := json.Unmarshal(raw, sport); err == nil {
			return sport, nil
		}
	}

	sport, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(sportCacheKey(id), sport)
	return sport, nil
}

func (c *Catalog) Create(ctx context.Context, in CreateInput) (_ *fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.sports.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sport, err := c.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	c.cache.Clear()

	if err := c.publisher.Publish(ctx, events.NewEvent(events.TypeSportCreated, "", sport.ID, sport)); err != nil {
		log.Errorf("publish %s for sport %s: %s", events.TypeSportCreated, sport.Code, err)
	}

	return sport, nil
}

func (c *Catalog) store(key []byte, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal sport cache entry %s: %s", key, err)
		return
	}
	if err := c.cache.Set(key, raw, catalogTTLSecs); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Debugf("sport cache entry %s too large: %d bytes", key, len(raw))
			return
		}
		log.Errorf("write sport cache entry %s: %s", key, err)
	}
}
