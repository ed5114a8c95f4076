package geo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const timezoneCacheTTL = 7 * 24 * time.Hour

var ErrNoTimezone = errors.New("no timezone for ip")

// TimezoneResolver maps caller IPs to IANA timezones through ipinfo.io.
// Answers are cached in redis.
type TimezoneResolver struct {
	client      *ipinfo.Client
	redisClient *redis.Client
}

// NewTimezoneResolver builds a resolver; an empty baseURL keeps the ipinfo default.
func NewTimezoneResolver(token, baseURL string, timeout time.Duration, redisClient *redis.Client) (*TimezoneResolver, error) {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	client := ipinfo.NewClient(httpClient, nil, token)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse ipinfo url: %w", err)
		}
		client.BaseURL = u
	}

	return &TimezoneResolver{
		client:      client,
		redisClient: redisClient,
	}, nil
}

func cacheKey(ip string) string {
	return "ip-tz::" + ip
}

func (r *TimezoneResolver) TimezoneForIP(ctx context.Context, ip string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geo.timezoneForIP")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", ip))

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("invalid ip %q", ip)
	}

	cached, err := r.redisClient.Get(ctx, cacheKey(ip)).Result()
	switch {
	case err == nil && cached != "":
		span.SetAttributes(attribute.Bool("user.ip.from-cache", true))
		return cached, nil
	case err != nil && !errors.Is(err, redis.Nil):
		log.Errorf("get cached timezone for %s: %s", ip, err)
	}
	span.SetAttributes(attribute.Bool("user.ip.from-cache", false))

	info, err := r.client.GetIPInfo(parsed)
	if err != nil {
		return "", fmt.Errorf("ipinfo lookup: %w", err)
	}
	if info.Timezone == "" {
		return "", ErrNoTimezone
	}
	if _, err := time.LoadLocation(info.Timezone); err != nil {
		return "", fmt.Errorf("ipinfo timezone %q: %w", info.Timezone, err)
	}

	if err := r.redisClient.Set(ctx, cacheKey(ip), info.Timezone, timezoneCacheTTL).Err(); err != nil {
		log.Errorf("cache timezone for %s: %s", ip, err)
	}

	log.Debugf("resolved timezone %s for %s", info.Timezone, ip)
	return info.Timezone, nil
}
