package advice

import (
	"context"
	"log/slog"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

// Cache is the slice of the persistence layer the gateway needs: one
// advice entry per calendar-day key. Saving is best-effort and must not
// fail the caller; the store logs and recovers on quota pressure.
type Cache interface {
	Advice(dateKey string) (*Daily, bool)
	SaveAdvice(dateKey string, d *Daily)
}

// Gateway memoizes one provider call per calendar day. A cached entry for
// today's key short-circuits the remote call entirely; only an explicit
// menu refresh goes back to the provider, and even then the rest of the
// cached entry survives.
type Gateway struct {
	Cache    Cache
	Provider Provider
	Clock    cycle.Clock
}

// NewGateway wires the gateway with a real clock.
func NewGateway(cache Cache, provider Provider) *Gateway {
	return &Gateway{Cache: cache, Provider: provider, Clock: cycle.RealClock{}}
}

// FetchDaily returns today's advice, from cache when present, otherwise
// from the provider. A provider failure propagates with no fallback
// content and no retry; the presentation layer shows an empty state.
func (g *Gateway) FetchDaily(ctx context.Context, req Request) (*Daily, error) {
	today := cycle.DateOf(g.Clock.Now())
	key := today.String()

	if cached, ok := g.Cache.Advice(key); ok {
		slog.Debug(config.MsgAdviceCacheHit,
			config.LogKeyComponent, config.CompGateway,
			config.LogKeyDateKey, key,
		)
		return cached, nil
	}

	fresh, err := g.Provider.DailyAdvice(ctx, req)
	if err != nil {
		return nil, err
	}
	fresh.Date = today

	g.Cache.SaveAdvice(key, fresh)
	return fresh, nil
}

// RefreshMenu re-rolls only the menu: the provider is called again but
// solely its menu field is merged into today's cached entry, preserving
// the original mood and activities. Without a cached entry this behaves
// like FetchDaily.
func (g *Gateway) RefreshMenu(ctx context.Context, req Request) (*Daily, error) {
	today := cycle.DateOf(g.Clock.Now())
	key := today.String()

	cached, ok := g.Cache.Advice(key)
	if !ok {
		return g.FetchDaily(ctx, req)
	}

	fresh, err := g.Provider.DailyAdvice(ctx, req)
	if err != nil {
		return nil, err
	}

	merged := *cached
	merged.Menu = fresh.Menu

	slog.Debug(config.MsgAdviceMerged,
		config.LogKeyComponent, config.CompGateway,
		config.LogKeyDateKey, key,
	)

	g.Cache.SaveAdvice(key, &merged)
	return &merged, nil
}
