package controllers

import (
	"net/http"
	"strconv"
	"time"

	"focustimer/internal/providers"
	"focustimer/internal/services"

	json "github.com/goccy/go-json"
)

// StatsController serves the aggregate views. Rendered responses are cached
// under a key holding the store write generation and the reference day, so a
// write makes every older entry unreachable.
type StatsController struct {
	logger   providers.Logger
	stats    services.StatsServiceInterface
	sessions services.SessionServiceInterface
	cache    providers.CacheProviderInterface
	now      func() time.Time
}

func NewStatsController(logger providers.Logger, stats services.StatsServiceInterface, sessions services.SessionServiceInterface, cache providers.CacheProviderInterface) *StatsController {
	return &StatsController{
		logger:   logger,
		stats:    stats,
		sessions: sessions,
		cache:    cache,
		now:      time.Now,
	}
}

func (sc *StatsController) cacheKey(view string, at time.Time) string {
	return view + ":" + sc.sessions.UserID() + ":" + strconv.FormatUint(sc.sessions.Generation(), 10) + ":" + at.UTC().Format(time.RFC3339)
}

func (sc *StatsController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := sc.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "Error computing %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sc.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

// serveView resolves the reference instant and serves view through the cache.
// Untimed views share one entry per generation.
func (sc *StatsController) serveView(w http.ResponseWriter, r *http.Request, view string, timed bool, compute func(at time.Time) any) {
	at, err := referenceTime(r, sc.now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	key := sc.cacheKey(view, at.Truncate(time.Minute))
	if !timed {
		key = sc.cacheKey(view, time.Time{})
	}
	sc.serveFromCacheOrCompute(w, key, func() (any, error) {
		return compute(at), nil
	})
}

func (sc *StatsController) Weekly(w http.ResponseWriter, r *http.Request) {
	sc.serveView(w, r, "weekly", true, func(at time.Time) any {
		return sc.stats.Weekly(r.Context(), at)
	})
}

func (sc *StatsController) Daily(w http.ResponseWriter, r *http.Request) {
	sc.serveView(w, r, "daily", true, func(at time.Time) any {
		return sc.stats.Daily(r.Context(), at)
	})
}

func (sc *StatsController) Hourly(w http.ResponseWriter, r *http.Request) {
	sc.serveView(w, r, "hourly", false, func(time.Time) any {
		return sc.stats.Hourly(r.Context())
	})
}

func (sc *StatsController) HeatMap(w http.ResponseWriter, r *http.Request) {
	sc.serveView(w, r, "heatmap", false, func(time.Time) any {
		return sc.stats.HeatMap(r.Context())
	})
}

func (sc *StatsController) Summary(w http.ResponseWriter, r *http.Request) {
	sc.serveView(w, r, "summary", true, func(at time.Time) any {
		return sc.stats.Summary(r.Context(), at)
	})
}
