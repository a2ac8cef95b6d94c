package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by store name.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scryfall_cache_hits_total",
			Help: "Total number of Scryfall cache hits",
		},
		[]string{"cache"}, // "cards", "rulings"
	)

	// CacheMisses tracks cache misses by store name.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scryfall_cache_misses_total",
			Help: "Total number of Scryfall cache misses",
		},
		[]string{"cache"},
	)

	// CacheEntries tracks the number of cached entries by store name.
	// Stores are unbounded and never evict, so this only grows.
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scryfall_cache_entries",
			Help: "Current number of entries in the Scryfall cache",
		},
		[]string{"cache"},
	)
)
