package jobs

import (
	"time"

	"leaguestats/pkg/logger"
)

// Sizer is any cache with a entry count.
type Sizer interface {
	Len() int
}

// CacheStats are the sources of the cache report.
type CacheStats struct {
	Matches       Sizer
	MatchCapacity int
	Summaries     Sizer // Nil when the summaries live on redis.
	Backoff       func() time.Duration
}

// ReportCache logs the size of the caches and the current upstream backoff.
func ReportCache(stats *CacheStats, log *logger.NewLogger) {
	summaries := -1
	if stats.Summaries != nil {
		summaries = stats.Summaries.Len()
	}

	var backoff time.Duration
	if stats.Backoff != nil {
		backoff = stats.Backoff()
	}

	log.Infof("Match cache %d/%d, summaries in memory %d, upstream backoff %s",
		stats.Matches.Len(), stats.MatchCapacity, summaries, backoff)
}
