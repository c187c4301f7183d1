package matchservice

import (
	"context"
	"net/url"
	"strconv"

	"leaguestats/pkg/regions"
)

// Paging limits of the match ids endpoint.
const (
	MaxPageSize       = 100
	PaginationCeiling = 5000
)

// MatchIdLister is the upstream call listing a player match ids.
type MatchIdLister interface {
	GetMatchIds(ctx context.Context, region regions.MainRegion, puuid string, query url.Values) ([]string, error)
}

// LoadOptions for the match ids.
// Queue and the time window are passed verbatim when not empty.
type LoadOptions struct {
	Count     int
	All       bool
	Max       int
	Queue     string
	StartTime string
	EndTime   string
}

// LoadMatchIds returns the player match ids, newest first.
// A single page is requested unless All is set, then pages are scanned until
// a empty or short page, Max ids or the pagination ceiling.
func LoadMatchIds(ctx context.Context, lister MatchIdLister, region regions.MainRegion, puuid string, opts LoadOptions) ([]string, error) {
	base := url.Values{}
	if opts.Queue != "" {
		base.Set("queue", opts.Queue)
	}
	if opts.StartTime != "" {
		base.Set("startTime", opts.StartTime)
	}
	if opts.EndTime != "" {
		base.Set("endTime", opts.EndTime)
	}

	if !opts.All {
		base.Set("start", "0")
		base.Set("count", strconv.Itoa(opts.Count))
		return lister.GetMatchIds(ctx, region, puuid, base)
	}

	page := min(opts.Count, MaxPageSize)
	if page <= 0 || opts.Max <= 0 {
		return []string{}, nil
	}

	ids := make([]string, 0, opts.Max)
	for start := 0; len(ids) < opts.Max; {
		query := cloneValues(base)
		query.Set("start", strconv.Itoa(start))
		query.Set("count", strconv.Itoa(page))

		pageIds, err := lister.GetMatchIds(ctx, region, puuid, query)
		if err != nil {
			return nil, err
		}
		if len(pageIds) == 0 {
			break
		}
		ids = append(ids, pageIds...)

		// No more pages.
		if len(pageIds) < page {
			break
		}
		start += page
		if start >= PaginationCeiling {
			break
		}
	}

	if len(ids) > opts.Max {
		ids = ids[:opts.Max]
	}
	return ids, nil
}

func cloneValues(values url.Values) url.Values {
	clone := make(url.Values, len(values)+2)
	for key, value := range values {
		clone[key] = append([]string(nil), value...)
	}
	return clone
}
