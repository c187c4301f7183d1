package filters

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	matchservice "leaguestats/api/services/match"
	"leaguestats/pkg/messages"
	"leaguestats/pkg/regions"
)

// ErrInvalidRequest is wrapped by every validation error of the summary params.
var ErrInvalidRequest = errors.New("invalid request")

// Limits of the summary params.
const (
	DefaultCount = 20
	MaxCount     = 100
	DefaultMax   = 300
	MaxMax       = 1000
)

// Query parameters for the player summary.
type PlayerSummaryParams struct {
	RiotId    string `form:"riotId"`
	Region    string `form:"region"`
	Mode      string `form:"mode"`
	Size      string `form:"size"`
	Count     string `form:"count"`
	All       string `form:"all"`
	Max       string `form:"max"`
	Queue     string `form:"queue"`
	StartTime string `form:"startTime"`
	EndTime   string `form:"endTime"`
	SrOnly    string `form:"srOnly"`
}

// PlayerSummaryFilter is the validated summary request.
type PlayerSummaryFilter struct {
	GameName  string
	TagLine   string
	Region    regions.MainRegion
	Mode      matchservice.Mode
	Count     int
	All       bool
	Max       int
	Queue     string
	StartTime string
	EndTime   string
	SrOnly    bool
}

// NewPlayerSummaryFilter validates the params and fills the defaults.
func NewPlayerSummaryFilter(pp *PlayerSummaryParams) (*PlayerSummaryFilter, error) {
	gameName, tagLine, ok := strings.Cut(strings.TrimSpace(pp.RiotId), "#")
	if !ok || gameName == "" || tagLine == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, messages.InvalidRiotId)
	}
	// Anything after a second separator is dropped.
	tagLine, _, _ = strings.Cut(tagLine, "#")
	if tagLine == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, messages.InvalidRiotId)
	}

	regionValue := strings.TrimSpace(pp.Region)
	if regionValue == "" {
		regionValue = "americas"
	}
	region, err := regions.ParseMainRegion(regionValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	mode, err := matchservice.ParseMode(pp.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	filter := &PlayerSummaryFilter{
		GameName:  gameName,
		TagLine:   tagLine,
		Region:    region,
		Mode:      mode,
		Count:     min(parseLimit(pp.Count, DefaultCount), MaxCount),
		All:       isTrue(pp.All),
		Max:       min(parseLimit(pp.Max, DefaultMax), MaxMax),
		Queue:     strings.TrimSpace(pp.Queue),
		StartTime: strings.TrimSpace(pp.StartTime),
		EndTime:   strings.TrimSpace(pp.EndTime),
		SrOnly:    true,
	}

	switch size := strings.ToLower(strings.TrimSpace(pp.Size)); size {
	case "":
	case "all":
		filter.All = true
		filter.Count = MaxCount
		filter.Max = max(filter.Max, DefaultMax)
	default:
		filter.All = false
		filter.Count = min(parseLimit(size, DefaultCount), MaxCount)
	}

	if filter.Queue == "" {
		if queue := mode.DefaultQueue(); queue != 0 {
			filter.Queue = strconv.Itoa(queue)
		}
	}

	if srOnly := strings.TrimSpace(pp.SrOnly); srOnly != "" {
		filter.SrOnly = isTrue(srOnly)
	}

	return filter, nil
}

// LoadOptions used to list the match ids.
func (f *PlayerSummaryFilter) LoadOptions() matchservice.LoadOptions {
	return matchservice.LoadOptions{
		Count:     f.Count,
		All:       f.All,
		Max:       f.Max,
		Queue:     f.Queue,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}
}

// CacheKey is a hash of the normalized request, the riot id is case insensitive.
func (f *PlayerSummaryFilter) CacheKey() string {
	keyData := fmt.Sprintf("%s|%s|%s|%s|%d|%t|%d|%s|%s|%s|%t",
		strings.ToLower(f.GameName),
		strings.ToLower(f.TagLine),
		f.Region,
		f.Mode,
		f.Count,
		f.All,
		f.Max,
		f.Queue,
		f.StartTime,
		f.EndTime,
		f.SrOnly,
	)

	hasher := sha256.New()
	hasher.Write([]byte(keyData))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Positive integer or the fallback.
func parseLimit(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func isTrue(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "1" || value == "true"
}
