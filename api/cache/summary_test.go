package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"leaguestats/api/dto"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisStore struct {
	mock.Mock
}

func (m *MockRedisStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func newTestSummaryCache(t *testing.T, deps *SummaryCacheDeps) SummaryCache {
	t.Helper()
	sc, err := NewSummaryCache(deps)
	require.NoError(t, err)
	return sc
}

func testCompressor(t *testing.T) *zstdCompressor {
	t.Helper()
	compressor, err := newZstdCompressor()
	require.NoError(t, err)
	return compressor
}

func testSummary() *dto.PlayerSummary {
	return &dto.PlayerSummary{
		Account: dto.AccountInfo{GameName: "Faker", TagLine: "KR1", Puuid: "p1"},
		Summary: dto.EmptySummary(),
		History: []dto.HistoryRow{},
		Meta:    dto.SummaryMeta{Ids: 0, Mode: "all"},
	}
}

func TestSummaryCacheRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("set stores json with the ttl", func(t *testing.T) {
		store := new(MockRedisStore)
		store.On("Set", ctx, "summary:americas|faker#kr1", mock.AnythingOfType("string"), time.Minute).Return(nil)

		sc := newTestSummaryCache(t, &SummaryCacheDeps{Redis: store, TTL: time.Minute})
		require.NoError(t, sc.SetSummary(ctx, "americas|faker#kr1", testSummary()))

		store.AssertExpectations(t)
		stored, err := testCompressor(t).Decompress([]byte(store.Calls[0].Arguments.String(2)))
		require.NoError(t, err)
		assert.Contains(t, string(stored), `"gameName":"Faker"`)
		assert.Contains(t, string(stored), `"streak":{"type":"none","count":0}`)
	})

	t.Run("hit decodes the summary", func(t *testing.T) {
		store := new(MockRedisStore)
		raw := `{"account":{"puuid":"p1"},"totals":{"matches":3},"_meta":{"ids":3,"mode":"ranked","srOnly":true}}`
		store.On("Get", ctx, "summary:k").Return(string(testCompressor(t).Compress([]byte(raw))), nil)

		sc := newTestSummaryCache(t, &SummaryCacheDeps{Redis: store, TTL: time.Minute})
		summary, found := sc.GetSummary(ctx, "k")

		require.True(t, found)
		assert.Equal(t, "p1", summary.Account.Puuid)
		assert.Equal(t, 3, summary.Totals.Matches)
		assert.True(t, summary.Meta.SrOnly)
	})

	t.Run("redis nil and errors are misses", func(t *testing.T) {
		store := new(MockRedisStore)
		store.On("Get", ctx, "summary:missing").Return("", goredis.Nil)
		store.On("Get", ctx, "summary:down").Return("", errors.New("connection refused"))
		store.On("Get", ctx, "summary:broken").Return(string(testCompressor(t).Compress([]byte("{"))), nil)
		store.On("Get", ctx, "summary:plain").Return(`{"account":{"puuid":"p1"}}`, nil)

		sc := newTestSummaryCache(t, &SummaryCacheDeps{Redis: store, TTL: time.Minute})
		for _, key := range []string{"missing", "down", "broken", "plain"} {
			_, found := sc.GetSummary(ctx, key)
			assert.False(t, found, key)
		}
	})

	t.Run("zero ttl disables the cache", func(t *testing.T) {
		store := new(MockRedisStore)
		sc := newTestSummaryCache(t, &SummaryCacheDeps{Redis: store})

		require.NoError(t, sc.SetSummary(ctx, "k", testSummary()))
		_, found := sc.GetSummary(ctx, "k")

		assert.False(t, found)
		store.AssertNotCalled(t, "Set")
		store.AssertNotCalled(t, "Get")
	})
}

func TestSummaryCacheMemory(t *testing.T) {
	ctx := context.Background()
	clock := &fakeTimer{now: 1000}
	memory := newMemCache(1<<20, clock)

	sc := newTestSummaryCache(t, &SummaryCacheDeps{Memory: memory, TTL: time.Minute})
	require.NoError(t, sc.SetSummary(ctx, "k", testSummary()))

	summary, found := sc.GetSummary(ctx, "k")
	require.True(t, found)
	assert.Equal(t, "Faker", summary.Account.GameName)
	assert.Equal(t, 1, memory.Len())

	clock.now += 120
	_, found = sc.GetSummary(ctx, "k")
	assert.False(t, found)
}

func TestSummaryCacheWithoutStore(t *testing.T) {
	sc := newTestSummaryCache(t, &SummaryCacheDeps{TTL: time.Minute})

	require.NoError(t, sc.SetSummary(context.Background(), "k", testSummary()))
	_, found := sc.GetSummary(context.Background(), "k")
	assert.False(t, found)
}
