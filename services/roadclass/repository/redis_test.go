package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelabs/drivescore/internal/pkg/constants"
	"github.com/ridelabs/drivescore/internal/pkg/database"
)

func newRedisCacheMock(t *testing.T, ttl time.Duration) (*redisCache, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCache(database.NewRedisClientFrom(db), ttl).(*redisCache)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return cache, mock
}

func TestRedisCache_GetHit(t *testing.T) {
	cache, mock := newRedisCacheMock(t, 30*time.Second)

	key := "-6.17539,106.82715"
	mock.ExpectGet(fmt.Sprintf(constants.KeyRoadClass, key)).SetVal("1")
	mock.ExpectIncr(constants.KeyRoadClassHits).SetVal(1)

	onRoad, ok, err := cache.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, onRoad)
}

func TestRedisCache_GetMiss(t *testing.T) {
	cache, mock := newRedisCacheMock(t, 30*time.Second)

	key := "-6.17539,106.82715"
	mock.ExpectGet(fmt.Sprintf(constants.KeyRoadClass, key)).RedisNil()
	mock.ExpectIncr(constants.KeyRoadClassMisses).SetVal(1)

	_, ok, err := cache.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_PutStoresWithTTL(t *testing.T) {
	ttl := 30 * time.Second
	cache, mock := newRedisCacheMock(t, ttl)

	key := "-6.17539,106.82715"
	mock.ExpectSet(fmt.Sprintf(constants.KeyRoadClass, key), "0", ttl).SetVal("OK")

	require.NoError(t, cache.Put(context.Background(), key, false))
}

func TestRedisCache_Clear(t *testing.T) {
	cache, mock := newRedisCacheMock(t, 30*time.Second)

	entryKey := fmt.Sprintf(constants.KeyRoadClass, "-6.17539,106.82715")
	mock.ExpectKeys(fmt.Sprintf(constants.KeyRoadClass, "*")).SetVal([]string{entryKey})
	mock.ExpectDel(entryKey, constants.KeyRoadClassHits, constants.KeyRoadClassMisses).SetVal(3)

	require.NoError(t, cache.Clear(context.Background()))
}

func TestRedisCache_Stats(t *testing.T) {
	cache, mock := newRedisCacheMock(t, 30*time.Second)

	entryKey := fmt.Sprintf(constants.KeyRoadClass, "-6.17539,106.82715")
	mock.ExpectKeys(fmt.Sprintf(constants.KeyRoadClass, "*")).SetVal([]string{entryKey})
	mock.ExpectGet(constants.KeyRoadClassHits).SetVal("6")
	mock.ExpectGet(constants.KeyRoadClassMisses).SetVal("2")

	stats, err := cache.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(6), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.InDelta(t, 0.75, stats.HitRate, 1e-9)
}

func TestRedisCache_StatsWithNoCounters(t *testing.T) {
	cache, mock := newRedisCacheMock(t, 30*time.Second)

	mock.ExpectKeys(fmt.Sprintf(constants.KeyRoadClass, "*")).SetVal([]string{})
	mock.ExpectGet(constants.KeyRoadClassHits).RedisNil()
	mock.ExpectGet(constants.KeyRoadClassMisses).RedisNil()

	stats, err := cache.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
	assert.Equal(t, 0.0, stats.HitRate)
}
