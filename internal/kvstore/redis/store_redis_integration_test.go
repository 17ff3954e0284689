//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"lookupdesk/internal/kvstore"
	kvredis "lookupdesk/internal/kvstore/redis"
	"lookupdesk/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *kvredis.Store
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = kvredis.New(s.redis.Client.Client, "lookupdesk-test:")
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, "card_lookup_cache", `{"4539578763621486":{}}`))

	got, err := s.store.Get(ctx, "card_lookup_cache")
	s.Require().NoError(err)
	s.Equal(`{"4539578763621486":{}}`, got)

	raw, err := s.redis.Client.Get(ctx, "lookupdesk-test:card_lookup_cache").Result()
	s.Require().NoError(err)
	s.Equal(got, raw)
}

func (s *RedisStoreSuite) TestMissReturnsErrNotFound() {
	_, err := s.store.Get(context.Background(), "absent")
	s.ErrorIs(err, kvstore.ErrNotFound)
}

func (s *RedisStoreSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, "lookup_search_history", `[]`))
	s.Require().NoError(s.store.Delete(ctx, "lookup_search_history"))

	_, err := s.store.Get(ctx, "lookup_search_history")
	s.ErrorIs(err, kvstore.ErrNotFound)
	s.NoError(s.store.Health(ctx))
	s.NoError(s.redis.Client.Health(ctx))
}
