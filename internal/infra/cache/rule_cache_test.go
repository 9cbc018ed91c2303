package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"pricing/internal/domain/entity"
	"pricing/internal/domain/repository"
	mockRepo "pricing/internal/mocks/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRedis is an in-memory redisClient. A non-nil err fails every call.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	raw, _ := value.([]byte)
	f.values[key] = string(raw)
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)

	return redis.NewIntResult(n, nil)
}

func createTestRuleCache(t *testing.T) (*ruleCache, *mockRepo.MockPricingRuleRepository, *fakeRedis) {
	next := mockRepo.NewMockPricingRuleRepository(t)
	client := newFakeRedis()

	return newRuleCache(next, client, time.Minute, slog.New(slog.DiscardHandler)), next, client
}

func activeFilter() repository.RuleFilter {
	active := true

	return repository.RuleFilter{IsActive: &active}
}

func TestRuleCache_ListRules(t *testing.T) {
	t.Parallel()

	rules := []*entity.PricingRule{
		{ID: uuid.New(), Name: "Near expiry", RuleType: entity.RuleTypeExpirationBased, IsActive: true, AdjustmentPercent: -20},
	}

	t.Run("miss loads and stores", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return(rules, nil).Once()

		got, err := c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		assert.Equal(t, rules, got)
		assert.Contains(t, client.values, versionedKey(0))
		assert.Equal(t, time.Minute, client.ttls[versionedKey(0)])

		// Second call is served from the cache; Once() fails the test on a repeat load.
		got, err = c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rules[0].ID, got[0].ID)
		assert.InDelta(t, -20.0, got[0].AdjustmentPercent, 1e-9)
	})

	t.Run("unfiltered listing bypasses cache", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		next.EXPECT().ListRules(mock.Anything, repository.RuleFilter{}).Return(rules, nil).Twice()

		for range 2 {
			_, err := c.ListRules(context.Background(), repository.RuleFilter{})
			require.NoError(t, err)
		}
		assert.Empty(t, client.values)
	})

	t.Run("redis down falls back to repository", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		client.err = assert.AnError
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return(rules, nil)

		got, err := c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		assert.Equal(t, rules, got)
	})

	t.Run("corrupt entry is reloaded", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		client.values[versionedKey(0)] = "{not json"
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return(rules, nil)

		got, err := c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		assert.Equal(t, rules, got)

		var cached []*entity.PricingRule
		require.NoError(t, json.Unmarshal([]byte(client.values[versionedKey(0)]), &cached))
		assert.Len(t, cached, 1)
	})

	t.Run("repository error is returned and not cached", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return(nil, assert.AnError)

		_, err := c.ListRules(context.Background(), activeFilter())
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, client.values)
	})
}

func TestRuleCache_WritesInvalidate(t *testing.T) {
	t.Parallel()

	ruleID := uuid.New()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		rule := &entity.PricingRule{Name: "Clearance"}
		next.EXPECT().CreateRule(mock.Anything, rule).Return(nil)

		require.NoError(t, c.CreateRule(context.Background(), rule))
		assert.Equal(t, "1", client.values[generationKey])
	})

	t.Run("set active", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		client.values[generationKey] = "4"
		next.EXPECT().SetActive(mock.Anything, ruleID, false).Return(nil)

		require.NoError(t, c.SetActive(context.Background(), ruleID, false))
		assert.Equal(t, "5", client.values[generationKey])
	})

	t.Run("failed write keeps cache", func(t *testing.T) {
		t.Parallel()

		c, next, client := createTestRuleCache(t)
		next.EXPECT().SetActive(mock.Anything, ruleID, true).Return(assert.AnError)

		require.ErrorIs(t, c.SetActive(context.Background(), ruleID, true), assert.AnError)
		assert.NotContains(t, client.values, generationKey)
	})

	t.Run("cached list is dropped after a write", func(t *testing.T) {
		t.Parallel()

		c, next, _ := createTestRuleCache(t)
		rule := &entity.PricingRule{ID: ruleID, Name: "Near expiry", IsActive: true}
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return([]*entity.PricingRule{rule}, nil).Once()
		next.EXPECT().SetActive(mock.Anything, ruleID, false).Return(nil)
		next.EXPECT().ListRules(mock.Anything, activeFilter()).Return([]*entity.PricingRule{}, nil).Once()

		got, err := c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		require.Len(t, got, 1)

		require.NoError(t, c.SetActive(context.Background(), ruleID, false))

		got, err = c.ListRules(context.Background(), activeFilter())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRuleCache_DeactivationDuringLoad(t *testing.T) {
	t.Parallel()

	c, next, _ := createTestRuleCache(t)
	ruleID := uuid.New()
	stale := []*entity.PricingRule{
		{ID: ruleID, Name: "Near expiry", RuleType: entity.RuleTypeExpirationBased, IsActive: true, AdjustmentPercent: -20},
	}

	next.EXPECT().SetActive(mock.Anything, ruleID, false).Return(nil)
	// The first load reads the rule as active, then the rule is switched off before the list is cached.
	next.EXPECT().ListRules(mock.Anything, activeFilter()).
		RunAndReturn(func(ctx context.Context, _ repository.RuleFilter) ([]*entity.PricingRule, error) {
			require.NoError(t, c.SetActive(ctx, ruleID, false))

			return stale, nil
		}).Once()
	next.EXPECT().ListRules(mock.Anything, activeFilter()).Return([]*entity.PricingRule{}, nil).Once()

	got, err := c.ListRules(context.Background(), activeFilter())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = c.ListRules(context.Background(), activeFilter())
	require.NoError(t, err)
	assert.Empty(t, got, "deactivated rule must not be served from the cache")
}
