// Package cache keeps the active pricing rules in Redis in front of the rule repository.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"pricing/config"
	"pricing/internal/domain/entity"
	"pricing/internal/domain/repository"
	"pricing/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	activeRulesKey = "pricing:rules:active"
	generationKey  = "pricing:rules:gen"
	defaultTTL     = 5 * time.Minute
)

// versionedKey names the cached list for one generation. Every rule write bumps the generation,
// so a list loaded before the write lands under a key no reader asks for again.
func versionedKey(generation int64) string {
	return activeRulesKey + ":" + strconv.FormatInt(generation, 10)
}

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// ruleCache is a read-through cache of the active rule list. Redis failures are logged and
// fall back to the repository; they never fail a pricing operation.
type ruleCache struct {
	next   repository.PricingRuleRepository
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

func newRuleCache(next repository.PricingRuleRepository, client redisClient, ttl time.Duration, logger *slog.Logger) *ruleCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &ruleCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListRules serves active-only listings from Redis. Other filters go straight to the repository.
func (c *ruleCache) ListRules(ctx context.Context, filter repository.RuleFilter) ([]*entity.PricingRule, error) {
	if filter.IsActive == nil || !*filter.IsActive {
		return c.next.ListRules(ctx, filter)
	}

	// The generation is read before the repository so a concurrent write invalidates this fill.
	generation, cacheable := c.generation(ctx)
	if cacheable {
		if rules, ok := c.load(ctx, generation); ok {
			return rules, nil
		}
	}

	rules, err := c.next.ListRules(ctx, filter)
	if err != nil {
		return nil, err
	}
	if cacheable {
		c.store(ctx, generation, rules)
	}

	return rules, nil
}

// CreateRule persists the rule and drops the cached list.
func (c *ruleCache) CreateRule(ctx context.Context, rule *entity.PricingRule) error {
	if err := c.next.CreateRule(ctx, rule); err != nil {
		return err
	}
	c.invalidate(ctx)

	return nil
}

// SetActive toggles the rule and drops the cached list.
func (c *ruleCache) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.next.SetActive(ctx, id, active); err != nil {
		return err
	}
	c.invalidate(ctx)

	return nil
}

func (c *ruleCache) generation(ctx context.Context) (int64, bool) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err == nil {
		return generation, true
	}
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	c.logger.Warn("Failed to read rule cache generation", slog.Any("error", err))

	return 0, false
}

func (c *ruleCache) load(ctx context.Context, generation int64) ([]*entity.PricingRule, bool) {
	raw, err := c.client.Get(ctx, versionedKey(generation)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Failed to read cached rules", slog.Any("error", err))
		}

		return nil, false
	}

	var rules []*entity.PricingRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		c.logger.Warn("Discarding undecodable cached rules", slog.Any("error", err))

		return nil, false
	}

	return rules, true
}

func (c *ruleCache) store(ctx context.Context, generation int64, rules []*entity.PricingRule) {
	raw, err := json.Marshal(rules)
	if err != nil {
		c.logger.Warn("Failed to encode rules for cache", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, versionedKey(generation), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache rules", slog.Any("error", err))
	}
}

func (c *ruleCache) invalidate(ctx context.Context) {
	// The rule change is already committed, so a cancelled request must not skip this.
	if err := c.client.Incr(context.WithoutCancel(ctx), generationKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cached rules; stale rules may be served until the TTL expires",
			slog.Any("error", err),
			slog.Duration("ttl", c.ttl),
		)
	}
}

// DecorateParams holds dependencies for the rule cache decorator, injected by Fx.
type DecorateParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	RuleRepo repository.PricingRuleRepository
}

// DecorateRuleRepository wraps the rule repository with the Redis cache when one is configured.
func DecorateRuleRepository(params DecorateParams) repository.PricingRuleRepository {
	cfg := params.Config.Cache
	if !cfg.Enabled() {
		return params.RuleRepo
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Active rule cache enabled",
		slog.String("addr", cfg.RedisAddr),
		slog.Duration("ttl", cfg.TTL),
	)

	return newRuleCache(params.RuleRepo, client, cfg.TTL, params.Logger)
}
