package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "pricing",
			},
		},
		"pubsub": map[string]any{
			"topicId": "price-changes",
		},
		"pricing": map[string]any{
			"taxConfigPath":     "tax_config.yaml",
			"conflictDetection": "none",
			"recentLogLimit":    50,
			"defaultTax": map[string]any{
				"vatRatePercent":           12,
				"seniorPwdDiscountEnabled": true,
			},
		},
		"cache": map[string]any{
			"redisAddr": "",
			"ttl":       "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PRICING_CONFLICTDETECTION", want: "pricing.conflictDetection"},
		{envKey: "PRICING_RECENTLOGLIMIT", want: "pricing.recentLogLimit"},
		{envKey: "PRICING_DEFAULTTAX_VATRATEPERCENT", want: "pricing.defaultTax.vatRatePercent"},
		{envKey: "PRICING_DEFAULTTAX_SENIORPWDDISCOUNTENABLED", want: "pricing.defaultTax.seniorPwdDiscountEnabled"},
		{envKey: "CACHE_REDISADDR", want: "cache.redisAddr"},
		{envKey: "CACHE_TTL", want: "cache.ttl"},
		// Keys missing from the file are lower-cased and dotted.
		{envKey: "PRICING_LOCATION", want: "pricing.location"},
		{envKey: "CACHE_DB", want: "cache.db"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
