package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tally/internal/posting"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// RateCache keeps recently resolved FX rates in memory. Only hits are cached.
type RateCache struct {
	c *cache.Cache
}

// NewRateCache returns a cache whose entries live for ttl; a zero ttl disables caching.
func NewRateCache(ttl time.Duration) *RateCache {
	if ttl <= 0 {
		return &RateCache{}
	}
	return &RateCache{c: cache.New(ttl, 2*ttl)}
}

// Wrap puts the cache in front of rates.
func (rc *RateCache) Wrap(rates posting.RateTable) posting.RateTable {
	if rc == nil || rc.c == nil {
		return rates
	}
	return &cachedRateTable{cache: rc.c, next: rates}
}

func (rc *RateCache) Invalidate(from, to string, year, month int) {
	if rc == nil || rc.c == nil {
		return
	}
	rc.c.Delete(rateKey(from, to, year, month))
}

func rateKey(from, to string, year, month int) string {
	return fmt.Sprintf("%s>%s:%04d-%02d", strings.ToUpper(from), strings.ToUpper(to), year, month)
}

type cachedRateTable struct {
	cache *cache.Cache
	next  posting.RateTable
}

func (t *cachedRateTable) GetFxRate(ctx context.Context, from, to string, year, month int) (decimal.Decimal, error) {
	key := rateKey(from, to, year, month)
	if v, ok := t.cache.Get(key); ok {
		return v.(decimal.Decimal), nil
	}

	rate, err := t.next.GetFxRate(ctx, from, to, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	t.cache.SetDefault(key, rate)
	return rate, nil
}
