package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const bookedTimesTTL = 30 * time.Second

// BookedTimesCache guarda por data a lista de horários já ocupados.
// O TTL curto limita o dano de uma invalidação perdida; o índice único
// no banco continua sendo a autoridade sobre conflitos.
type BookedTimesCache struct {
	rdb *redis.Client
}

// New aceita rdb nil; nesse caso todas as operações viram no-ops e a
// API funciona sem Redis.
func New(rdb *redis.Client) *BookedTimesCache {
	if rdb == nil {
		return nil
	}
	return &BookedTimesCache{rdb: rdb}
}

func (c *BookedTimesCache) key(date string) string {
	return "booked-times:" + date
}

func (c *BookedTimesCache) Get(ctx context.Context, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(date)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (c *BookedTimesCache) Set(ctx context.Context, date string, times []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(date), raw, bookedTimesTTL)
}

func (c *BookedTimesCache) Invalidate(ctx context.Context, dates ...string) {
	if c == nil {
		return
	}

	for _, d := range dates {
		c.rdb.Del(ctx, c.key(d))
	}
}
