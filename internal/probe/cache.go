package probe

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache probes a redis server with PING. The backend is considered up iff
// it answers PONG within the timeout.
type Cache struct {
	name    string
	client  *redis.Client
	timeout time.Duration
}

// NewCache creates a probe for the redis server at addr ("host:port").
// A zero timeout uses DefaultTimeout.
func NewCache(name, addr string, db int, timeout time.Duration) *Cache {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Cache{
		name: name,
		client: redis.NewClient(&redis.Options{
			Addr:        addr,
			DB:          db,
			DialTimeout: timeout,
			ReadTimeout: timeout,
			// One liveness ping per tick; no need for a large pool.
			PoolSize: 1,
		}),
		timeout: timeout,
	}
}

// Name implements Prober.
func (c *Cache) Name() string { return c.name }

// Check implements Prober.
func (c *Cache) Check(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pong, err := c.client.Ping(ctx).Result()
	if err != nil {
		if ctx.Err() != nil {
			return Result{Err: ctx.Err()}
		}
		return Result{Err: err}
	}
	if pong != "PONG" {
		return Result{Err: errUnexpectedPong(pong)}
	}
	return Result{Up: true}
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

type errUnexpectedPong string

func (e errUnexpectedPong) Error() string {
	return "unexpected PING reply: " + string(e)
}
