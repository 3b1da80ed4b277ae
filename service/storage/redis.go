package storage

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

var (
	redisOnce sync.Once
	rdb       *redis.Client
	ctx       = context.Background()
)

// InitRedis connects the presence backend (singleton). Callers that never
// init leave presence disabled; Enabled gates every use.
func InitRedis(c Config) error {
	var initErr error
	redisOnce.Do(func() {
		cli := redis.NewClient(&redis.Options{
			Addr:     c.Addr,
			Password: c.Password,
			DB:       c.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cli.Ping(pingCtx).Err(); err != nil {
			initErr = err
			return
		}
		rdb = cli
	})
	return initErr
}

func Enabled() bool { return rdb != nil }

func CloseRedis() error {
	if rdb != nil {
		return rdb.Close()
	}
	return nil
}
