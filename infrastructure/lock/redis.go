package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// releaseScript apaga a chave apenas se o valor ainda for o token do dono
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// refreshScript renova o PX apenas se o valor ainda for o token do dono
var refreshScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker compartilha as leases entre instâncias via SET NX PX
type RedisLocker struct {
	rdb *goredis.Client
}

func NewRedisLocker(ctx context.Context, addr, password string, db int) (*RedisLocker, error) {
	if addr == "" {
		return nil, fmt.Errorf("endereço do redis não informado")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	logrus.WithField("addr", addr).Info("Locker redis conectado")

	return &RedisLocker{rdb: rdb}, nil
}

func (r *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (Lease, bool, error) {
	token := uuid.NewString()

	ok, err := r.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao adquirir lease %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	return &redisLease{rdb: r.rdb, key: key, token: token}, true, nil
}

func (r *RedisLocker) Close() error {
	return r.rdb.Close()
}

type redisLease struct {
	rdb   *goredis.Client
	key   string
	token string
}

func (l *redisLease) Key() string {
	return l.key
}

func (l *redisLease) Refresh(ctx context.Context, ttl time.Duration) error {
	renewed, err := refreshScript.Run(ctx, l.rdb, []string{l.key}, l.token, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("erro ao renovar lease %s: %w", l.key, err)
	}
	if renewed == 0 {
		return ErrLeaseLost
	}
	return nil
}

func (l *redisLease) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.rdb, []string{l.key}, l.token).Err(); err != nil {
		return fmt.Errorf("erro ao liberar lease %s: %w", l.key, err)
	}
	return nil
}
