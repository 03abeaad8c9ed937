package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	idemResTTL       = 24 * time.Hour
	idemResKeyPrefix = "rango:idempotency:"
)

var (
	_ IdempotencyCacher = NewIdemResMap()
	_ IdempotencyCacher = IdemResRedis{}
)

// An IdempotencyCacher can store responses paired to idempotency keys.
type IdempotencyCacher interface {
	Get(ctx context.Context, key string) (IdemRes, bool)
	Set(ctx context.Context, key string, idemRes IdemRes)
}

// An IdemResMap stores idempotency key, IdemRes value pairs in a map.
//
// Server restarts reset this map.
// IdemResMap ought not be used for production environments.
type IdemResMap struct {
	mu  *sync.Mutex
	val map[string]idemResMapVal
}

// NewIdemResMap constructs an IdemResMap
// for use in an Idempotency middleware as a cache.
func NewIdemResMap() IdemResMap {
	return IdemResMap{mu: new(sync.Mutex), val: make(map[string]idemResMapVal)}
}

// An idemResMapVal is stored in an IdemResMap,
// wrapping an IdemRes.
type idemResMapVal struct {
	IdemRes

	at time.Time
}

// Get retrieves the result of the request matching the idempotency key
// much like a regular map.
func (i IdemResMap) Get(ctx context.Context, key string) (IdemRes, bool) {
	if key == "" {
		return IdemRes{}, false
	}

	select {
	case <-ctx.Done():
		return IdemRes{}, false

	default:
		i.mu.Lock()
		defer i.mu.Unlock()

		v, ok := i.val[key]
		return v.IdemRes, ok
	}
}

// Set overwrites the value paired to key in the map.
//
// For each call to Set, keys older than 24 hours are evicted.
func (i IdemResMap) Set(ctx context.Context, key string, idemRes IdemRes) {
	select {
	case <-ctx.Done():
		return
	default:
		i.mu.Lock()
		defer i.mu.Unlock()

		expired := time.Now().Add(-idemResTTL)
		for k, v := range i.val {
			if v.at.Before(expired) {
				delete(i.val, k)
			}
		}

		i.val[key] = idemResMapVal{IdemRes: idemRes, at: time.Now()}
	}
}

// An IdemResRedis connects to a Redis backend
// for the purposes of caching idempotent responses.
type IdemResRedis struct {
	client *redis.Client
}

// NewRedisCache constructs an IdemResRedis with the options passed in.
func NewRedisCache(opts *redis.Options) IdemResRedis {
	return NewRedisCacheFromClient(redis.NewClient(opts))
}

// NewRedisCacheFromClient constructs an IdemResRedis around an existing client.
func NewRedisCacheFromClient(client *redis.Client) IdemResRedis {
	return IdemResRedis{client: client}
}

// Ping checks the connection to the Redis backend.
func (i IdemResRedis) Ping(ctx context.Context) error {
	return i.client.Ping(ctx).Err()
}

// Get retrieves the IdemRes paired to key from the connected Redis backend.
func (i IdemResRedis) Get(ctx context.Context, key string) (IdemRes, bool) {
	select {
	case <-ctx.Done():
		return IdemRes{}, false
	default:
		b, err := i.client.Get(ctx, idemResKeyPrefix+key).Bytes()
		if err != nil {
			return IdemRes{}, false
		}

		ir := new(IdemRes)
		if err := ir.GobDecode(b); err != nil {
			return IdemRes{}, false
		}

		return *ir, true
	}
}

// Set saves the IdemRes by pairing it to the key in the Redis backend.
func (i IdemResRedis) Set(ctx context.Context, key string, idemRes IdemRes) {
	select {
	case <-ctx.Done():
		return
	default:
		b, err := idemRes.GobEncode()
		if err != nil {
			return
		}

		i.client.Set(ctx, idemResKeyPrefix+key, b, idemResTTL)
	}
}
