package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 保存排版结果
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryCache 进程内缓存，并发安全
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryCache 创建空缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

// Len 返回条目数
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// RedisCache 基于 Redis 的共享缓存
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache 创建 Redis 缓存。ttl 为 0 表示不过期。
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// DialRedis 按地址创建客户端并 PING 一次
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}

// CacheKey 由源码和影响输出的参数计算缓存键
func CacheKey(source string, opts Options) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%t|%t|%t|%s\x1f", opts.Format, opts.Display, opts.Strict, opts.Trust, opts.ErrorColor)
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}

// Cached 为任意 Renderer 加上缓存。只缓存成功的结果；
// 缓存读写失败时退回直接渲染。
type Cached struct {
	Renderer Renderer
	Cache    Cache
	Logger   *log.Logger
}

// NewCached 创建缓存装饰器
func NewCached(r Renderer, c Cache, logger *log.Logger) *Cached {
	return &Cached{Renderer: r, Cache: c, Logger: logger}
}

// Render 实现 Renderer
func (c *Cached) Render(source string, opts Options) (string, error) {
	ctx := context.Background()
	key := CacheKey(source, opts)

	if v, ok, err := c.Cache.Get(ctx, key); err != nil {
		c.logf("cache get: %v", err)
	} else if ok {
		return v, nil
	}

	out, err := c.Renderer.Render(source, opts)
	if err != nil {
		return "", err
	}
	if err := c.Cache.Set(ctx, key, out); err != nil {
		c.logf("cache set: %v", err)
	}
	return out, nil
}

func (c *Cached) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
