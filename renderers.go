package mathclean

import (
	"context"
	"net/http"
	"time"

	"github.com/riverfjs/mathclean-go/internal/render"
)

// 导出渲染相关类型
type (
	Renderer      = render.Renderer
	RendererFunc  = render.RendererFunc
	RenderOptions = render.Options
	RenderFormat  = render.Format
	RenderCache   = render.Cache
)

const (
	FormatHTML   = render.FormatHTML
	FormatMathML = render.FormatMathML
)

// NewTreeBloodRenderer 返回进程内的 MathML 排版引擎（默认引擎）
func NewTreeBloodRenderer(macros map[string]string) Renderer {
	return render.NewTreeBlood(macros)
}

// NewUnicodeRenderer 返回不依赖排版引擎的 Unicode 渲染
func NewUnicodeRenderer() Renderer {
	return render.NewUnicode()
}

// NewRemoteRenderer 通过 HTTP 调用外部排版服务。client 为 nil 时使用默认客户端。
func NewRemoteRenderer(endpoint string, client *http.Client) Renderer {
	return render.NewRemote(endpoint, client)
}

// NewCachedRenderer 为 r 加上缓存，缓存失败记录到 Logger
func NewCachedRenderer(r Renderer, cache RenderCache) Renderer {
	return render.NewCached(r, cache, Logger)
}

// NewMemoryCache 返回进程内缓存
func NewMemoryCache() RenderCache {
	return render.NewMemoryCache()
}

// NewRedisCache 连接 Redis 并返回共享缓存。ttl 为 0 表示不过期。
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (RenderCache, func() error, error) {
	client, err := render.DialRedis(ctx, addr, password, db)
	if err != nil {
		return nil, nil, err
	}
	return render.NewRedisCache(client, "mathclean:", ttl), client.Close, nil
}
