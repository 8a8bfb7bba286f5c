package mathclean

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

// TestNewCachedRenderer 测试缓存渲染只调用一次引擎
func TestNewCachedRenderer(t *testing.T) {
	var calls atomic.Int32
	base := RendererFunc(func(source string, opts RenderOptions) (string, error) {
		calls.Add(1)
		return "<" + source + ">", nil
	})
	r := NewCachedRenderer(base, NewMemoryCache())

	for i := 0; i < 3; i++ {
		if _, err := Process("$x$ and $x$", WithRenderer(r)); err != nil {
			t.Fatal(err)
		}
	}
	// preview 与 clipboard 各一种格式
	if got := calls.Load(); got != 2 {
		t.Errorf("renderer calls = %d, want 2", got)
	}
}

// TestNewRedisCache 测试 Redis 缓存
func TestNewRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, closeFn, err := NewRedisCache(context.Background(), mr.Addr(), "", 0, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer closeFn()

	r := NewCachedRenderer(NewUnicodeRenderer(), cache)
	res, err := Process(`$\alpha$`, WithRenderer(r))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.PreviewHTML, "α") {
		t.Errorf("PreviewHTML = %q", res.PreviewHTML)
	}
	if keys := mr.Keys(); len(keys) != 2 || !strings.HasPrefix(keys[0], "mathclean:") {
		t.Errorf("redis keys = %v", keys)
	}

	if _, _, err := NewRedisCache(context.Background(), "127.0.0.1:1", "", 0, 0); err == nil {
		t.Error("NewRedisCache() should fail when redis is unreachable")
	}
}

// TestNewTreeBloodRenderer 测试默认引擎输出 MathML
func TestNewTreeBloodRenderer(t *testing.T) {
	res, err := Process("$x^2$", WithRenderer(NewTreeBloodRenderer(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.ClipboardHTML, "<math") {
		t.Errorf("ClipboardHTML = %q", res.ClipboardHTML)
	}
}
