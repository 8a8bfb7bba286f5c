package mathclean

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"
)

type fakeRich struct {
	err         error
	html, plain string
}

func (f *fakeRich) WriteRich(_ context.Context, html, plain string) error {
	if f.err != nil {
		return f.err
	}
	f.html, f.plain = html, plain
	return nil
}

type fakeText struct {
	err   error
	plain string
}

func (f *fakeText) WriteText(_ context.Context, plain string) error {
	if f.err != nil {
		return f.err
	}
	f.plain = plain
	return nil
}

func quietLogger(t *testing.T) {
	t.Helper()
	prev := Logger
	SetLogger(log.New(io.Discard, "", 0))
	t.Cleanup(func() { SetLogger(prev) })
}

// TestCopy 测试剪贴板降级链
func TestCopy(t *testing.T) {
	quietLogger(t)
	res := &Result{ClipboardHTML: "<html>x</html>", PlainText: "x"}
	ctx := context.Background()

	t.Run("rich", func(t *testing.T) {
		rich, plain := &fakeRich{}, &fakeText{}
		if err := Copy(ctx, res, rich, plain); err != nil {
			t.Fatal(err)
		}
		if rich.html != res.ClipboardHTML || rich.plain != "x" {
			t.Errorf("rich write = %q, %q", rich.html, rich.plain)
		}
		if plain.plain != "" {
			t.Error("fallback should not be used")
		}
	})

	t.Run("fallback", func(t *testing.T) {
		plain := &fakeText{}
		if err := Copy(ctx, res, &fakeRich{err: errors.New("denied")}, plain); err != nil {
			t.Fatal(err)
		}
		if plain.plain != "x" {
			t.Errorf("fallback write = %q", plain.plain)
		}
	})

	t.Run("both fail", func(t *testing.T) {
		denied := errors.New("denied")
		err := Copy(ctx, res, &fakeRich{err: denied}, &fakeText{err: errors.New("no display")})
		if !errors.Is(err, ErrClipboardUnavailable) || !errors.Is(err, denied) {
			t.Fatalf("error = %v", err)
		}
		if !strings.Contains(err.Error(), "paste manually") {
			t.Errorf("error should tell the user what to do: %v", err)
		}
	})

	t.Run("none", func(t *testing.T) {
		if err := Copy(ctx, res, nil, nil); !errors.Is(err, ErrClipboardUnavailable) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("nil result", func(t *testing.T) {
		if err := Copy(ctx, nil, &fakeRich{}, nil); !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v", err)
		}
	})
}

// TestCopyAsync 测试异步复制通过回调通知结果
func TestCopyAsync(t *testing.T) {
	quietLogger(t)
	done := make(chan error, 1)
	CopyAsync(context.Background(), &Result{PlainText: "x"}, &fakeRich{err: errors.New("denied")}, &fakeText{err: errors.New("denied")},
		func(err error) { done <- err })

	select {
	case err := <-done:
		if !errors.Is(err, ErrClipboardUnavailable) {
			t.Errorf("notice error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("notice not delivered")
	}
}

// TestSystemClipboard_Canceled 测试已取消的 context 不访问系统剪贴板
func TestSystemClipboard_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var cb SystemClipboard
	if err := cb.WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteText() error = %v", err)
	}
	if _, err := cb.ReadText(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadText() error = %v", err)
	}
}
