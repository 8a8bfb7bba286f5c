package mathclean

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable 剪贴板写入全部失败，需要用户手动复制粘贴
var ErrClipboardUnavailable = errors.New("clipboard unavailable, select the preview and paste manually")

// ClipboardWriter 一次写入 HTML 和纯文本两种表示
type ClipboardWriter interface {
	WriteRich(ctx context.Context, html, plain string) error
}

// TextClipboard 只支持纯文本的剪贴板
type TextClipboard interface {
	WriteText(ctx context.Context, plain string) error
}

// Copy 将结果写入剪贴板
//
// 先尝试 rich（HTML + 纯文本），失败后用 fallback 写入纯文本。
// 两者都失败或都为 nil 时返回包装了各自原因的 ErrClipboardUnavailable。
func Copy(ctx context.Context, res *Result, rich ClipboardWriter, fallback TextClipboard) error {
	if res == nil {
		return ErrNoContent
	}

	var errs []error
	if rich != nil {
		err := rich.WriteRich(ctx, res.ClipboardHTML, res.PlainText)
		if err == nil {
			return nil
		}
		Logger.Printf("rich clipboard write failed, falling back to plain text: %v", err)
		errs = append(errs, fmt.Errorf("rich: %w", err))
	}
	if fallback != nil {
		err := fallback.WriteText(ctx, res.PlainText)
		if err == nil {
			return nil
		}
		Logger.Printf("plain clipboard write failed: %v", err)
		errs = append(errs, fmt.Errorf("plain: %w", err))
	}
	if len(errs) == 0 {
		return ErrClipboardUnavailable
	}
	return fmt.Errorf("%w: %w", ErrClipboardUnavailable, errors.Join(errs...))
}

// Notice 接收异步复制的结果，err 为 nil 表示成功
type Notice func(err error)

// CopyAsync 在后台执行 Copy，完成后调用 notify。调用方不等待。
func CopyAsync(ctx context.Context, res *Result, rich ClipboardWriter, fallback TextClipboard, notify Notice) {
	go func() {
		err := Copy(ctx, res, rich, fallback)
		if notify != nil {
			notify(err)
		}
	}()
}

// SystemClipboard 使用系统剪贴板（纯文本）
type SystemClipboard struct{}

// WriteText 写入纯文本
func (SystemClipboard) WriteText(ctx context.Context, plain string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return errors.New("system clipboard is not supported on this platform")
	}
	if err := clipboard.WriteAll(plain); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// ReadText 读取剪贴板中的纯文本
func (SystemClipboard) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clipboard.Unsupported {
		return "", errors.New("system clipboard is not supported on this platform")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
