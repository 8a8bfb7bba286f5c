package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRemoteTimeout 远程排版请求的默认超时
const DefaultRemoteTimeout = 10 * time.Second

// Remote 调用外部排版服务（例如运行 KaTeX 的 sidecar）
//
// 请求：POST Endpoint，JSON body 见 remoteRequest。
// 响应：200 + JSON {"output": "...", "error": ""}。
type Remote struct {
	Endpoint string
	Client   *http.Client
	Timeout  time.Duration
}

// NewRemote 创建远程引擎，client 为 nil 时使用默认超时的客户端
func NewRemote(endpoint string, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{
			Timeout: DefaultRemoteTimeout,
		}
	}
	return &Remote{Endpoint: endpoint, Client: client, Timeout: DefaultRemoteTimeout}
}

type remoteRequest struct {
	LaTeX      string `json:"latex"`
	Display    bool   `json:"display"`
	Output     string `json:"output"`
	Strict     bool   `json:"strict"`
	Trust      bool   `json:"trust"`
	ErrorColor string `json:"error_color,omitempty"`
}

type remoteResponse struct {
	Output string `json:"output"`
	Error  string `json:"error"`
}

// Render 实现 Renderer
func (r *Remote) Render(source string, opts Options) (string, error) {
	return r.RenderContext(context.Background(), source, opts)
}

// RenderContext 带 context 的 Render
func (r *Remote) RenderContext(ctx context.Context, source string, opts Options) (string, error) {
	if r.Endpoint == "" {
		return "", errors.New("remote renderer: empty endpoint")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(remoteRequest{
		LaTeX:      source,
		Display:    opts.Display,
		Output:     opts.Format.String(),
		Strict:     opts.Strict,
		Trust:      opts.Trust,
		ErrorColor: opts.ErrorColor,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode renderer response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("remote renderer: %s", out.Error)
	}
	return out.Output, nil
}
