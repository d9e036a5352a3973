package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// Client はショップバックエンドのREST APIラッパーです。
// 1回の呼び出しにつき1リクエストだけを送り、失敗はログに残したうえで呼び出し元へ返します。
// httpkit の DoRequest 系はリトライするため、リトライのない Do だけを使います。
type Client struct {
	httpClient httpkit.Doer
	baseURL    string
}

// NewClient は依存関係を注入して Client を初期化します。
func NewClient(httpClient httpkit.Doer, baseURL string) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("baseURL が不正です: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do はリクエストを1回だけ送り、2xx 以外はエラーとして返します。
// body が nil でなければJSONで送信し、v が nil でなければレスポンスをデコードします。
func (c *Client) do(ctx context.Context, op, method, endpoint string, body, v any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%sのリクエスト作成に失敗しました: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%sのリクエスト作成に失敗しました: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, op+"に失敗しました", "method", method, "url", endpoint, "error", err)
		return fmt.Errorf("%sに失敗しました: %w", op, err)
	}
	data, err := httpkit.HandleResponse(resp)
	if err != nil {
		slog.ErrorContext(ctx, op+"に失敗しました", "method", method, "url", endpoint, "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%sに失敗しました: %w", op, err)
	}
	return c.decode(ctx, op, endpoint, data, v)
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, v any) error {
	return c.do(ctx, op, http.MethodGet, endpoint, nil, v)
}

func (c *Client) postJSON(ctx context.Context, op, endpoint string, body, v any) error {
	return c.do(ctx, op, http.MethodPost, endpoint, body, v)
}

func (c *Client) decode(ctx context.Context, op, endpoint string, data []byte, v any) error {
	if v == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.ErrorContext(ctx, op+"のレスポンス解析に失敗しました", "url", endpoint, "error", err)
		return fmt.Errorf("%sのレスポンス解析に失敗しました: %w", op, err)
	}
	return nil
}
