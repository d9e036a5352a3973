package provinces

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-shop-kit/pkg/domain"
)

// DefaultBaseURL はベトナムの行政区画を返す公開APIです。
const DefaultBaseURL = "https://provinces.open-api.vn/api"

// Client は省・県・坊の検索を行います。
type Client struct {
	httpClient httpkit.Doer
	baseURL    string
}

// NewClient は Client を初期化します。baseURL が空なら DefaultBaseURL を使います。
func NewClient(httpClient httpkit.Doer, baseURL string) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}, nil
}

// fetch は GET を1回だけ送り、JSONを v にデコードします。リトライはしません。
func (c *Client) fetch(ctx context.Context, op, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%sのリクエスト作成に失敗しました: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, op+"に失敗しました", "url", endpoint, "error", err)
		return fmt.Errorf("%sに失敗しました: %w", op, err)
	}
	data, err := httpkit.HandleResponse(resp)
	if err != nil {
		slog.ErrorContext(ctx, op+"に失敗しました", "url", endpoint, "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%sに失敗しました: %w", op, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%sのレスポンス解析に失敗しました: %w", op, err)
	}
	return nil
}

// ListProvinces は全省の一覧を返します（下位区画は含みません）。
func (c *Client) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	var provinces []domain.Province
	if err := c.fetch(ctx, "省一覧の取得", c.baseURL+"/p/", &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

// GetProvince は省を県の一覧付きで返します。
func (c *Client) GetProvince(ctx context.Context, code int) (*domain.Province, error) {
	var p domain.Province
	endpoint := fmt.Sprintf("%s/p/%d?depth=2", c.baseURL, code)
	if err := c.fetch(ctx, "省の取得", endpoint, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListDistricts は省に属する県の一覧を返します。
func (c *Client) ListDistricts(ctx context.Context, provinceCode int) ([]domain.District, error) {
	p, err := c.GetProvince(ctx, provinceCode)
	if err != nil {
		return nil, err
	}
	return p.Districts, nil
}

// GetDistrict は県を坊の一覧付きで返します。
func (c *Client) GetDistrict(ctx context.Context, code int) (*domain.District, error) {
	var d domain.District
	endpoint := fmt.Sprintf("%s/d/%d?depth=2", c.baseURL, code)
	if err := c.fetch(ctx, "県の取得", endpoint, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListWards は県に属する坊の一覧を返します。
func (c *Client) ListWards(ctx context.Context, districtCode int) ([]domain.Ward, error) {
	d, err := c.GetDistrict(ctx, districtCode)
	if err != nil {
		return nil, err
	}
	return d.Wards, nil
}

// FindProvinceByName は名前の大文字小文字を無視して省を探します。
func FindProvinceByName(provinces []domain.Province, name string) (domain.Province, bool) {
	return lo.Find(provinces, func(p domain.Province) bool {
		return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name))
	})
}
