package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shouni/go-shop-kit/pkg/domain"
)

// ListAddresses はユーザーの住所一覧を取得します。
func (c *Client) ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error) {
	var addrs []domain.Address
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	if err := c.getJSON(ctx, "住所一覧の取得", c.endpoint("/addresses", q), &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// GetAddress は住所を1件取得します。
func (c *Client) GetAddress(ctx context.Context, id int64) (*domain.Address, error) {
	var addr domain.Address
	if err := c.getJSON(ctx, "住所の取得", c.endpoint(fmt.Sprintf("/addresses/%d", id), nil), &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// CreateAddress は住所を登録し、サーバーが採番した住所を返します。
func (c *Client) CreateAddress(ctx context.Context, in domain.AddressInput) (*domain.Address, error) {
	var addr domain.Address
	if err := c.postJSON(ctx, "住所の登録", c.endpoint("/addresses", nil), in, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// UpdateAddress は住所を更新します。
func (c *Client) UpdateAddress(ctx context.Context, id int64, in domain.AddressInput) (*domain.Address, error) {
	var addr domain.Address
	endpoint := c.endpoint(fmt.Sprintf("/addresses/%d", id), nil)
	if err := c.do(ctx, "住所の更新", http.MethodPut, endpoint, in, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// DeleteAddress は住所を削除します。
func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/addresses/%d", id), nil)
	return c.do(ctx, "住所の削除", http.MethodDelete, endpoint, nil, nil)
}

// SetDefaultAddress は指定した住所をユーザーの既定の配送先にします。
func (c *Client) SetDefaultAddress(ctx context.Context, userID, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/addresses/%d/default", id), nil)
	body := map[string]int64{"userId": userID}
	return c.do(ctx, "既定住所の設定", http.MethodPatch, endpoint, body, nil)
}
