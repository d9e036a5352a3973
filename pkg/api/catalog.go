package api

import (
	"context"
	"fmt"

	"github.com/shouni/go-shop-kit/pkg/domain"
)

// ListCategories はカテゴリ一覧を取得します。
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.getJSON(ctx, "カテゴリ一覧の取得", c.endpoint("/categories", nil), &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetCategory はカテゴリを1件取得します。
func (c *Client) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var cat domain.Category
	if err := c.getJSON(ctx, "カテゴリの取得", c.endpoint(fmt.Sprintf("/categories/%d", id), nil), &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategoryProducts はカテゴリに属する商品を取得します。
func (c *Client) ListCategoryProducts(ctx context.Context, id int64) ([]domain.Product, error) {
	var products []domain.Product
	endpoint := c.endpoint(fmt.Sprintf("/categories/%d/products", id), nil)
	if err := c.getJSON(ctx, "カテゴリ商品の取得", endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListRecommendations はユーザー向けのおすすめ商品を取得します。
func (c *Client) ListRecommendations(ctx context.Context, userID int64) ([]domain.Recommendation, error) {
	var recs []domain.Recommendation
	endpoint := c.endpoint(fmt.Sprintf("/recommendations/%d", userID), nil)
	if err := c.getJSON(ctx, "おすすめ商品の取得", endpoint, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
