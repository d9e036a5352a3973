package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/samber/lo"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-shop-kit/pkg/currency"
	"github.com/shouni/go-shop-kit/pkg/domain"
	"github.com/shouni/go-shop-kit/pkg/imageref"
	"github.com/shouni/go-shop-kit/pkg/urlutil"
)

// ProductView は画面表示用に整形済みの商品です。
type ProductView struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Thumbnail string   `json:"thumbnail"`
	Gallery   []string `json:"gallery"`
}

// Loader は商品ダンプ（JSON配列）を読み込み、画像参照を解決します。
type Loader struct {
	reader   remoteio.InputReader
	resolver *imageref.Resolver
}

// NewLoader は依存関係を注入して Loader を初期化します。resolver が nil なら既定の Resolver を使います。
func NewLoader(reader remoteio.InputReader, resolver *imageref.Resolver) (*Loader, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if resolver == nil {
		resolver = imageref.NewResolver()
	}
	return &Loader{reader: reader, resolver: resolver}, nil
}

// Load は uri から商品の一覧を読み込みます。
func (l *Loader) Load(ctx context.Context, uri string) ([]domain.Product, error) {
	rc, err := l.reader.Open(ctx, localPath(uri))
	if err != nil {
		return nil, fmt.Errorf("商品ダンプを開けませんでした (%s): %w", uri, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("商品ダンプの読み込みに失敗しました (%s): %w", uri, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("商品ダンプのJSON解析に失敗しました (%s): %w", uri, err)
	}
	slog.InfoContext(ctx, "商品ダンプを読み込みました", "uri", uri, "count", len(products))
	return products, nil
}

// Resolve は各商品の画像と価格を表示用に整形します。
func (l *Loader) Resolve(products []domain.Product) []ProductView {
	return lo.Map(products, func(p domain.Product, _ int) ProductView {
		raw := p.RawImage()
		price, err := currency.FormatVNDFloat(p.Price)
		if err != nil {
			slog.Warn("価格を整形できないため空欄にします", "id", p.ID, "error", err)
		}
		return ProductView{
			ID:        p.ID,
			Name:      p.Name,
			Price:     price,
			Thumbnail: urlutil.NormalizeURL(l.resolver.Single(raw)),
			Gallery:   lo.Map(l.resolver.All(raw), func(u string, _ int) string { return urlutil.NormalizeURL(u) }),
		}
	})
}

// LoadAndResolve は Load と Resolve をまとめて行います。
func (l *Loader) LoadAndResolve(ctx context.Context, uri string) ([]ProductView, error) {
	products, err := l.Load(ctx, uri)
	if err != nil {
		return nil, err
	}
	return l.Resolve(products), nil
}

// LoadAll は uri 直下の .json ダンプをすべて読み込み、1つの一覧にまとめます。
// サブディレクトリは辿りません。
func (l *Loader) LoadAll(ctx context.Context, uri string) ([]domain.Product, error) {
	var all []domain.Product
	err := l.reader.List(ctx, localPath(uri), func(item string) error {
		if !strings.EqualFold(path.Ext(item), ".json") {
			return nil
		}
		products, err := l.Load(ctx, item)
		if err != nil {
			return err
		}
		all = append(all, products...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("商品ダンプ一覧の読み込みに失敗しました (%s): %w", uri, err)
	}
	return all, nil
}

// localPath は "file://" 接頭辞を取り除きます。gs:// や s3:// はそのまま reader に渡します。
func localPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
