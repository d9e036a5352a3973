package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-shop-kit/pkg/currency"
	"github.com/shouni/go-shop-kit/pkg/domain"
	"github.com/shouni/go-shop-kit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dump = `[
  {"id":1,"name":"Áo thun","price":150000,"image":"[\"http://cdn.example.com/a.jpg\",\"https://cdn.example.com/b.jpg\"]"},
  {"id":2,"name":"Quần jean","price":320000,"image":"https://cdn.example.com/c.jpg"},
  {"id":3,"name":"Mũ","price":50000,"image":null},
  {"id":4,"name":"Giày","price":899000,"image":"[broken"}
]`

// mockReader はメモリ上のファイルを返すのだ。
type mockReader struct {
	files map[string]string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	body, ok := m.files[uri]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	for name := range m.files {
		if strings.HasPrefix(name, uri) {
			if err := fn(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestNewLoader(t *testing.T) {
	_, err := NewLoader(nil, nil)
	assert.Error(t, err)
}

func TestLoader_LoadAndResolve(t *testing.T) {
	ctx := context.Background()
	reader := &mockReader{files: map[string]string{"gs://bucket/products.json": dump}}
	loader, err := NewLoader(reader, nil)
	require.NoError(t, err)

	t.Run("画像と価格を表示用に整形するのだ", func(t *testing.T) {
		views, err := loader.LoadAndResolve(ctx, "gs://bucket/products.json")
		require.NoError(t, err)
		require.Len(t, views, 4)

		assert.Equal(t, "https://cdn.example.com/a.jpg", views[0].Thumbnail)
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, views[0].Gallery)
		assert.Equal(t, currency.FormatVNDInt(150000), views[0].Price)

		assert.Equal(t, []string{"https://cdn.example.com/c.jpg"}, views[1].Gallery)

		assert.Equal(t, domain.PlaceholderImageURL, views[2].Thumbnail)
		assert.Equal(t, []string{domain.PlaceholderImageURL}, views[3].Gallery)
	})

	t.Run("存在しないURIはエラーになるのだ", func(t *testing.T) {
		_, err := loader.Load(ctx, "gs://bucket/missing.json")
		assert.Error(t, err)
	})

	t.Run("JSONでないダンプはエラーになるのだ", func(t *testing.T) {
		reader.files["gs://bucket/bad.txt"] = "not json"
		defer delete(reader.files, "gs://bucket/bad.txt")

		_, err := loader.Load(ctx, "gs://bucket/bad.txt")
		assert.Error(t, err)
	})
}

func TestLoader_LoadAll(t *testing.T) {
	reader := &mockReader{files: map[string]string{
		"gs://bucket/a.json":    `[{"id":1,"name":"A"}]`,
		"gs://bucket/b.json":    `[{"id":2,"name":"B"},{"id":3,"name":"C"}]`,
		"gs://bucket/notes.txt": "not a dump",
	}}
	loader, err := NewLoader(reader, nil)
	require.NoError(t, err)

	products, err := loader.LoadAll(context.Background(), "gs://bucket/")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestLoader_UniversalReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"Áo","image":"https://cdn.example.com/a.jpg"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignore"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "old.json"), []byte(`[{"id":9,"name":"Cũ"}]`), 0o644))

	loader, err := NewLoader(remoteio.NewUniversalInputReader(nil, nil), nil)
	require.NoError(t, err)

	t.Run("file://付きのパスも読めるのだ", func(t *testing.T) {
		products, err := loader.Load(context.Background(), "file://"+path)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "https://cdn.example.com/a.jpg", utils.Deref(products[0].Image))
	})

	t.Run("直下の.jsonだけを読み込みサブディレクトリは辿らないのだ", func(t *testing.T) {
		products, err := loader.LoadAll(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(1), products[0].ID)
	})

	t.Run("file://付きのディレクトリも読めるのだ", func(t *testing.T) {
		products, err := loader.LoadAll(context.Background(), "file://"+dir)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestLoader_ResolveOutOfRangePrice(t *testing.T) {
	loader, err := NewLoader(&mockReader{}, nil)
	require.NoError(t, err)

	views := loader.Resolve([]domain.Product{
		{ID: 1, Name: "Kim cương", Price: 1e20},
		{ID: 2, Name: "Áo", Price: 99000},
	})
	require.Len(t, views, 2)
	assert.Empty(t, views[0].Price)
	assert.Equal(t, domain.PlaceholderImageURL, views[0].Thumbnail)
	assert.Equal(t, currency.FormatVNDInt(99000), views[1].Price)
}
