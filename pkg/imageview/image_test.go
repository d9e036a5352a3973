package imageview

import (
	"strings"
	"testing"

	"github.com/shouni/go-shop-kit/pkg/domain"
	"github.com/shouni/go-shop-kit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayURL(t *testing.T) {
	const fallback = "https://static.example.vn/fallback.png"

	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{"URIがあればhttpsに正規化する", Props{URI: utils.Ptr("http://cdn.example.com/a.jpg")}, "https://cdn.example.com/a.jpg"},
		{"URIがnilならFallback", Props{Fallback: fallback}, fallback},
		{"URIが空文字ならFallback", Props{URI: utils.Ptr(""), Fallback: fallback}, fallback},
		{"Fallbackもなければプレースホルダー", Props{}, domain.PlaceholderImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayURL(tt.props))
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("img要素を1つだけ出力するのだ", func(t *testing.T) {
		var sb strings.Builder
		err := Render(&sb, Props{
			URI:   utils.Ptr("http://cdn.example.com/a.jpg"),
			Alt:   "áo thun",
			Style: map[string]string{"width": "100px", "height": "100px"},
			Attrs: map[string]string{"loading": "lazy"},
		})
		require.NoError(t, err)

		out := sb.String()
		assert.Equal(t, 1, strings.Count(out, "<img"))
		assert.Contains(t, out, `src="https://cdn.example.com/a.jpg"`)
		assert.Contains(t, out, `alt="áo thun"`)
		assert.Contains(t, out, `style="height: 100px; width: 100px"`)
		assert.Contains(t, out, `loading="lazy"`)
	})

	t.Run("URIがなければプレースホルダーを表示するのだ", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Render(&sb, Props{}))
		assert.True(t, strings.HasPrefix(sb.String(), `<img src="https://via.placeholder.com/`))
		assert.NotContains(t, sb.String(), "style=")
	})

	t.Run("Altはエスケープされるのだ", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Render(&sb, Props{Alt: `"><script>`}))
		assert.NotContains(t, sb.String(), "<script>")
	})
}
