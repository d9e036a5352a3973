package imageview

import (
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"

	"github.com/shouni/go-shop-kit/pkg/domain"
	"github.com/shouni/go-shop-kit/pkg/urlutil"
	"github.com/shouni/go-shop-kit/pkg/utils"
)

// Props は画像表示ラッパーの入力です。
type Props struct {
	URI      *string           // nil または空文字なら Fallback を表示
	Fallback string            // 空なら domain.PlaceholderImageURL
	Alt      string
	Style    map[string]string // CSSプロパティ名 -> 値
	Attrs    map[string]string // そのまま <img> に渡す追加属性
}

type declaration struct {
	Prop  string
	Value string
}

type attribute struct {
	Name  string
	Value string
}

type imgData struct {
	Src   string
	Alt   string
	Style []declaration
	Attrs []attribute
}

var imgTemplate = template.Must(template.New("img").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}"` +
		`{{if .Style}} style="{{range $i, $d := .Style}}{{if $i}}; {{end}}{{$d.Prop}}: {{$d.Value}}{{end}}"{{end}}` +
		`{{range .Attrs}} {{.Name}}="{{.Value}}"{{end}}>`,
))

// DisplayURL は実際に表示するURLを決定します。
func DisplayURL(p Props) string {
	if uri := utils.Deref(p.URI); uri != "" {
		return urlutil.NormalizeURL(uri)
	}
	if p.Fallback != "" {
		return p.Fallback
	}
	return domain.PlaceholderImageURL
}

// Render は <img> 要素を1つ書き出します。
// 属性とスタイルはキー順に並べるため、出力は入力が同じなら常に同じです。
func Render(w io.Writer, p Props) error {
	data := imgData{
		Src: DisplayURL(p),
		Alt: p.Alt,
	}
	for _, k := range slices.Sorted(maps.Keys(p.Style)) {
		data.Style = append(data.Style, declaration{Prop: k, Value: p.Style[k]})
	}
	for _, k := range slices.Sorted(maps.Keys(p.Attrs)) {
		data.Attrs = append(data.Attrs, attribute{Name: k, Value: p.Attrs[k]})
	}

	if err := imgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("img要素の描画に失敗しました: %w", err)
	}
	return nil
}
