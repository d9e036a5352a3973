package domain

// PlaceholderImageURL は画像データが存在しない場合に表示する代替画像のURLです。
// リゾルバと画像表示ラッパーの両方がこの定数を参照します。
const PlaceholderImageURL = "https://via.placeholder.com/300x300.png?text=No+Image"

// Product は商品一覧・詳細APIが返す商品です。
// Image はサーバーに保存された未検証の値で、単一のURLか、URL配列をJSON文字列化したものです。
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	Image       *string `json:"image"`
}

// RawImage は Image フィールドを文字列として返します。nil の場合は空文字です。
func (p Product) RawImage() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}
