package imageref

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-shop-kit/pkg/domain"
)

// Resolver は生の画像フィールドを、表示に使える画像参照へ変換します。
// どのような入力に対してもエラーを返さず、必ず空でない値を返します。
type Resolver struct {
	placeholder string
	decoder     Decoder
	logger      *slog.Logger
}

// Option は Resolver の設定を変更します。
type Option func(*Resolver)

// WithPlaceholder は代替画像のURLを差し替えます。空文字は無視されます。
func WithPlaceholder(url string) Option {
	return func(r *Resolver) {
		if url != "" {
			r.placeholder = url
		}
	}
}

// WithDecoder は判定ロジックを差し替えます。
func WithDecoder(d Decoder) Option {
	return func(r *Resolver) {
		if d != nil {
			r.decoder = d
		}
	}
}

// WithLogger は診断ログの出力先を指定します。未指定の場合は slog.Default() を使います。
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver は Resolver を初期化します。
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		placeholder: domain.PlaceholderImageURL,
		decoder:     SniffDecoder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Placeholder は Resolver が使う代替画像のURLを返します。
func (r *Resolver) Placeholder() string {
	return r.placeholder
}

// Single は一覧・サムネイル向けに1件のURLを返します。
func (r *Resolver) Single(raw string) string {
	ref := r.decode(raw)
	if len(ref.URLs) > 0 && ref.URLs[0] != "" {
		return ref.URLs[0]
	}
	return r.placeholder
}

// All はギャラリー向けにURLの一覧を返します。戻り値は常に1件以上です。
func (r *Resolver) All(raw string) []string {
	ref := r.decode(raw)
	if len(ref.URLs) > 0 {
		return ref.URLs
	}
	return []string{r.placeholder}
}

// decode は Decoder を呼び出し、結果を Single/All が扱える形に正規化します。
// Scalar/List 以外の結果は URLs を持たないものとして扱います。
func (r *Resolver) decode(raw string) (ref Reference) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log().Warn("画像フィールドの解析中にpanicしました。プレースホルダーを使用します",
				"raw", raw, "panic", fmt.Sprint(rec))
			ref = Reference{Outcome: OutcomeInvalid, Err: fmt.Errorf("decoder panic: %v", rec)}
		}
	}()

	ref = r.decoder.Decode(raw)
	switch ref.Outcome {
	case OutcomeScalar, OutcomeList:
		return ref
	case OutcomeInvalid:
		r.log().Warn("画像フィールドのJSON解析に失敗しました。プレースホルダーを使用します",
			"raw", raw, "error", ref.Err)
	}
	ref.URLs = nil
	return ref
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

var defaultResolver = NewResolver()

// ResolveSingleImage は既定の Resolver で1件のURLを返します。
func ResolveSingleImage(raw string) string {
	return defaultResolver.Single(raw)
}

// ResolveAllImages は既定の Resolver でURLの一覧を返します。
func ResolveAllImages(raw string) []string {
	return defaultResolver.All(raw)
}
