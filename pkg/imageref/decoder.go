package imageref

import (
	"encoding/json"
	"strings"
)

// Outcome は生の画像フィールドを解釈した結果の種別です。
type Outcome int

const (
	// OutcomeEmpty はフィールドが空、または空配列だったことを表します。
	OutcomeEmpty Outcome = iota
	// OutcomeScalar はフィールドが単一のURLだったことを表します。
	OutcomeScalar
	// OutcomeList はフィールドが1件以上のURL配列だったことを表します。
	OutcomeList
	// OutcomeInvalid は配列として解析しようとして失敗したことを表します。
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeScalar:
		return "scalar"
	case OutcomeList:
		return "list"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Reference は Decoder の解析結果です。
// プレースホルダーへの置き換えは行わず、Resolver が境界でまとめて判断します。
type Reference struct {
	Outcome Outcome
	URLs    []string
	Err     error
}

// Decoder は生の画像フィールドを Reference に変換します。
// 将来、厳密なスキーマに置き換える場合はこのインターフェースを実装します。
type Decoder interface {
	Decode(raw string) Reference
}

// SniffDecoder は先頭文字が '[' かどうかだけで配列か単一URLかを判定する Decoder です。
// 型タグではなくヒューリスティックなので、'[' で始まる文字列はすべてJSONとして扱われます。
type SniffDecoder struct{}

// Decode は raw を解析します。
func (SniffDecoder) Decode(raw string) Reference {
	if raw == "" {
		return Reference{Outcome: OutcomeEmpty}
	}
	if !strings.HasPrefix(raw, "[") {
		return Reference{Outcome: OutcomeScalar, URLs: []string{raw}}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return Reference{Outcome: OutcomeInvalid, Err: err}
	}
	if len(items) == 0 {
		return Reference{Outcome: OutcomeEmpty}
	}

	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = elementText(item)
	}
	return Reference{Outcome: OutcomeList, URLs: urls}
}

// elementText は配列要素を文字列にします。
// 文字列以外の要素は検証せず、JSONテキストのまま返します。null は空文字になります。
func elementText(item json.RawMessage) string {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s
	}
	return string(item)
}
