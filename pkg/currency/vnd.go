package currency

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VNDSymbol はベトナムドンの通貨記号です。数値との間にはノーブレークスペースを入れます。
const VNDSymbol = "\u00a0₫"

// ErrAmountOutOfRange は丸めた金額が int64 に収まらないときに返されます。
var ErrAmountOutOfRange = errors.New("金額が表示できる範囲を超えています")

var (
	vnPrinter = message.NewPrinter(language.Vietnamese)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// FormatVND は金額をドン単位に丸め、ベトナム語の桁区切りで整形します（例: 1.250.000 ₫）。
// 丸めた結果が int64 の範囲外なら ErrAmountOutOfRange を返します。
func FormatVND(amount decimal.Decimal) (string, error) {
	rounded := amount.Round(0)
	if rounded.GreaterThan(maxAmount) || rounded.LessThan(minAmount) {
		return "", fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount.String())
	}
	return vnPrinter.Sprintf("%d", rounded.IntPart()) + VNDSymbol, nil
}

// FormatVNDInt は整数の金額を整形します。int64 は常に範囲内です。
func FormatVNDInt(amount int64) string {
	return vnPrinter.Sprintf("%d", amount) + VNDSymbol
}

// FormatVNDFloat はAPIが float で返す価格を整形します。
func FormatVNDFloat(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v", ErrAmountOutOfRange, amount)
	}
	return FormatVND(decimal.NewFromFloat(amount))
}
