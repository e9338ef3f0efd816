// Package pricing は価格表示と割引率の計算をまとめる。
package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "ETB"

var printer = message.NewPrinter(language.AmericanEnglish)

var (
	hundred  = decimal.NewFromInt(100)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// FormatPrice は "<通貨> <3桁区切りの金額>" を返す（例: "ETB 2,000"）。
// 小数は最大3桁まで。
func FormatPrice(amount decimal.Decimal, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + formatAmount(amount)
}

// float64を経由しない。整数部はx/textで区切り、小数部はdecimalの文字列をそのまま使う。
func formatAmount(amount decimal.Decimal) string {
	amount = amount.Round(3)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole := amount.Truncate(0)
	var s string
	if whole.LessThanOrEqual(maxInt64) {
		s = printer.Sprint(number.Decimal(whole.IntPart()))
	} else {
		s = groupThousands(whole.String())
	}

	// "0.500" -> "5"
	frac := strings.TrimRight(strings.TrimPrefix(amount.Sub(whole).StringFixed(3), "0."), "0")
	if frac != "" {
		s += "." + frac
	}
	return sign + s
}

// int64に収まらない整数部用（"12345678" -> "12,345,678"）
func groupThousands(digits string) string {
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// GetDiscount は割引率（%）を返す。
// 元値が無い・元値が価格以下のときは ok=false。
func GetDiscount(price decimal.Decimal, originalPrice *decimal.Decimal) (percent int, ok bool) {
	if originalPrice == nil || originalPrice.LessThanOrEqual(price) || !originalPrice.IsPositive() {
		return 0, false
	}

	//四捨五入（0から遠い方へ）
	p := originalPrice.Sub(price).Div(*originalPrice).Mul(hundred).Round(0)
	return int(p.IntPart()), true
}

type StarKind string

const (
	StarFull  StarKind = "full"
	StarHalf  StarKind = "half"
	StarEmpty StarKind = "empty"
)

// Stars は評価(0〜5)を5つの星に展開する。
func Stars(rating float64) []StarKind {
	stars := make([]StarKind, 0, 5)
	whole := math.Floor(rating)
	for i := 1; i <= 5; i++ {
		switch {
		case float64(i) <= whole:
			stars = append(stars, StarFull)
		case float64(i)-rating < 1:
			stars = append(stars, StarHalf)
		default:
			stars = append(stars, StarEmpty)
		}
	}
	return stars
}
