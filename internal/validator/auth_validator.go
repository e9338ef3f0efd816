package validator

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	auth "storefront/internal/usecase/auth_usecase"
)

// 入力が不正（必須項目の欠け）
var ErrInvalidInput = errors.New("invalid input")

// 名前の最大文字数
const maxNameLength = 100

var emailLike = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() auth.Validator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignUp(ctx context.Context, in auth.SignUpInput) error {
	email := strings.TrimSpace(in.Email)

	// 必須チェック
	if email == "" || in.Password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return auth.ErrInvalidEmailFormat
	}

	// パスワード最低文字数
	if utf8.RuneCountInString(in.Password) < auth.MinPasswordLength {
		return auth.ErrPasswordTooShort
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(in.Password) {
		return auth.ErrWeakPassword
	}

	if utf8.RuneCountInString(in.FirstName) > maxNameLength || utf8.RuneCountInString(in.LastName) > maxNameLength {
		return auth.ErrNameTooLong
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateSignIn(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return auth.ErrInvalidEmailFormat
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	if !emailLike.MatchString(s) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// パスワードのよくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":     {},
		"password123":  {},
		"123456":       {},
		"1234567":      {},
		"12345678":     {},
		"123456789":    {},
		"1234567890":   {},
		"123456789012": {},
		"qwerty":       {},
		"qwertyuiop":   {},
		"letmein":      {},
		"admin123":     {},
		"abc123":       {},
	}

	_, ok := weak[normalized]
	return ok
}
