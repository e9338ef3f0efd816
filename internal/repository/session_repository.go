package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
)

var ErrSessionNotFound = errors.New("session not found")

// 1セッション = 1カート。
// 明細の変更はセッションごとに直列化される。
type SessionStore interface {
	//セッション開始（カートは空）
	Begin(ctx context.Context) (string, error)
	Exists(ctx context.Context, sessionID string) bool
	//fnの実行中は同じセッションの他の操作を待たせる
	WithCart(ctx context.Context, sessionID string, fn func(cart *model.Cart) error) error
	//認証処理中フラグ。既に処理中ならfalse
	TryBeginAuth(ctx context.Context, sessionID string) bool
	EndAuth(ctx context.Context, sessionID string)
	//セッション終了（カートも破棄）
	End(ctx context.Context, sessionID string) error
	//最終アクセスからttl以上経ったセッションを破棄し、件数を返す
	Sweep(ctx context.Context, now time.Time, ttl time.Duration) int
}
