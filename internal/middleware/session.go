package middleware

import (
	"net/http"
	"time"

	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

// カートセッションのcookie名
const SessionCookieName = "cart_session"

type SessionCookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// cookieのセッションが無い・期限切れなら新しく開始してcookieを付け直す。
func Session(store repository.SessionStore, cfg SessionCookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var sessionID string
			if ck, err := c.Cookie(SessionCookieName); err == nil && store.Exists(ctx, ck.Value) {
				sessionID = ck.Value
			} else {
				id, err := store.Begin(ctx)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
				}
				sessionID = id
				c.SetCookie(NewSessionCookie(sessionID, cfg))
			}

			c.Set(CtxSessionIDKey, sessionID)
			return next(c)
		}
	}
}

func NewSessionCookie(sessionID string, cfg SessionCookieConfig) *http.Cookie {
	ck := &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.TTL > 0 {
		ck.MaxAge = int(cfg.TTL.Seconds())
	}
	return ck
}

// セッション終了時にcookieを消す
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

// contextのセッションID（Sessionミドルウェアの後のみ）
func SessionID(c echo.Context) string {
	id, _ := c.Get(CtxSessionIDKey).(string)
	return id
}
