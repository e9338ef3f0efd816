package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 停止時に処理中リクエストを待つ上限
const shutdownTimeout = 10 * time.Second

type Handlers struct {
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Auth    *handler.AuthHandler
}

type Deps struct {
	Sessions    repository.SessionStore
	Users       repository.UserRepository
	TokenParser middleware.TokenParser
}

// echoを組み立てる
func New(cfg config.Config, logger *zap.Logger, deps Deps, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	//FE_URL未設定（dev）は全許可、cookieは送らせない
	origins := []string{"*"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: cfg.FEURL != "",
	}))

	RegisterRoutes(e, cfg, deps, h)
	return e
}

// ctxがキャンセルされるまで待受し、その後graceful shutdown
func Run(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down")
		return e.Shutdown(sctx)
	})

	return g.Wait()
}
