package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/session"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"
	"storefront/pkg/logger"
	"storefront/pkg/shutdown"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 無操作セッションを掃除する間隔
const sweepInterval = time.Minute

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.Options{Service: "storefront", Env: cfg.GoEnv, Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	//Repository生成（memory / postgres）
	catalog, users, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	sessions := session.NewMemoryStore(time.Now)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	authValidator := validator.NewAuthValidator()

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTTL)

	//Usecase生成
	productUC := usecase.NewProductUsecase(catalog)
	cartUC := usecase.NewCartUsecase(sessions, catalog, cfg.DefaultCurrency)
	signUpUC := auth.NewSignUpUsecase(users, authValidator, hasher, idGen, clock)
	signInUC := auth.NewSignInUsecase(users, authValidator, verifier, issuer, clock)

	//Handler生成
	e := server.New(cfg, log,
		server.Deps{Sessions: sessions, Users: users, TokenParser: issuer},
		server.Handlers{
			Product: handler.NewProductHandler(productUC),
			Cart:    handler.NewCartHandler(cartUC, cfg.CookieSecure),
			Auth:    handler.NewAuthHandler(signUpUC, signInUC, sessions, log),
		},
	)

	//Server起動（+セッション掃除）
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx, e, ":"+cfg.Port, log)
	})
	g.Go(func() error {
		return session.RunSweeper(ctx, sessions, cfg.SessionTTL, sweepInterval, log)
	})

	return g.Wait()
}

// STOREに応じてカタログとユーザーの保存先を作る
func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.CatalogRepository, repository.UserRepository, error) {
	if cfg.Store == config.StoreMemory {
		log.Info("using in-memory store")
		catalog := infraRepo.NewCatalogMemoryRepository(infraRepo.SampleProducts(), infraRepo.SampleCategories())
		return catalog, infraRepo.NewUserMemoryRepository(), nil
	}

	//DB接続
	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, nil, err
	}

	seeded, err := infraRepo.SeedCatalog(ctx, gormDB, infraRepo.SampleProducts(), infraRepo.SampleCategories())
	if err != nil {
		return nil, nil, err
	}
	if seeded {
		log.Info("sample catalog seeded")
	}

	return infraRepo.NewCatalogGormRepository(gormDB), infraRepo.NewUserGormRepository(gormDB), nil
}
