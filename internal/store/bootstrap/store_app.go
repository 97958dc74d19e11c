package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/pkg/idempotency"
	"github.com/Lexv0lk/stregsystem/internal/pkg/logging"
	"github.com/Lexv0lk/stregsystem/internal/store/application"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	httpwrap "github.com/Lexv0lk/stregsystem/internal/store/infrastructure/http"
	"github.com/Lexv0lk/stregsystem/internal/store/infrastructure/kafka"
	"github.com/Lexv0lk/stregsystem/internal/store/infrastructure/postgres"
	"github.com/Lexv0lk/stregsystem/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type StoreApp struct {
	cfg    StoreConfig
	logger logging.Logger

	server        *http.Server
	dbpool        *pgxpool.Pool
	salePublisher *kafka.SalePublisher
}

func NewStoreApp(cfg StoreConfig, logger logging.Logger) *StoreApp {
	return &StoreApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *StoreApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetURL()

	if cfg.RunMigrations {
		err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect)
		if err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	dbpool, err := database.NewPool(ctx, dbURL, int32(cfg.DbMaxConns))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := postgres.NewUsersRepository(dbpool)
	ledgerRepository := postgres.NewLedgerRepository()
	productsRepository := postgres.NewProductsRepository(dbpool)
	newsRepository := postgres.NewNewsRepository(dbpool)
	roomsRepository := postgres.NewRoomsRepository(dbpool)

	var salePublisher domain.SalePublisher
	if len(cfg.KafkaBrokers) > 0 {
		a.salePublisher = kafka.NewSalePublisher(cfg.KafkaBrokers, cfg.KafkaSaleTopic, logger)
		salePublisher = a.salePublisher
		logger.Info("publishing sale events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSaleTopic)
	}

	quickBuyCase := application.NewQuickBuyCase(
		txManager,
		dbpool,
		usersRepository,
		ledgerRepository,
		productsRepository,
		salePublisher,
		logger,
	)
	productsCase := application.NewActiveProductsCase(productsRepository)
	newsCase := application.NewNewsCase(newsRepository)
	userInfoCase := application.NewUserInfoCase(usersRepository, ledgerRepository, dbpool)
	roomInfoCase := application.NewRoomInfoCase(roomsRepository)

	cache, err := idempotency.NewCache(cfg.IdempotencyCacheCapacity)
	if err != nil {
		return err
	}

	storeHandler := httpwrap.NewStoreHandler(quickBuyCase, productsCase, newsCase, userInfoCase, roomInfoCase, logger)

	a.server = &http.Server{
		Addr:              cfg.HttpPort,
		Handler:           newRouter(storeHandler, cache, cfg.RequestTimeout, logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *StoreApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.salePublisher != nil {
		if err := a.salePublisher.Close(); err != nil {
			a.logger.Error("failed to close sale publisher", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("store stopped")
}

func newRouter(handler *httpwrap.StoreHandler, cache *idempotency.Cache, requestTimeout time.Duration, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		httpwrap.NewRequestLoggerMiddleware(logger),
		httpwrap.NewTimeoutMiddleware(requestTimeout),
		idempotency.NewMiddleware(cache),
	)

	api := router.Group("/api")
	{
		api.GET("/products/active", handler.GetActiveProducts)
		api.GET("/news/active", handler.GetActiveNews)
		api.GET("/users/info", handler.GetUserInfo)
		api.GET("/rooms/info", handler.GetRoomInfo)
		api.POST("/purchase/quickbuy", handler.QuickBuy)
	}

	return router
}
