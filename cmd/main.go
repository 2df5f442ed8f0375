package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"saga/config"
	httpapi "saga/internal/http"
	"saga/internal/logger"
	"saga/internal/repository"
	"saga/internal/saga"
	"saga/internal/service"

	_ "saga/docs"
)

// @title        SAGA API
// @version      1.0
// @description  Cadastro de clientes, fornecedores, produtos e contas de compras

// @host      localhost:9091
// @BasePath  /api/v1

func main() {
	// .env is optional; variables already exported take precedence
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDelivery(),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Invoke(startServer),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logger.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			repository.NewMemoryStore,
			fx.Annotate(
				func(s *repository.MemoryStore) *repository.MemoryStore { return s },
				fx.As(new(repository.CustomerRepository)),
			),
			fx.Annotate(repository.NewMemorySuppliers, fx.As(new(repository.SupplierRepository))),
			fx.Annotate(repository.NewMemoryProducts, fx.As(new(repository.ProductRepository))),
			fx.Annotate(repository.NewMemoryAccounts, fx.As(new(repository.AccountRepository))),
			fx.Annotate(repository.NewMemoryTx, fx.As(new(repository.TxManager))),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewCustomerService,
			service.NewSupplierService,
			service.NewProductService,
			service.NewAccountService,
			saga.New,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			newServer,
			newHTTPServer,
		),
	)
}

func newServer(app *saga.Saga, log *slog.Logger, cfg *config.Config) *httpapi.Server {
	if !cfg.Env.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	return httpapi.NewServer(app, log, httpapi.Options{
		AllowOrigins: cfg.CORS.AllowOrigins,
		Swagger:      cfg.Swagger.Enabled,
	})
}

func newHTTPServer(cfg *config.Config, srv *httpapi.Server) *http.Server {
	t := cfg.HTTP.Timeouts
	return &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           srv.Engine(),
		ReadTimeout:       t.ReadTimeout,
		ReadHeaderTimeout: t.ReadHeaderTimeout,
		WriteTimeout:      t.WriteTimeout,
		IdleTimeout:       t.IdleTimeout,
	}
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, httpServer *http.Server, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", httpServer.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen %s", httpServer.Addr)
			}
			log.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
			go func() {
				if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", slog.Any("error", err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.HTTP.Timeouts.ShutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return errors.Wrap(err, "shutdown")
			}
			log.Info("HTTP server stopped")
			return nil
		},
	})
}
