package cmd

import (
	"context"
	"errors"
	"fmt"
	"gamesite/internal/config"
	"gamesite/internal/core"
	"gamesite/internal/db"
	"gamesite/internal/http/handler"
	"gamesite/internal/http/handler/middleware"
	"gamesite/internal/http/payload"
	"gamesite/internal/http/server"
	"gamesite/internal/mail"
	"gamesite/internal/repository"
	"gamesite/internal/repository/mongodb"
	"gamesite/pkg/log"
	"gamesite/pkg/otp"
	"gamesite/pkg/password"
	"gamesite/web"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName    = "gamesite"
	connectTimeout = 10 * time.Second
)

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	// account store
	store, closeStore, err := openStore(logger, config)
	if err != nil {
		return err
	}
	defer closeStore()

	// mail
	notifier, err := newNotifier(logger, config.SMTP)
	if err != nil {
		logger.Errorw("failed to create mail dispatcher", "error", err)
		return err
	}

	// accounts
	accounts := core.NewAccountService(
		logger,
		store,
		password.NewBcryptHasher(password.DefaultCost),
		otp.NewGenerator(),
		notifier,
		core.Policy{
			CaptchaAnswer:      config.CaptchaAnswer,
			LoginRequiresEmail: config.LoginRequireEmail,
		})

	// handlers
	accountHlr := handler.NewAccountHandler(
		logger,
		payload.Decoder{},
		accounts)
	pageHlr := handler.NewPageHandler(logger, web.Views())

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Health, accountHlr.HandleHealth)
	mux.HandleFunc(handler.Register, accountHlr.HandleRegister)
	mux.HandleFunc(handler.Confirm, accountHlr.HandleConfirm)
	mux.HandleFunc(handler.Login, accountHlr.HandleLogin)
	for route, view := range handler.Pages {
		mux.HandleFunc(route, pageHlr.Page(view))
	}
	mux.Handle(handler.PublicAssets, pageHlr.Assets(web.Public()))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// openStore connects the configured backend and prepares its schema. The returned func releases the connection.
func openStore(logger *zap.SugaredLogger, cfg config.App) (core.AccountStore, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverMongoDB:
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logger.Errorw("failed to connect to mongodb", "error", err)
			return nil, nil, err
		}

		closeStore := func() {
			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				logger.Errorw("failed to disconnect from mongodb", "error", err)
			}
		}

		if err = store.EnsureIndexes(ctx); err != nil {
			logger.Errorw("failed to create indexes", "error", err)
			closeStore()
			return nil, nil, err
		}

		logger.Infow("account store ready", "driver", cfg.StoreDriver, "database", cfg.MongoDatabase)
		return store, closeStore, nil

	default:
		dbConn, err := db.NewGormDB(cfg.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return nil, nil, err
		}

		closeStore := func() {
			if err := dbConn.Close(); err != nil {
				logger.Errorw("failed to close database", "error", err)
			}
		}

		repo := repository.NewUserRepository(dbConn)
		if err = repo.Migrate(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			closeStore()
			return nil, nil, err
		}

		logger.Infow("account store ready", "driver", cfg.StoreDriver)
		return repo, closeStore, nil
	}
}

func newNotifier(logger *zap.SugaredLogger, cfg config.SMTP) (core.Notifier, error) {
	if !cfg.Enabled() {
		logger.Warnw("SMTP_HOST not set, confirmation codes will be shown to the user")
		return mail.DisabledDispatcher{}, nil
	}

	return mail.NewSMTPDispatcher(mail.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
