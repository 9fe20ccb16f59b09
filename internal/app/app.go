package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/config"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/middleware"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/notification"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/payment"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/repository"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/router"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/scheduler"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service"
	"github.com/ghxstship/grasshopper26.00-sub002/migrations"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler

	transferService *service.TransferService
	refundService   *service.RefundService
	userService     *service.UserService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ticketing",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	orderRepo := repository.NewOrderRepo(a.db)
	transferRepo := repository.NewTransferRepo(a.db)
	waitlistRepo := repository.NewWaitlistRepo(a.db)
	auditRepo := repository.NewAuditRepo(a.db)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, userRepo, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}

	email, err := notification.NewEmailNotifier(notification.SMTPOptions{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init email notifier: %w", err)
	}

	n := notification.NewFanout(tg, email)
	gateway := payment.NewStripeGateway(a.cfg.Stripe.SecretKey, a.cfg.Stripe.WebhookSecret, a.log)
	clk := clock.NewSystem()

	a.transferService = service.NewTransferService(
		ticketRepo, transferRepo, eventRepo, userRepo, auditRepo,
		n, clk, a.cfg.Transfer.TTL, a.log,
	)
	a.refundService = service.NewRefundService(
		orderRepo, ticketRepo, eventRepo, userRepo, waitlistRepo,
		gateway, n, clk, a.log,
	)
	eventService := service.NewEventService(eventRepo, clk, a.log)
	a.userService = service.NewUserService(userRepo)

	a.scheduler = scheduler.New(
		a.transferService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(a.transferService, a.refundService, eventService, a.userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		userRepo,
		a.log,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// Sweep runs one transfer-expiry pass outside the scheduler loop.
func (a *App) Sweep(ctx context.Context) (int, error) {
	return a.scheduler.Sweep(ctx)
}

// BatchRefund refunds orders on behalf of an admin user, as the operator CLI does.
func (a *App) BatchRefund(ctx context.Context, actorID string, orderIDs []string, reason string) (*domain.BatchRefundResult, error) {
	user, err := a.userService.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	actor := domain.ActorFromUser(user)
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("actor %s: %w", actorID, domain.ErrForbidden)
	}

	return a.refundService.BatchRefund(ctx, actor, orderIDs, reason)
}

// CreateAdmin registers an admin account; the HTTP API only lets existing
// admins create users.
func (a *App) CreateAdmin(ctx context.Context, email, username string) (*domain.User, error) {
	return a.userService.Create(ctx, domain.CreateUserInput{
		Email:    email,
		Username: username,
		Role:     domain.RoleAdmin,
	})
}

// Close waits for pending notifications, then releases the database. Callers
// that never started Run, like the operator CLI, must call it before exiting.
func (a *App) Close() error {
	a.transferService.Wait()
	a.refundService.Wait()

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.Close(); err != nil {
		return err
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
