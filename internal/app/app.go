package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Maruf-rahman11/threadhub-web-server/bootstrap"
	"github.com/Maruf-rahman11/threadhub-web-server/config"
	"github.com/Maruf-rahman11/threadhub-web-server/database"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/auth"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/middleware"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/payments"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/repository"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/repository/memory"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/routes"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/utils"
	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the HTTP server is built from.
type Deps struct {
	Posts         services.PostStorage
	Users         services.UserStorage
	Announcements services.AnnouncementStorage
	Gateway       services.PaymentGateway
	// Verifier nil means auth is disabled.
	Verifier auth.TokenVerifier
	Masker   services.TextMasker
	Pinger   controllers.Pinger
	Logger   *slog.Logger
}

type App struct {
	cfg    config.Config
	server *fiber.App
	client *mongo.Client
}

// NewServer wires services, controllers and routes into a Fiber app.
func NewServer(cfg config.Config, d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	var postOpts []services.PostOption
	if d.Masker != nil {
		postOpts = append(postOpts, services.WithCommentMasker(d.Masker))
	}

	handlers := routes.Handlers{
		Posts:         &controllers.PostHandler{Svc: services.NewPostService(d.Posts, postOpts...)},
		Users:         &controllers.UserHandler{Svc: services.NewUserService(d.Users)},
		Announcements: &controllers.AnnouncementHandler{Svc: services.NewAnnouncementService(d.Announcements)},
		Payments:      &controllers.PaymentHandler{Svc: services.NewPaymentService(d.Gateway)},
		Health:        &controllers.HealthHandler{Store: d.Pinger},
	}

	protect := middleware.Passthrough()
	if d.Verifier != nil {
		protect = middleware.VerifyToken(d.Verifier)
	}

	server := fiber.New(fiber.Config{
		AppName:      "ThreadHub",
		ErrorHandler: controllers.ErrorHandler,
	})
	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-Id",
	}))
	server.Use(fiberlogger.New())
	server.Use(middleware.InjectLogger(d.Logger))

	routes.Register(server, handlers, protect)
	return server
}

// NewApp connects the configured store and collaborators and builds the server.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	d := Deps{Logger: log}
	var client *mongo.Client

	switch cfg.StorageType {
	case config.StorageMemory:
		d.Posts = memory.NewPostStorage()
		d.Users = memory.NewUserStorage()
		d.Announcements = memory.NewAnnouncementStorage()

	case config.StorageMongo:
		var err error
		client, err = database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			_ = database.DisconnectMongo(context.Background(), client)
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		d.Posts = repository.NewPostRepository(db)
		d.Users = repository.NewUserRepository(db)
		d.Announcements = repository.NewAnnouncementRepository(db)
		d.Pinger = database.MongoPinger{Client: client}

	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		_ = database.DisconnectMongo(context.Background(), client)
		return nil, err
	}
	d.Verifier = verifier

	if cfg.PaymentGatewayKey == "" {
		log.Warn("PAYMENT_GATEWAY_KEY is empty, payment intents will fail")
		d.Gateway = payments.Unconfigured{}
	} else {
		gw, err := payments.NewStripeGateway(cfg.PaymentGatewayKey)
		if err != nil {
			_ = database.DisconnectMongo(context.Background(), client)
			return nil, err
		}
		d.Gateway = gw
	}

	if cfg.ProfanityFilter {
		d.Masker = utils.NewDefaultProfanityFilter(cfg.ProfanityWords)
	}

	log.Info("app initialized",
		"port", cfg.Port,
		"storage", cfg.StorageType,
		"auth", authMode(cfg),
	)
	return &App{cfg: cfg, server: NewServer(cfg, d), client: client}, nil
}

func newVerifier(ctx context.Context, cfg config.Config) (auth.TokenVerifier, error) {
	if cfg.AuthDisabled {
		logger.FromContext(ctx).Warn("AUTH_DISABLED is set, mutating routes are open")
		return nil, nil
	}
	switch cfg.AuthProvider {
	case config.AuthFirebase:
		return auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
	case config.AuthJWT:
		return auth.NewJWTVerifier(cfg.JWTSecret)
	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q", cfg.AuthProvider)
	}
}

func authMode(cfg config.Config) string {
	if cfg.AuthDisabled {
		return "disabled"
	}
	return cfg.AuthProvider
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
// the server and releases the store.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + a.cfg.Port
		log.Info("http server listening", "addr", addr)
		errCh <- a.server.Listen(addr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.ShutdownWithContext(shCtx); err != nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		}
	case err := <-errCh:
		runErr = err
	}

	dcCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := database.DisconnectMongo(dcCtx, a.client); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("mongo disconnect: %w", err))
	}
	return runErr
}
