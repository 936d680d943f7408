// @title           ThreadHub API
// @version         1.0
// @description     Forum backend: posts, votes, comments, announcements, users and payments.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Maruf-rahman11/threadhub-web-server/docs"

	"github.com/Maruf-rahman11/threadhub-web-server/config"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/app"
	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

func main() {
	log := logger.New(os.Stdout)
	ctx := logger.WithLogger(context.Background(), log)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Error("init failed", "error", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
