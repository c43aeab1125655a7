package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taskward/taskward-server/internal/api/http/httpctx"
	"github.com/taskward/taskward-server/internal/api/http/router"
	"github.com/taskward/taskward-server/internal/config"
	"github.com/taskward/taskward-server/internal/hash"
	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
	"github.com/taskward/taskward-server/internal/repository/postgres"
	"github.com/taskward/taskward-server/internal/server"
	"github.com/taskward/taskward-server/internal/service"
	"github.com/taskward/taskward-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	secret := cfg.Session.Secret
	if secret == "" {
		// Refusing to start would hurt availability, but a built-in
		// fallback secret would let anyone forge sessions. Generate a
		// random per-process secret instead: the server runs, and all
		// sessions die with the process.
		logger.Warn("SESSION_SECRET is not set; using a random per-process secret, all sessions will be invalidated on restart")
		secret = randomSecret(logger)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	tokenManager := token.NewJWT(secret)
	hasher := hash.NewBcrypt(0)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	taskService := service.NewTask(taskRepo, logger)
	ctxMgr := httpctx.NewManager()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	r := router.New(authService, taskService, authService, db, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(reg), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func randomSecret(logger *logger.Logger) string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Fatal("failed to generate session secret", "error", err)
	}
	return hex.EncodeToString(buf)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
