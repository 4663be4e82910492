// main.go
package main

import (
	"bistro-boss/repositories"
	"bistro-boss/routes"
	"bistro-boss/utils"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := utils.InitLogging(os.Stderr, "INFO"); err != nil {
		panic(err)
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		utils.Log.Fatalf("config: %v", err)
	}
	if err := utils.InitLogging(os.Stderr, cfg.LogLevel); err != nil {
		utils.Log.Fatalf("log level %q: %v", cfg.LogLevel, err)
	}

	var repos *repositories.Repositories
	if uri := cfg.DatabaseURI(); uri != "" {
		client, err := utils.ConnectDB(uri)
		if err != nil {
			utils.Log.Fatalf("database: %v", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				utils.Log.Errorf("disconnect: %v", err)
			}
		}()
		db := client.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repositories.EnsureIndexes(ctx, db); err != nil {
			utils.Log.Warningf("indexes: %v", err)
		}
		cancel()
		repos = repositories.NewMongoRepositories(db)
	} else {
		utils.Log.Warning("No database configured; using in-memory store")
		repos = repositories.NewMemoryRepositories()
	}

	handler := routes.NewRouter(routes.Options{
		Repositories: repos,
		Tokens:       utils.NewTokenService(cfg.TokenSecret, cfg.TokenLifetime()),
		StrictAuth:   cfg.StrictAuth,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Log.Infof("server is running on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Errorf("Server forced to shutdown: %v", err)
	}
	utils.Log.Info("Server exited")
}
