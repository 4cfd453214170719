package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "user-admin-service/docs"
	"user-admin-service/internal/config"
	"user-admin-service/internal/domain/user"
	api "user-admin-service/internal/http"
	"user-admin-service/internal/metrics"
	"user-admin-service/internal/platform/database"
	"user-admin-service/internal/repository/postgres"
	"user-admin-service/internal/worker"
)

// @title           User Admin API
// @version         1.0
// @description     Administrative backend for the user dashboard: user listing with search, filters, sorting and pagination, plus status toggling.
// @BasePath        /
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.Register()

	db, err := database.NewPostgres(ctx, cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	userSvc := user.NewService(userRepo)

	statusCh := make(chan worker.StatusEvent, 100)
	auditWorker := worker.NewAuditWorker(statusCh)

	router := api.NewRouter(userSvc, statusCh, db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go auditWorker.Run(ctx)

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}

	log.Println("server stopped")
}
