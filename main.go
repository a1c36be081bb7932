package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelapi/internal/config"
	intdb "travelapi/internal/db"
	router "travelapi/internal/http"
	"travelapi/internal/http/handlers"
	"travelapi/internal/mail"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, dialect, err := intconfig.OpenDB(env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	schemaCtx, cancel := context.WithTimeout(context.Background(), env.DBTimeout)
	err = intdb.EnsureSchema(schemaCtx, db, dialect)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	mailer, err := mail.NewSender(env.Mail)
	if err != nil {
		log.Fatalf("Failed to configure mail: %v", err)
	}

	hd := &handlers.Handler{
		DB:          db,
		Dialect:     dialect,
		DBTimeout:   env.DBTimeout,
		Mailer:      mailer,
		MailTimeout: env.Mail.Timeout,
		ImagesDir:   env.ImagesDir,
	}

	// Router (Gin engine)
	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
