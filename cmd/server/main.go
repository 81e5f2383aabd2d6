package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"creatorhub/internal/auth"
	"creatorhub/internal/config"
	"creatorhub/internal/db"
	"creatorhub/internal/handlers"
	"creatorhub/internal/middleware"
	"creatorhub/internal/secrets"
	"creatorhub/internal/youtube"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cipher, err := secrets.NewCipher(cfg.TokenEncryptionKey)
	if err != nil {
		logger.Fatalf("Failed to build credential cipher: %v", err)
	}

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlg, cfg.SessionLifetime())
	if err != nil {
		logger.Fatalf("Failed to build token issuer: %v", err)
	}

	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}

	yt := youtube.NewClient(cfg, logger)
	h := handlers.New(logger, cipher, issuer, yt)

	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))

	// Public routes. The OAuth callback is reached by provider redirect and
	// carries no bearer token.
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc(cfg.GoogleRedirectPath, h.Callback).Methods(http.MethodGet)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Auth(issuer, logger))
	authRouter.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	authRouter.HandleFunc("/oauth/youtube/connect", h.Connect).Methods(http.MethodGet)
	authRouter.HandleFunc("/channels", h.ListChannels).Methods(http.MethodGet)
	authRouter.HandleFunc("/channels/{id}", h.UnlinkChannel).Methods(http.MethodDelete)

	// CORS wraps the router itself so OPTIONS preflights are answered even
	// though no route registers that method.
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     middleware.CORS(r),
		ReadTimeout: 10 * time.Second,
		// The OAuth callback waits on two provider calls of up to 20s each.
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
}
