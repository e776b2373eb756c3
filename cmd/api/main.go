package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tshirtshop/internal/config"
	"tshirtshop/internal/db"
	"tshirtshop/internal/httpserver"
	"tshirtshop/internal/oauth"
	cartrepo "tshirtshop/internal/repository/cart"
	customerrepo "tshirtshop/internal/repository/customer"
	orderrepo "tshirtshop/internal/repository/order"
	productrepo "tshirtshop/internal/repository/product"
	reviewrepo "tshirtshop/internal/repository/review"
	cartsvc "tshirtshop/internal/service/cart"
	customersvc "tshirtshop/internal/service/customer"
	ordersvc "tshirtshop/internal/service/order"
	reviewsvc "tshirtshop/internal/service/review"
	"tshirtshop/internal/token"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	reviewRepo := reviewrepo.NewPostgres(dbpool)

	customerService := customersvc.New(customerRepo, tokens)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo)
	reviewService := reviewsvc.New(reviewRepo, productRepo)

	var providers []httpserver.OAuthProvider
	if cfg.GoogleClientID != "" {
		providers = append(providers, oauth.NewGoogle(oauth.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectBase: cfg.OAuthRedirectBase,
		}))
	}
	if cfg.FacebookClientID != "" {
		providers = append(providers, oauth.NewFacebook(oauth.Config{
			ClientID:     cfg.FacebookClientID,
			ClientSecret: cfg.FacebookClientSecret,
			RedirectBase: cfg.OAuthRedirectBase,
		}))
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Customers:        customerService,
		Cart:             cartService,
		Orders:           orderService,
		Reviews:          reviewService,
		Products:         productRepo,
		Tokens:           tokens,
		Providers:        providers,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
