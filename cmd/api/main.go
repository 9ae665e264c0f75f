package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"laptopstore-backend/internal/config"
	"laptopstore-backend/internal/db"
	"laptopstore-backend/internal/httpserver"
	"laptopstore-backend/internal/payment"
	addressrepo "laptopstore-backend/internal/repository/address"
	cartrepo "laptopstore-backend/internal/repository/cart"
	orderrepo "laptopstore-backend/internal/repository/order"
	productrepo "laptopstore-backend/internal/repository/product"
	userrepo "laptopstore-backend/internal/repository/user"
	wishlistrepo "laptopstore-backend/internal/repository/wishlist"
	addresssvc "laptopstore-backend/internal/service/address"
	cartsvc "laptopstore-backend/internal/service/cart"
	customersvc "laptopstore-backend/internal/service/customer"
	ordersvc "laptopstore-backend/internal/service/order"
	productsvc "laptopstore-backend/internal/service/product"
	wishlistsvc "laptopstore-backend/internal/service/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() {
		_ = database.Client().Disconnect(context.Background())
	}()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Fatal().Err(err).Msg("create indexes")
	}

	users := userrepo.NewMongo(database)
	products := productrepo.NewMongo(database)
	carts := cartrepo.NewMongo(database)
	wishlists := wishlistrepo.NewMongo(database)
	orders := orderrepo.NewMongo(database)
	addresses := addressrepo.NewMongo(database)

	tokens := customersvc.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	srv := httpserver.New(cfg.HTTPAddr, cfg.CORSOrigins, httpserver.Deps{
		Customers: customersvc.New(users, orders, carts, wishlists, addresses, tokens),
		Products:  productsvc.New(products),
		Carts:     cartsvc.New(carts),
		Wishlists: wishlistsvc.New(wishlists),
		Orders:    ordersvc.New(orders, carts),
		Addresses: addresssvc.New(addresses),
		Payments:  payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		Tokens:    tokens,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
