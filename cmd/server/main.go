package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pleasure08/gplsmarthubb/config"
	"github.com/Pleasure08/gplsmarthubb/internal/router"
	"github.com/Pleasure08/gplsmarthubb/internal/sheetdb"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/internal/store/gormstore"
	"github.com/Pleasure08/gplsmarthubb/internal/store/sheetstore"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
	"github.com/Pleasure08/gplsmarthubb/pkg/paystack"
)

func main() {
	cfg := config.Load()
	if ok, errs := cfg.Validate(); !ok {
		for _, e := range errs {
			log.Printf("config: %s", e)
		}
		log.Fatal("configuration is incomplete")
	}

	st, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Fatalf("cloudinary: %v", err)
	}
	pay := paystack.New(cfg.Paystack.SecretKey)

	engine := router.Setup(cfg, st, cloud, pay)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s (storage driver: %s)", cfg.Server.Port, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("server stopped")
}

func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		return gormstore.New(cfg.Storage.MySQLDSN)
	default:
		key, err := cfg.Google.FormattedPrivateKey()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		doc, err := sheetdb.Open(ctx, cfg.Google.ServiceAccountEmail, key, cfg.Google.SheetID)
		if err != nil {
			return nil, err
		}
		return sheetstore.New(doc), nil
	}
}
