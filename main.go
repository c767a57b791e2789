package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pujasari/config"
	"pujasari/routes"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/swaggo/swag"
)

func main() {
	// Load file .env (tidak fatal jika gagal)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Konfigurasi tidak valid")
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Gagal membuat logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.NewStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Gagal menyiapkan store")
	}

	app, doc := routes.New(routes.Options{Config: cfg, Store: store, Logger: log})
	swag.Register(swag.Name, doc)

	go func() {
		<-ctx.Done()
		log.Info("Mematikan server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Gagal mematikan server dengan rapi")
		}
	}()

	log.Infof("Server jalan di http://%s (dokumentasi di /docs/)", cfg.ListenAddr())
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.WithError(err).Error("Server berhenti")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		log.WithError(err).Warn("Gagal menutup koneksi store")
	}
}
