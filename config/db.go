package config

import (
	"context"
	"fmt"

	"pujasari/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB membuka koneksi MongoDB dan memastikan server bisa diakses
func ConnectDB(ctx context.Context, cfg Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("gagal connect ke MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB tidak bisa diakses: %w", err)
	}
	return client.Database(cfg.DBName), nil
}

// NewStore memilih implementasi store sesuai STORE_DRIVER
func NewStore(ctx context.Context, cfg Config, log *logrus.Logger) (repository.Store, error) {
	if cfg.StoreDriver == StoreMemory {
		log.Warn("Memakai store in-memory, data hilang saat proses berhenti")
		return repository.NewMemoryStore(), nil
	}

	db, err := ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("db", cfg.DBName).Info("Terhubung ke MongoDB")

	// Index gagal dibuat tidak menghentikan server
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Warn("Gagal membuat index")
	}
	return repository.NewMongoStore(db, cfg.DBTimeout), nil
}
