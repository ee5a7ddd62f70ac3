package cmd

import (
	"fmt"

	"member-reconcile/core/config"
	"member-reconcile/core/database"
	"member-reconcile/core/storage"
	"member-reconcile/feature/payments"
	"member-reconcile/feature/payments/sink"

	"go.uber.org/zap"
)

// buildService wires the payments service with the sinks enabled in cfg.
func buildService(cfg *config.Config, l *zap.Logger) (*payments.Service, error) {
	var dbSink *sink.Database
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		dbSink = sink.NewDatabase(db)
		l.Info("Database sink enabled", zap.String("driver", cfg.Database.Driver))
	}

	var storeSink *sink.Storage
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		storeSink = sink.NewStorage(client, cfg.Storage)
		l.Info("Storage sink enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return payments.NewService(l, dbSink, storeSink), nil
}
