package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"job-portal-backend/config"
	"job-portal-backend/migrations"
	"job-portal-backend/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revert the latest migration instead of applying pending ones")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.DBUrl == "" {
		logger.Log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *down {
		v, err := migrations.Down(ctx, db)
		if err != nil {
			logger.Log.Error("Revert failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Log.Info("Reverted migration", zap.String("version", v))
		return
	}

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		logger.Log.Error("Migration failed", zap.Strings("applied", applied), zap.Error(err))
		os.Exit(1)
	}
	logger.Log.Info("Migrations applied", zap.Strings("versions", applied))
}
