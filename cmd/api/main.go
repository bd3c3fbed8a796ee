package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"roomly/internal/config"
	"roomly/internal/database"
	"roomly/internal/server"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logrus.Fatalf("mongodb connect error: %v", err)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("index error: %v", err)
	}

	srv := server.NewServer(":"+cfg.Port, db.DB(), cfg.JWTSecret, cfg.JWTTTLHrs)
	if err := srv.Run(); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
