package main

import (
	"context"
	"log"

	"parish-be/internal/bootstrap"
	"parish-be/internal/config"
	"parish-be/internal/server"
	"parish-be/internal/tracer"
	"parish-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	container.Logger.Info("rest", "starting server", map[string]interface{}{
		"port":        cfg.App.Port,
		"environment": cfg.App.Environment,
	})

	// Status change notifications run off the in-process event bus.
	if err := container.NotifierService.Consume(context.Background()); err != nil {
		log.Printf("Background Notifier Error: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
