package main

import (
	"context"
	"log"
	"os"

	"shoplend-totem/app"
	"shoplend-totem/config"
	"shoplend-totem/notify"
	"shoplend-totem/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	s := routes.RegisterRoutes(r, application)

	// Snapshot inicial antes de aceitar tráfego.
	ctx := context.Background()
	s.RefreshEquipments(ctx)
	s.RefreshActiveLoans(ctx)

	// Toda mudança em equipamentos publicada no Redis dispara um refresh.
	watcher := notify.NewEquipmentWatcher(application.RDB, application.Log, func(ctx context.Context) {
		s.RefreshEquipments(ctx)
		s.RefreshActiveLoans(ctx)
	})
	stop := watcher.Subscribe(ctx)
	defer stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
