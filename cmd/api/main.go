package main

import (
	"context"
	"fmt"
	"os"

	"github.com/poruwalabs/poruwa-backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Start(context.Background())

	addr := ":" + a.Cfg.Port
	fmt.Printf("Server listening on %s\n", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Warn("Server failed", "error", err)
	}
}
