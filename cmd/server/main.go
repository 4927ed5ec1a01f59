package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"artcatalog/internal/server"
	"artcatalog/internal/server/config"
)

func main() {

	// Optional; settings usually come from the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
