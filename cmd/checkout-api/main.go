package main

import (
	"log"
	"os"

	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/cmd/checkout-api/app"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	app, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Printf("checkout-api (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := app.Router.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
