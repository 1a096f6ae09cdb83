package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/moviecategories/internal/identity"
	"github.com/dmitrijs2005/moviecategories/internal/identity/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := identity.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
