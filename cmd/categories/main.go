package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/moviecategories/internal/categories"
	"github.com/dmitrijs2005/moviecategories/internal/categories/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := categories.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
