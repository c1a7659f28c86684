package main

import (
	"context"
	"log"

	"github.com/oficinapp/repairshop-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("repair shop API failed: %v", err)
	}
}
