// Command server runs the review platform HTTP API.
package main

import (
	"context"
	"log"

	"github.com/Rexant-b2k/RateReviewRevive/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
