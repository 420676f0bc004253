// Command normalize resets the buyer progress of every order to
// not_processed_yet and clears the retry flag.
package main

import (
	"context"
	"os"

	"salesdesk/cmd"
	"salesdesk/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(cfg, os.Stdout).With("component", "normalize")

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	handler := cmd.NewCompositionRoot(cfg, db, logger).CreateNormalizeFulfillmentCommandHandler()

	updated, err := handler.Handle(context.Background(), commands.NewNormalizeFulfillmentCommand())
	if err != nil {
		log.Fatalf("Error normalizing orders: %v", err)
	}
	logger.Info("orders normalized", "updated", updated)
}
