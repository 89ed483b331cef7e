// Command loadcsv imports ingredients from a "name,measurement_unit" CSV file.
//
//	loadcsv ingredients.csv
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/ingredient"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(nil)
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <ingredients.csv>\n", os.Args[0])
		os.Exit(2)
	}

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(ctx, conf.Database)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	file, err := os.Open(os.Args[1])
	if err != nil {
		logger.Error("failed to open csv", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = file.Close() }()

	n, err := ingredient.NewService(db).ImportCSV(ctx, file)
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		for field, msgs := range verr.Fields {
			logger.Error("invalid record", slog.String("at", field), slog.Any("problems", msgs))
		}
		os.Exit(1)
	} else if err != nil {
		logger.Error("failed to import ingredients", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("imported ingredients", slog.Int64("count", n))
}
